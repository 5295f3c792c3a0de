package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/ulikunitz/xz"

	"github.com/a1henu/mini-lisp/internal/scm"
)

// runFile executes a single script file non-interactively. Source named
// with a ".xz" suffix is transparently decompressed first, so archived
// or vendored script bundles do not need to be unpacked by hand before
// running. args is the full positional argument list: args[0] is the
// script path and the whole list — file name included — is exposed to
// the script as argc (a number) and argv (a list of strings), in the
// same spirit as a conventional process entry point.
//
// A failing top-level expression prints "Error: <message>" to standard
// error and execution continues with the next expression; only an
// (exit n) call stops the run early.
func runFile(c *cobra.Command, args []string) error {
	sessionID := uuid.New()
	path := args[0]
	logger.Debug("run", "session", sessionID, "path", path, "args", args[1:])

	source, err := readScriptFile(path)
	if err != nil {
		return err
	}

	env := scm.NewRootEnvironmentWithBuiltins()
	injectArgs(env, args)

	forms, err := scm.ReadAll(source)
	if err != nil {
		return err
	}
	for _, form := range forms {
		if _, err := scm.Evaluate(form, env); err != nil {
			if _, isExit := exitCode(err); isExit {
				return err
			}
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
	}
	return nil
}

// readScriptFile reads path, transparently decompressing it first if its
// name ends in ".xz".
func readScriptFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return "", fmt.Errorf("decompressing %s: %w", path, err)
		}
		r = xr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// injectArgs binds argc and argv in env the way a process entry point
// exposes its command line to a running program: argv holds every
// positional argument including the script name, argc its count.
func injectArgs(env *scm.Environment, args []string) {
	values := make([]scm.Value, len(args))
	for i, a := range args {
		values[i] = scm.NewString(a)
	}
	env.Define("argc", scm.Number(float64(len(args))))
	env.Define("argv", scm.FromVector(values))
}

// exitCode reports the process exit status an error represents, if
// any: an *scm.ExitError carries an explicit code from an (exit n)
// call; any other error is not a process-exit request.
func exitCode(err error) (int, bool) {
	if ee, ok := err.(*scm.ExitError); ok {
		return ee.Code, true
	}
	return 0, false
}
