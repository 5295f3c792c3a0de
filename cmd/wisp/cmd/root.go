package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	noColor bool
	logger  *slog.Logger
)

// rootCmd is wisp's entry point: run with no arguments it starts an
// interactive REPL on a fresh root environment; run with a file
// argument (see run.go) it evaluates that file and exits; the serve
// subcommand (see serve.go) exposes the same evaluator over a
// websocket.
var rootCmd = &cobra.Command{
	Use:   "wisp [script [args...]]",
	Short: "wisp is an interpreter for a small Lisp dialect",
	Long: `wisp evaluates programs written in a small, lexically scoped Lisp
dialect: booleans, numbers, strings, symbols, pairs, and procedures,
with a fixed set of special forms and a standard library of built-ins.

Run wisp with no arguments to start an interactive REPL, or give it a
script file to execute non-interactively.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runRepl(c, args)
		}
		return runFile(c, args)
	},
}

// Execute runs the root command, exiting the process with a non-zero
// status on failure. It is the only entry point main.go calls.
func Execute() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		exitWithError(err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI color in prompts")
	logLevel := new(slog.LevelVar)
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	if os.Getenv("WISP_DEBUG") != "" {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelWarn)
	}
}

// exitWithError prints the error (an *scm.ExitError carries its own
// process exit code; anything else is an unexpected failure reported
// with status 1) and terminates the process.
func exitWithError(err error) {
	if code, ok := exitCode(err); ok {
		os.Exit(code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}
