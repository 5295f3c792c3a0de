package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/a1henu/mini-lisp/internal/scm"
)

const (
	promptPlain   = ">>> "
	continuePlain = "... "
)

func prompt(s string) string {
	if noColor {
		return s
	}
	return "\033[32m" + s + "\033[0m"
}

// runRepl drives an interactive read-eval-print loop: ">>> " for a fresh
// top-level form, "..." with indentation proportional to the
// outstanding open-paren count while a form spans multiple lines.
// Evaluation errors print as "Error: <message>" and the loop continues;
// an (exit n) call stops the loop and returns an *scm.ExitError for
// Execute to translate into a process exit status.
func runRepl(c *cobra.Command, _ []string) error {
	sessionID := uuid.New()
	logger.Info("repl session start", "session", sessionID)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt(promptPlain),
		HistoryFile:       "",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()
	rl.CaptureExitSignal()

	fmt.Println("Welcome to wisp.")
	fmt.Println(`Type "(help)" for more information, "(exit n)" to exit with code n.`)

	env := scm.NewRootEnvironmentWithBuiltins()
	var pending strings.Builder

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if pending.Len() == 0 {
				continue
			}
			pending.Reset()
			rl.SetPrompt(prompt(promptPlain))
			continue
		} else if err == io.EOF {
			logger.Info("repl session end", "session", sessionID)
			return nil
		} else if err != nil {
			return err
		}

		pending.WriteString(line)
		pending.WriteByte('\n')
		source := pending.String()
		if strings.TrimSpace(source) == "" {
			pending.Reset()
			continue
		}

		form, readErr := scm.ReadOne(source)
		if readErr != nil {
			if needsMoreInput(readErr) {
				depth := parenDepth(source)
				rl.SetPrompt(prompt(continuePlain + strings.Repeat("  ", depth)))
				continue
			}
			fmt.Fprintln(os.Stderr, "Error:", readErr)
			pending.Reset()
			rl.SetPrompt(prompt(promptPlain))
			continue
		}

		pending.Reset()
		rl.SetPrompt(prompt(promptPlain))

		result, evalErr := scm.Evaluate(form, env)
		if evalErr != nil {
			if _, ok := exitCode(evalErr); ok {
				logger.Info("repl session exit", "session", sessionID)
				return evalErr
			}
			fmt.Fprintln(os.Stderr, "Error:", evalErr)
			continue
		}
		fmt.Println(scm.ToDisplayText(result))
	}
}

// needsMoreInput reports whether a read failure means the accumulated
// source is an incomplete (but not malformed) form: the reader ran out
// of tokens before finding the form's closing paren.
func needsMoreInput(err error) bool {
	se, ok := err.(*scm.SyntaxError)
	return ok && se.Code == scm.ESYNTAX && strings.Contains(se.Message, "unexpected end of input")
}

// parenDepth is a rough count of outstanding open parens that skips
// parens inside string literals (honouring backslash escapes), used only
// to proportionally indent the continuation prompt.
func parenDepth(source string) int {
	depth := 0
	inString := false
	escape := false
	for _, r := range source {
		if escape {
			escape = false
			continue
		}
		switch r {
		case '\\':
			if inString {
				escape = true
			}
		case '"':
			inString = !inString
		case '(':
			if !inString {
				depth++
			}
		case ')':
			if !inString && depth > 0 {
				depth--
			}
		}
	}
	return depth
}
