/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package scm

import (
	"bufio"
	"fmt"
	"os"
)

// ExitError is returned by the exit built-in. It is not a LispError: the
// REPL and file drivers catch it specifically to stop the read loop and
// return Code as the process exit status, rather than printing
// "Error: ..." and continuing.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit(%d)", e.Code)
}

var stdinReader = bufio.NewReader(os.Stdin)

func registerIOBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "display", Desc: "writes one or more values to standard output without a trailing newline", MinParams: 1, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			for _, a := range args {
				fmt.Print(displayText(a))
			}
			return NilValue, nil
		},
	})
	Declare(env, &Declaration{
		Name: "displayln", Desc: "writes a value to standard output followed by a newline", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			fmt.Println(displayText(args[0]))
			return NilValue, nil
		},
	})
	Declare(env, &Declaration{
		Name: "newline", Desc: "writes a newline to standard output", MinParams: 0, MaxParams: 0,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			fmt.Println()
			return NilValue, nil
		},
	})
	Declare(env, &Declaration{
		Name: "print", Desc: "writes each value to standard output in machine-readable form, one per line", MinParams: 1, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			for _, a := range args {
				fmt.Println(writeText(a))
			}
			return NilValue, nil
		},
	})
	Declare(env, &Declaration{
		Name: "readline", Desc: "prompts for one line of input and evaluates it in the calling environment", MinParams: 0, MaxParams: 0,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			fmt.Print("> ")
			line, err := stdinReader.ReadString('\n')
			if err != nil && line == "" {
				return nil, NewLispErrorf(EUSER, "readline: %v", err)
			}
			form, readErr := ReadOne(trimNewline(line))
			if readErr != nil {
				return nil, readErr
			}
			// Re-enters the evaluator on the caller's own environment,
			// so definitions made by the typed-in expression persist.
			return Evaluate(form, callerEnv)
		},
	})
	Declare(env, &Declaration{
		Name: "error", Desc: "raises a user error carrying the given message", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			return nil, NewLispError(EUSER, displayText(args[0]))
		},
	})
	Declare(env, &Declaration{
		Name: "exit", Desc: "stops the running program with the given exit code (0 if omitted)", MinParams: 0, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			code := 0
			if len(args) == 1 {
				n, err := numberArg("exit", args[0])
				if err != nil {
					return nil, err
				}
				code = int(n)
			}
			return nil, &ExitError{Code: code}
		},
	})
	Declare(env, &Declaration{
		Name: "eval", Desc: "evaluates a value as an expression in the calling environment", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			return Evaluate(args[0], callerEnv)
		},
	})
	Declare(env, &Declaration{
		Name: "apply", Desc: "calls a procedure with an explicit argument list; list elements are used as-is, never re-evaluated", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			if !IsProcedure(args[0]) {
				return nil, typeError("apply", "procedure", args[0])
			}
			if !IsProperList(args[1]) {
				return nil, NewLispError(ENOTLIST, "apply: second argument must be a proper list")
			}
			return ApplyIn(args[0], ToVector(args[1]), callerEnv)
		},
	})
}

func trimNewline(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
		if n > 0 && s[n-1] == '\r' {
			n--
		}
	}
	return s[:n]
}
