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
	"fmt"
	"sort"
	"strings"
)

// Declaration documents a built-in procedure alongside the function that
// implements it: a one-line description and an argument-count range,
// used both to build the arity-checking wrapper Declare installs and to
// drive the help built-in. MaxParams of -1 means unbounded.
type Declaration struct {
	Name      string
	Desc      string
	MinParams int
	MaxParams int
	Fn        BuiltinFunc
}

// declarations is the global built-in table, keyed by name. It is
// populated the first time a root environment is built and read-only
// afterwards; re-registering the same name (a second root environment)
// just overwrites the identical entry.
var declarations = make(map[string]*Declaration)

// Declare registers d's procedure into env under d.Name, wrapping Fn in
// an arity check derived from MinParams/MaxParams, and records d so
// help can list it later. This replaces populating the environment map
// directly, adding automatic arity checking to every built-in.
func Declare(env *Environment, d *Declaration) {
	declarations[d.Name] = d
	fn := d.Fn
	min, max := d.MinParams, d.MaxParams
	name := d.Name
	env.Define(Symbol(name), NewBuiltin(name, func(args []Value, callerEnv *Environment) (Value, error) {
		if len(args) < min || (max >= 0 && len(args) > max) {
			return nil, arityErrorRange(name, min, max, len(args))
		}
		return fn(args, callerEnv)
	}))
}

func arityErrorRange(name string, min, max, got int) *LispError {
	switch {
	case max < 0:
		return NewLispErrorf(EARITY, "%s: expected at least %d argument(s), got %d", name, min, got)
	case min == max:
		return NewLispErrorf(EARITY, "%s: expected %d argument(s), got %d", name, min, got)
	default:
		return NewLispErrorf(EARITY, "%s: expected %d to %d argument(s), got %d", name, min, max, got)
	}
}

// NewRootEnvironmentWithBuiltins builds a fresh root environment and
// populates it with the full built-in library: I/O and control,
// type predicates, pair/list operations, arithmetic, and comparison.
func NewRootEnvironmentWithBuiltins() *Environment {
	env := NewRootEnvironment()
	RegisterBuiltins(env)
	return env
}

// RegisterBuiltins installs every built-in procedure into env. It is
// exported so embedders that already hold a root Environment can
// re-populate a fresh one without going through
// NewRootEnvironmentWithBuiltins.
func RegisterBuiltins(env *Environment) {
	registerIOBuiltins(env)
	registerPredicateBuiltins(env)
	registerListBuiltins(env)
	registerArithmeticBuiltins(env)
	registerComparisonBuiltins(env)
	registerStringBuiltins(env)
	registerHelpBuiltin(env)
}

func registerHelpBuiltin(env *Environment) {
	Declare(env, &Declaration{
		Name: "help", Desc: "returns the name and description of every built-in, or details one by name",
		MinParams: 0, MaxParams: 1,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			if len(args) == 0 {
				names := make([]string, 0, len(declarations))
				for n := range declarations {
					names = append(names, n)
				}
				sort.Strings(names)
				var b strings.Builder
				for _, n := range names {
					fmt.Fprintf(&b, "%-16s %s\n", n, declarations[n].Desc)
				}
				return NewString(b.String()), nil
			}
			name, ok := AsSymbol(args[0])
			if !ok {
				if s, ok := AsString(args[0]); ok {
					name = Symbol(s)
				} else {
					return nil, typeError("help", "symbol or string", args[0])
				}
			}
			if d, found := declarations[string(name)]; found {
				return NewString(fmt.Sprintf("%s: %s (%s)", d.Name, d.Desc, arityDescription(d))), nil
			}
			return nil, NewLispErrorf(EUNBOUND, "help: no such built-in %q", string(name))
		},
	})
}

func arityDescription(d *Declaration) string {
	switch {
	case d.MaxParams < 0:
		return fmt.Sprintf("at least %d argument(s)", d.MinParams)
	case d.MinParams == d.MaxParams:
		return fmt.Sprintf("%d argument(s)", d.MinParams)
	default:
		return fmt.Sprintf("%d to %d argument(s)", d.MinParams, d.MaxParams)
	}
}
