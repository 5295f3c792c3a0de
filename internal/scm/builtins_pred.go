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

import "math"

func registerPredicateBuiltins(env *Environment) {
	registerTypePredicate(env, "boolean?", func(v Value) bool { _, ok := v.(Boolean); return ok })
	registerTypePredicate(env, "number?", func(v Value) bool { _, ok := v.(Number); return ok })
	registerTypePredicate(env, "integer?", func(v Value) bool {
		n, ok := v.(Number)
		return ok && math.Floor(float64(n)) == float64(n)
	})
	registerTypePredicate(env, "string?", func(v Value) bool { _, ok := v.(*String); return ok })
	registerTypePredicate(env, "symbol?", func(v Value) bool { _, ok := v.(Symbol); return ok })
	registerTypePredicate(env, "null?", func(v Value) bool { _, ok := v.(Nil); return ok })
	registerTypePredicate(env, "pair?", func(v Value) bool { _, ok := v.(*Pair); return ok })
	registerTypePredicate(env, "list?", IsProperList)
	registerTypePredicate(env, "procedure?", IsProcedure)
	registerTypePredicate(env, "atom?", IsAtom)
}

func registerTypePredicate(env *Environment, name string, pred func(Value) bool) {
	Declare(env, &Declaration{
		Name: name, Desc: "type predicate", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			return Boolean(pred(args[0])), nil
		},
	})
}
