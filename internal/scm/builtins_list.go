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

func registerListBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "cons", Desc: "constructs a pair from a head and a tail", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			return NewPair(args[0], args[1]), nil
		},
	})
	Declare(env, &Declaration{
		Name: "car", Desc: "extracts the first element of a pair", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			p, ok := args[0].(*Pair)
			if !ok {
				return nil, typeError("car", "pair", args[0])
			}
			return p.Car, nil
		},
	})
	Declare(env, &Declaration{
		Name: "cdr", Desc: "extracts the second element of a pair", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			p, ok := args[0].(*Pair)
			if !ok {
				return nil, typeError("cdr", "pair", args[0])
			}
			return p.Cdr, nil
		},
	})
	Declare(env, &Declaration{
		Name: "list", Desc: "constructs a proper list from its arguments", MinParams: 0, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			return FromVector(args), nil
		},
	})
	Declare(env, &Declaration{
		Name: "length", Desc: "returns the number of elements in a proper list", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			if !IsProperList(args[0]) {
				return nil, NewLispError(ENOTLIST, "length: not a proper list")
			}
			return Number(float64(len(ToVector(args[0])))), nil
		},
	})
	Declare(env, &Declaration{
		Name: "append", Desc: "appends zero or more lists into a new list", MinParams: 0, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			var items []Value
			for _, a := range args {
				if !IsProperList(a) {
					return nil, NewLispError(ENOTLIST, "append: not a proper list")
				}
				items = append(items, ToVector(a)...)
			}
			return FromVector(items), nil
		},
	})
	Declare(env, &Declaration{
		Name: "reverse", Desc: "returns a list with elements in reverse order", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			if !IsProperList(args[0]) {
				return nil, NewLispError(ENOTLIST, "reverse: not a proper list")
			}
			items := ToVector(args[0])
			out := make([]Value, len(items))
			for i, v := range items {
				out[len(items)-1-i] = v
			}
			return FromVector(out), nil
		},
	})
	Declare(env, &Declaration{
		Name: "map", Desc: "applies a procedure to each element of a list and collects the results", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			if !IsProperList(args[1]) {
				return nil, NewLispError(ENOTLIST, "map: not a proper list")
			}
			if !IsProcedure(args[0]) {
				return nil, typeError("map", "procedure", args[0])
			}
			items := ToVector(args[1])
			out := make([]Value, len(items))
			for i, item := range items {
				v, err := ApplyIn(args[0], []Value{item}, callerEnv)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return FromVector(out), nil
		},
	})
	Declare(env, &Declaration{
		Name: "filter", Desc: "returns the elements of a list that satisfy a predicate", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			if !IsProperList(args[1]) {
				return nil, NewLispError(ENOTLIST, "filter: not a proper list")
			}
			if !IsProcedure(args[0]) {
				return nil, typeError("filter", "procedure", args[0])
			}
			var out []Value
			for _, item := range ToVector(args[1]) {
				v, err := ApplyIn(args[0], []Value{item}, callerEnv)
				if err != nil {
					return nil, err
				}
				if AsBoolean(v) {
					out = append(out, item)
				}
			}
			return FromVector(out), nil
		},
	})
	Declare(env, &Declaration{
		Name: "reduce", Desc: "right-folds a non-empty list into a single value with a binary procedure", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, callerEnv *Environment) (Value, error) {
			if !IsProperList(args[1]) {
				return nil, NewLispError(ENOTLIST, "reduce: not a proper list")
			}
			if !IsProcedure(args[0]) {
				return nil, typeError("reduce", "procedure", args[0])
			}
			items := ToVector(args[1])
			if len(items) == 0 {
				return nil, NewLispError(EARITY, "reduce: empty list")
			}
			// Right fold, iteratively: the accumulator starts at the
			// last element and the procedure sees (element, fold-of-rest).
			acc := items[len(items)-1]
			for i := len(items) - 2; i >= 0; i-- {
				v, err := ApplyIn(args[0], []Value{items[i], acc}, callerEnv)
				if err != nil {
					return nil, err
				}
				acc = v
			}
			return acc, nil
		},
	})
}
