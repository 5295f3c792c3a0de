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
	"strconv"
	"strings"
)

func registerStringBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "string-length", Desc: "returns the number of characters in a string", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			s, err := stringArg("string-length", args[0])
			if err != nil {
				return nil, err
			}
			return Number(float64(len([]rune(s)))), nil
		},
	})
	Declare(env, &Declaration{
		Name: "string-append", Desc: "concatenates zero or more strings", MinParams: 0, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			var b strings.Builder
			for _, a := range args {
				s, err := stringArg("string-append", a)
				if err != nil {
					return nil, err
				}
				b.WriteString(s)
			}
			return NewString(b.String()), nil
		},
	})
	Declare(env, &Declaration{
		Name: "substring", Desc: "returns the substring from a start index up to an optional end index", MinParams: 2, MaxParams: 3,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			s, err := stringArg("substring", args[0])
			if err != nil {
				return nil, err
			}
			runes := []rune(s)
			start, err := numberArg("substring", args[1])
			if err != nil {
				return nil, err
			}
			end := float64(len(runes))
			if len(args) == 3 {
				end, err = numberArg("substring", args[2])
				if err != nil {
					return nil, err
				}
			}
			if int(start) < 0 || int(end) > len(runes) || int(start) > int(end) {
				return nil, NewLispErrorf(EBADTYPE, "substring: index out of range")
			}
			return NewString(string(runes[int(start):int(end)])), nil
		},
	})
	Declare(env, &Declaration{
		Name: "string-upcase", Desc: "returns a copy of a string with letters upper-cased", MinParams: 1, MaxParams: 1,
		Fn: stringMapper("string-upcase", strings.ToUpper),
	})
	Declare(env, &Declaration{
		Name: "string-downcase", Desc: "returns a copy of a string with letters lower-cased", MinParams: 1, MaxParams: 1,
		Fn: stringMapper("string-downcase", strings.ToLower),
	})
	Declare(env, &Declaration{
		Name: "string=?", Desc: "reports whether two strings have identical contents", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			a, err := stringArg("string=?", args[0])
			if err != nil {
				return nil, err
			}
			b, err := stringArg("string=?", args[1])
			if err != nil {
				return nil, err
			}
			return Boolean(a == b), nil
		},
	})
	Declare(env, &Declaration{
		Name: "string->number", Desc: "parses a string as a number, or returns #f if it is not numeric", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			s, err := stringArg("string->number", args[0])
			if err != nil {
				return nil, err
			}
			n, parseErr := strconv.ParseFloat(s, 64)
			if parseErr != nil {
				return Boolean(false), nil
			}
			return Number(n), nil
		},
	})
	Declare(env, &Declaration{
		Name: "number->string", Desc: "renders a number as a string", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			n, err := numberArg("number->string", args[0])
			if err != nil {
				return nil, err
			}
			return NewString(formatNumber(n)), nil
		},
	})
	Declare(env, &Declaration{
		Name: "symbol->string", Desc: "renders a symbol as a string", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			sym, ok := AsSymbol(args[0])
			if !ok {
				return nil, typeError("symbol->string", "symbol", args[0])
			}
			return NewString(string(sym)), nil
		},
	})
	Declare(env, &Declaration{
		Name: "string->symbol", Desc: "interns a string as a symbol", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			s, err := stringArg("string->symbol", args[0])
			if err != nil {
				return nil, err
			}
			return Symbol(s), nil
		},
	})
}

func stringArg(name string, v Value) (string, error) {
	s, ok := AsString(v)
	if !ok {
		return "", typeError(name, "string", v)
	}
	return s, nil
}

func stringMapper(name string, f func(string) string) BuiltinFunc {
	return func(args []Value, _ *Environment) (Value, error) {
		s, err := stringArg(name, args[0])
		if err != nil {
			return nil, err
		}
		return NewString(f(s)), nil
	}
}
