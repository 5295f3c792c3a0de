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

func registerArithmeticBuiltins(env *Environment) {
	Declare(env, &Declaration{
		Name: "+", Desc: "adds zero or more numbers", MinParams: 0, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("+", args)
			if err != nil {
				return nil, err
			}
			v := 0.0
			for _, n := range nums {
				v += n
			}
			return Number(v), nil
		},
	})
	Declare(env, &Declaration{
		Name: "-", Desc: "subtracts the rest from the first number, or negates a single number", MinParams: 1, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("-", args)
			if err != nil {
				return nil, err
			}
			if len(nums) == 1 {
				return Number(-nums[0]), nil
			}
			v := nums[0]
			for _, n := range nums[1:] {
				v -= n
			}
			return Number(v), nil
		},
	})
	Declare(env, &Declaration{
		Name: "*", Desc: "multiplies zero or more numbers", MinParams: 0, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("*", args)
			if err != nil {
				return nil, err
			}
			v := 1.0
			for _, n := range nums {
				v *= n
			}
			return Number(v), nil
		},
	})
	Declare(env, &Declaration{
		Name: "/", Desc: "divides the first number by the rest, or inverts a single number", MinParams: 1, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("/", args)
			if err != nil {
				return nil, err
			}
			if len(nums) == 1 {
				if nums[0] == 0 {
					return nil, NewLispError(EDIVZERO, "/: division by zero")
				}
				return Number(1 / nums[0]), nil
			}
			v := nums[0]
			for _, n := range nums[1:] {
				if n == 0 {
					return nil, NewLispError(EDIVZERO, "/: division by zero")
				}
				v /= n
			}
			return Number(v), nil
		},
	})
	Declare(env, &Declaration{
		Name: "abs", Desc: "returns the absolute value of a number", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			n, err := numberArg("abs", args[0])
			if err != nil {
				return nil, err
			}
			return Number(math.Abs(n)), nil
		},
	})
	Declare(env, &Declaration{
		Name: "expt", Desc: "raises a number to a power", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("expt", args)
			if err != nil {
				return nil, err
			}
			if nums[0] == 0 && nums[1] <= 0 {
				return nil, NewLispError(EDIVZERO, "expt: zero base requires a positive exponent")
			}
			return Number(math.Pow(nums[0], nums[1])), nil
		},
	})
	Declare(env, &Declaration{
		Name: "quotient", Desc: "integer division of the first number by the second", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("quotient", args)
			if err != nil {
				return nil, err
			}
			if nums[1] == 0 {
				return nil, NewLispError(EDIVZERO, "quotient: division by zero")
			}
			return Number(math.Trunc(nums[0] / nums[1])), nil
		},
	})
	Declare(env, &Declaration{
		Name: "remainder", Desc: "remainder of truncating division, sign follows the dividend", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("remainder", args)
			if err != nil {
				return nil, err
			}
			if nums[1] == 0 {
				return nil, NewLispError(EDIVZERO, "remainder: division by zero")
			}
			return Number(math.Mod(nums[0], nums[1])), nil
		},
	})
	Declare(env, &Declaration{
		Name: "modulo", Desc: "remainder of flooring division, sign follows the divisor", MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs("modulo", args)
			if err != nil {
				return nil, err
			}
			if nums[1] == 0 {
				return nil, NewLispError(EDIVZERO, "modulo: division by zero")
			}
			m := math.Mod(nums[0], nums[1])
			if m != 0 && (m < 0) != (nums[1] < 0) {
				m += nums[1]
			}
			return Number(m), nil
		},
	})
}

func numberArg(name string, v Value) (float64, error) {
	n, ok := AsNumber(v)
	if !ok {
		return 0, typeError(name, "number", v)
	}
	return n, nil
}

func numberArgs(name string, args []Value) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		n, err := numberArg(name, a)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
