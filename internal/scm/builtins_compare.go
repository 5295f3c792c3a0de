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

func registerComparisonBuiltins(env *Environment) {
	registerChainedComparison(env, "=", func(a, b float64) bool { return a == b })
	registerChainedComparison(env, "<", func(a, b float64) bool { return a < b })
	registerChainedComparison(env, ">", func(a, b float64) bool { return a > b })
	registerChainedComparison(env, "<=", func(a, b float64) bool { return a <= b })
	registerChainedComparison(env, ">=", func(a, b float64) bool { return a >= b })

	Declare(env, &Declaration{
		Name: "eq?", Desc: "reports whether two values are the same object (pointer identity for strings and pairs, value identity otherwise)",
		MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			for _, a := range args {
				if _, isLambda := a.(*Lambda); isLambda {
					return nil, typeError("eq?", "non-lambda value", a)
				}
			}
			return Boolean(eqIdentity(args[0], args[1])), nil
		},
	})
	Declare(env, &Declaration{
		Name: "equal?", Desc: "reports whether two values are structurally equal",
		MinParams: 2, MaxParams: 2,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			eq, err := structurallyEqual(args[0], args[1])
			if err != nil {
				return nil, err
			}
			return Boolean(eq), nil
		},
	})
	Declare(env, &Declaration{
		Name: "not", Desc: "negates a boolean value", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			return Boolean(!AsBoolean(args[0])), nil
		},
	})
	Declare(env, &Declaration{
		Name: "zero?", Desc: "reports whether a number is zero", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			n, err := numberArg("zero?", args[0])
			if err != nil {
				return nil, err
			}
			return Boolean(n == 0), nil
		},
	})
	Declare(env, &Declaration{
		Name: "even?", Desc: "reports whether an integer is even", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			n, err := integerArg("even?", args[0])
			if err != nil {
				return nil, err
			}
			return Boolean(n%2 == 0), nil
		},
	})
	Declare(env, &Declaration{
		Name: "odd?", Desc: "reports whether an integer is odd", MinParams: 1, MaxParams: 1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			n, err := integerArg("odd?", args[0])
			if err != nil {
				return nil, err
			}
			if n < 0 {
				n = -n
			}
			return Boolean(n%2 != 0), nil
		},
	})
}

func registerChainedComparison(env *Environment, name string, cmp func(a, b float64) bool) {
	Declare(env, &Declaration{
		Name: name, Desc: "compares two or more numbers pairwise", MinParams: 2, MaxParams: -1,
		Fn: func(args []Value, _ *Environment) (Value, error) {
			nums, err := numberArgs(name, args)
			if err != nil {
				return nil, err
			}
			for i := 0; i < len(nums)-1; i++ {
				if !cmp(nums[i], nums[i+1]) {
					return Boolean(false), nil
				}
			}
			return Boolean(true), nil
		},
	})
}

// eqIdentity is the shared identity rule behind eq?: pointer identity
// for the boxed variants (String, Pair, Builtin), value identity for
// the unboxed atoms (Boolean, Number, Symbol, Nil). Two freshly read
// equal strings are NOT eq? under this rule; equal? is the
// content-aware comparator.
func eqIdentity(a, b Value) bool {
	switch av := a.(type) {
	case Boolean:
		bv, ok := b.(Boolean)
		return ok && av == bv
	case Number:
		bv, ok := b.(Number)
		return ok && av == bv
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	case *String:
		bv, ok := b.(*String)
		return ok && av == bv
	case *Pair:
		bv, ok := b.(*Pair)
		return ok && av == bv
	case *Builtin:
		bv, ok := b.(*Builtin)
		return ok && av == bv
	case *Lambda:
		bv, ok := b.(*Lambda)
		return ok && av == bv
	default:
		return false
	}
}

// structurallyEqual implements equal?: recursive structural comparison
// for pairs, content comparison for strings, value comparison for the
// remaining atoms. Comparing procedures is an error, since there is no
// useful structural notion of procedure equality.
func structurallyEqual(a, b Value) (bool, error) {
	if IsProcedure(a) || IsProcedure(b) {
		which := a
		if !IsProcedure(which) {
			which = b
		}
		return false, typeError("equal?", "non-procedure value", which)
	}
	switch av := a.(type) {
	case *Pair:
		bv, ok := b.(*Pair)
		if !ok {
			return false, nil
		}
		carEq, err := structurallyEqual(av.Car, bv.Car)
		if err != nil || !carEq {
			return false, err
		}
		return structurallyEqual(av.Cdr, bv.Cdr)
	case *String:
		bv, ok := b.(*String)
		return ok && av.Text == bv.Text, nil
	default:
		return eqIdentity(a, b), nil
	}
}

// integerArg extracts an argument that must be a whole number.
func integerArg(name string, v Value) (int64, error) {
	n, err := numberArg(name, v)
	if err != nil {
		return 0, err
	}
	if n != float64(int64(n)) {
		return 0, typeError(name, "integer", v)
	}
	return int64(n), nil
}
