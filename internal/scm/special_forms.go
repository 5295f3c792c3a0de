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

// specialFormFn implements one special form. It receives the form's
// unevaluated operand list (the Cdr of the call pair) and the
// environment the form appears in. It returns either:
//   - (nextExpr, nextEnv, nil, nil) to ask the evaluator's own loop to
//     continue evaluating nextExpr in nextEnv, putting the form's
//     result in tail position without growing the Go call stack, or
//   - (nil, nil, result, nil) when the form already has a final value, or
//   - (nil, nil, nil, err) on failure.
//
// Special forms are dispatched by symbol lookup before any operand is
// evaluated, which is what lets quote, if, lambda, and the rest choose
// which operands to evaluate at all.
type specialFormFn func(operands Value, env *Environment) (nextExpr Value, nextEnv *Environment, result Value, err error)

var specialForms map[Symbol]specialFormFn

func init() {
	specialForms = map[Symbol]specialFormFn{
		"define":     evalDefine,
		"quote":      evalQuote,
		"quasiquote": evalQuasiquote,
		"if":         evalIf,
		"and":        evalAnd,
		"or":         evalOr,
		"lambda":     evalLambda,
		"cond":       evalCond,
		"let":        evalLet,
		"begin":      evalBegin,
	}
}

// evalDefine implements both (define name expr) and the function
// shorthand (define (name params...) body...), which desugars to
// (define name (lambda (params...) body...)).
func evalDefine(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) < 2 {
		return nil, nil, nil, arityError("define", 2, len(items))
	}
	switch target := items[0].(type) {
	case Symbol:
		if len(items) != 2 {
			return nil, nil, nil, arityError("define", 2, len(items))
		}
		v, err := Evaluate(items[1], env)
		if err != nil {
			return nil, nil, nil, err
		}
		env.Define(target, v)
		return nil, nil, NilValue, nil
	case *Pair:
		nameSym, ok := target.Car.(Symbol)
		if !ok {
			return nil, nil, nil, typeError("define", "symbol", target.Car)
		}
		params, err := symbolList(target.Cdr)
		if err != nil {
			return nil, nil, nil, err
		}
		lambda := NewLambda(params, items[1:], env)
		env.Define(nameSym, lambda)
		return nil, nil, NilValue, nil
	default:
		return nil, nil, nil, typeError("define", "symbol or parameter list", items[0])
	}
}

func evalQuote(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) != 1 {
		return nil, nil, nil, arityError("quote", 1, len(items))
	}
	return nil, nil, items[0], nil
}

// evalQuasiquote implements single-level quasiquote: every (unquote x)
// subform, at any depth of the template, is evaluated and substituted by
// value; nested quasiquote and unquote-splicing (,@) are not supported.
func evalQuasiquote(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) != 1 {
		return nil, nil, nil, arityError("quasiquote", 1, len(items))
	}
	v, err := quasiExpand(items[0], env)
	if err != nil {
		return nil, nil, nil, err
	}
	return nil, nil, v, nil
}

func quasiExpand(expr Value, env *Environment) (Value, error) {
	pair, ok := expr.(*Pair)
	if !ok {
		return expr, nil
	}
	if sym, ok := pair.Car.(Symbol); ok && sym == "unquote" {
		rest := ToVector(pair.Cdr)
		if len(rest) != 1 {
			return nil, arityError("unquote", 1, len(rest))
		}
		return Evaluate(rest[0], env)
	}
	car, err := quasiExpand(pair.Car, env)
	if err != nil {
		return nil, err
	}
	cdr, err := quasiExpand(pair.Cdr, env)
	if err != nil {
		return nil, err
	}
	return NewPair(car, cdr), nil
}

func evalIf(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) != 2 && len(items) != 3 {
		return nil, nil, nil, NewLispErrorf(EARITY, "if: expected 2 or 3 arguments, got %d", len(items))
	}
	test, err := Evaluate(items[0], env)
	if err != nil {
		return nil, nil, nil, err
	}
	if AsBoolean(test) {
		return items[1], env, nil, nil
	}
	if len(items) == 3 {
		return items[2], env, nil, nil
	}
	return nil, nil, NilValue, nil
}

// evalAnd evaluates operands left to right, short-circuiting on the
// first falsy result; with no operands it returns #t.
func evalAnd(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) == 0 {
		return nil, nil, Boolean(true), nil
	}
	for _, item := range items[:len(items)-1] {
		v, err := Evaluate(item, env)
		if err != nil {
			return nil, nil, nil, err
		}
		if !AsBoolean(v) {
			return nil, nil, v, nil
		}
	}
	return items[len(items)-1], env, nil, nil
}

// evalOr evaluates operands left to right, short-circuiting on the
// first truthy result; with no operands it returns #f.
func evalOr(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) == 0 {
		return nil, nil, Boolean(false), nil
	}
	for _, item := range items[:len(items)-1] {
		v, err := Evaluate(item, env)
		if err != nil {
			return nil, nil, nil, err
		}
		if AsBoolean(v) {
			return nil, nil, v, nil
		}
	}
	return items[len(items)-1], env, nil, nil
}

func evalLambda(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) < 2 {
		return nil, nil, nil, arityError("lambda", 2, len(items))
	}
	params, err := symbolList(items[0])
	if err != nil {
		return nil, nil, nil, err
	}
	return nil, nil, NewLambda(params, items[1:], env), nil
}

// evalCond evaluates clause tests in order, each clause shaped
// (test body...) or, in final position only, (else body...); the
// winning clause's body is handed back as a tail expression. A clause
// with an empty body yields its test's value. With no matching clause
// cond fails.
func evalCond(operands Value, env *Environment) (Value, *Environment, Value, error) {
	clauses := ToVector(operands)
	if len(clauses) == 0 {
		return nil, nil, nil, NewLispError(ESYNTAX, "cond: expected at least one clause")
	}
	for i, clause := range clauses {
		parts := ToVector(clause)
		if len(parts) == 0 {
			return nil, nil, nil, NewLispError(ESYNTAX, "cond: empty clause")
		}
		isElse := false
		if sym, ok := parts[0].(Symbol); ok && sym == "else" {
			if i != len(clauses)-1 {
				return nil, nil, nil, NewLispError(ESYNTAX, "cond: else clause must come last")
			}
			isElse = true
		}
		var test Value
		if !isElse {
			v, err := Evaluate(parts[0], env)
			if err != nil {
				return nil, nil, nil, err
			}
			test = v
			if !AsBoolean(test) {
				continue
			}
		}
		body := parts[1:]
		if len(body) == 0 {
			if isElse {
				return nil, nil, nil, NewLispError(ESYNTAX, "cond: empty else clause")
			}
			return nil, nil, test, nil
		}
		for _, form := range body[:len(body)-1] {
			if _, err := Evaluate(form, env); err != nil {
				return nil, nil, nil, err
			}
		}
		return body[len(body)-1], env, nil, nil
	}
	return nil, nil, nil, NewLispError(ENOMATCH, "cond: no matching clause")
}

// evalLet implements the simple, non-recursive let: bindings are each
// (name expr), every expr is evaluated in the surrounding environment,
// then the body runs in one new frame holding all the bindings at once
// (not let*'s sequential visibility).
func evalLet(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) < 2 {
		return nil, nil, nil, arityError("let", 2, len(items))
	}
	bindingForms := ToVector(items[0])
	names := make([]Symbol, len(bindingForms))
	values := make([]Value, len(bindingForms))
	for i, bf := range bindingForms {
		parts := ToVector(bf)
		if len(parts) != 2 {
			return nil, nil, nil, NewLispError(ESYNTAX, "let: binding must be (name expr)")
		}
		name, ok := parts[0].(Symbol)
		if !ok {
			return nil, nil, nil, typeError("let", "symbol", parts[0])
		}
		v, err := Evaluate(parts[1], env)
		if err != nil {
			return nil, nil, nil, err
		}
		names[i] = name
		values[i] = v
	}
	letEnv := env.Extend(names, values)
	body := items[1:]
	for _, form := range body[:len(body)-1] {
		if _, err := Evaluate(form, letEnv); err != nil {
			return nil, nil, nil, err
		}
	}
	return body[len(body)-1], letEnv, nil, nil
}

func evalBegin(operands Value, env *Environment) (Value, *Environment, Value, error) {
	items := ToVector(operands)
	if len(items) == 0 {
		return nil, nil, NilValue, nil
	}
	for _, form := range items[:len(items)-1] {
		if _, err := Evaluate(form, env); err != nil {
			return nil, nil, nil, err
		}
	}
	return items[len(items)-1], env, nil, nil
}

func symbolList(v Value) ([]Symbol, error) {
	if !IsProperList(v) {
		return nil, NewLispError(ESYNTAX, "expected a proper parameter list")
	}
	items := ToVector(v)
	out := make([]Symbol, len(items))
	for i, item := range items {
		sym, ok := item.(Symbol)
		if !ok {
			return nil, typeError("parameter list", "symbol", item)
		}
		out[i] = sym
	}
	return out, nil
}
