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

// Package scm implements the evaluator for the mini-lisp dialect: the
// value universe, lexer, reader, environment, special forms, and the
// built-in procedure library. Its only I/O is the standard input and
// output used by the display, displayln, newline, print, and readline
// built-ins; the REPL, file, and serve drivers under cmd/wisp build an
// environment with NewRootEnvironmentWithBuiltins, read source with
// ReadOne or ReadAll, and use Evaluate and ToDisplayText.
package scm

import (
	"math"
	"strconv"
	"strings"
)

// Value is the tagged sum of the eight runtime value variants: Boolean,
// Number, String, Symbol, Nil, Pair, Builtin, and Lambda. Rather than a
// subclass hierarchy with dynamic casts, each variant is a distinct Go
// type and dispatch happens via type switch, deriving display, equality,
// and predicate behaviour from the tag.
type Value interface {
	valueTag()
}

// Boolean is one of the two atoms true or false.
type Boolean bool

// Number is an IEEE-754 double; all numeric built-ins coerce through it.
type Number float64

// Symbol is an identifier. Two symbols are semantically equal iff their
// character sequences are equal, so Symbol is a plain comparable string
// type rather than a pointer — unlike String, which uses pointer identity
// for eq?.
type Symbol string

// Nil is the empty-list atom, distinct from any Pair.
type Nil struct{}

// NilValue is the single Nil instance; Nil carries no data so every
// construction is interchangeable, but a named value reads better at
// call sites than a repeated composite literal.
var NilValue Value = Nil{}

// String is an immutable sequence of characters. It is boxed behind a
// pointer (unlike Symbol) because eq? on strings uses reference
// identity; equal? compares contents.
type String struct {
	Text string
}

// NewString allocates a fresh String value wrapping text.
func NewString(text string) *String {
	return &String{Text: text}
}

// Pair is an ordered two-slot cons cell. A proper list is Nil or a Pair
// whose Cdr is a proper list; any other Cdr makes the list improper
// (dotted). Pair slots are never mutated after construction.
type Pair struct {
	Car Value
	Cdr Value
}

// NewPair conses car onto cdr.
func NewPair(car, cdr Value) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// BuiltinFunc is the native-Go shape of a Builtin procedure: it receives
// the already-evaluated argument sequence and the calling environment
// (builtins such as readline and eval need the latter).
type BuiltinFunc func(args []Value, env *Environment) (Value, error)

// Builtin is a named native procedure.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin wraps a native Go function as a procedure Value.
func NewBuiltin(name string, fn BuiltinFunc) *Builtin {
	return &Builtin{Name: name, Fn: fn}
}

// Lambda is a closure: a parameter list, a non-empty body of unevaluated
// expressions, and a reference to the environment that existed when the
// lambda special form ran. The environment keeps the closure's captured
// bindings alive for as long as the Lambda value itself is reachable.
type Lambda struct {
	Params []Symbol
	Body   []Value
	Env    *Environment
}

// NewLambda constructs a closure capturing env.
func NewLambda(params []Symbol, body []Value, env *Environment) *Lambda {
	return &Lambda{Params: params, Body: body, Env: env}
}

func (Boolean) valueTag()  {}
func (Number) valueTag()   {}
func (Symbol) valueTag()   {}
func (Nil) valueTag()      {}
func (*String) valueTag()  {}
func (*Pair) valueTag()    {}
func (*Builtin) valueTag() {}
func (*Lambda) valueTag()  {}

// AsBoolean reports the value's truthiness: only Boolean false is falsy;
// every other value — including Nil, 0, and the empty string — is truthy.
func AsBoolean(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// AsNumber partially extracts a Number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsString partially extracts a String's text.
func AsString(v Value) (string, bool) {
	s, ok := v.(*String)
	if !ok {
		return "", false
	}
	return s.Text, true
}

// AsSymbol partially extracts a Symbol.
func AsSymbol(v Value) (Symbol, bool) {
	s, ok := v.(Symbol)
	return s, ok
}

// IsProcedure reports whether v can be called.
func IsProcedure(v Value) bool {
	switch v.(type) {
	case *Builtin, *Lambda:
		return true
	default:
		return false
	}
}

// IsAtom reports whether v is an atom: Boolean, Number, String, Symbol,
// or Nil. Pairs and procedures are not atoms.
func IsAtom(v Value) bool {
	switch v.(type) {
	case *Pair, *Builtin, *Lambda:
		return false
	default:
		return true
	}
}

// IsProperList reports whether v is Nil or a Pair chain that ends in Nil.
func IsProperList(v Value) bool {
	for {
		switch t := v.(type) {
		case Nil:
			return true
		case *Pair:
			v = t.Cdr
		default:
			return false
		}
	}
}

// ToVector flattens a list value into a Go slice. For Nil it returns an
// empty slice. For a proper list it returns the elements in order. For
// an improper list it returns the proper prefix followed by the
// terminal non-list cdr as the final element — callers that require a
// proper list (apply, map, filter, reduce, length, ...) must check
// IsProperList themselves and reject the improper case; ToVector alone
// cannot fail.
func ToVector(v Value) []Value {
	var out []Value
	for {
		switch t := v.(type) {
		case Nil:
			return out
		case *Pair:
			out = append(out, t.Car)
			v = t.Cdr
		default:
			return append(out, t)
		}
	}
}

// FromVector builds a proper list out of a Go slice, the inverse of the
// proper-list case of ToVector.
func FromVector(vs []Value) Value {
	var result Value = NilValue
	for i := len(vs) - 1; i >= 0; i-- {
		result = NewPair(vs[i], result)
	}
	return result
}

// displayText renders v the way it is meant to be read by a person:
// strings unquoted, no trailing newline (callers such as displayln add
// that).
func displayText(v Value) string {
	var b strings.Builder
	writeValue(&b, v, false)
	return b.String()
}

// writeText renders v in a machine-faithful form: strings are quoted
// with escapes, integral numbers render without a decimal point, pairs
// render as "(a b c)" or "(a b . c)", Nil as "()", booleans as #t/#f,
// and procedures as a fixed sentinel.
func writeText(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, quoted bool) {
	switch t := v.(type) {
	case Boolean:
		if t {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case Number:
		b.WriteString(formatNumber(float64(t)))
	case Symbol:
		b.WriteString(string(t))
	case Nil:
		b.WriteString("()")
	case *String:
		if quoted {
			b.WriteString(quoteString(t.Text))
		} else {
			b.WriteString(t.Text)
		}
	case *Pair:
		writePair(b, t, quoted)
	case *Builtin:
		b.WriteString("#<procedure>")
	case *Lambda:
		b.WriteString("#<procedure>")
	default:
		b.WriteString("#<unknown>")
	}
}

func writePair(b *strings.Builder, p *Pair, quoted bool) {
	b.WriteByte('(')
	writeValue(b, p.Car, quoted)
	rest := p.Cdr
	for {
		switch t := rest.(type) {
		case Nil:
			b.WriteByte(')')
			return
		case *Pair:
			b.WriteByte(' ')
			writeValue(b, t.Car, quoted)
			rest = t.Cdr
		default:
			b.WriteString(" . ")
			writeValue(b, rest, quoted)
			b.WriteByte(')')
			return
		}
	}
}

// formatNumber renders integral numbers without a trailing decimal
// point (so 6 prints as "6", not "6.0") and everything else via the
// shortest round-tripping representation.
func formatNumber(f float64) string {
	if math.IsInf(f, 1) {
		return "+inf.0"
	}
	if math.IsInf(f, -1) {
		return "-inf.0"
	}
	if math.IsNaN(f) {
		return "+nan.0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e18 {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// ToDisplayText is the renderer the REPL and file drivers consume to
// print a top-level result; it is the display form, not the write form.
func ToDisplayText(v Value) string {
	return displayText(v)
}
