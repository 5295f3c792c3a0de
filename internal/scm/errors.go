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

import "fmt"

// ErrorCode identifies the kind of failure a SyntaxError or LispError
// carries. The numbering has no meaning beyond distinguishing cases in
// tests; callers should match on the message or on the Go error value,
// not on the numeric code.
type ErrorCode int

// Error codes raised by the lexer and reader (SyntaxError) and by the
// evaluator, special forms, and built-ins (LispError).
const (
	_            ErrorCode = iota
	ELEXER                 // malformed token: bad number, unterminated string, stray delimiter
	ESYNTAX                // malformed datum: unbalanced parens, bad dotted pair, empty input
	EUNBOUND               // reference to an undefined symbol
	EARITY                 // wrong number of arguments to a procedure or special form
	EBADTYPE               // argument of the wrong value class
	EDIVZERO               // division, remainder, or modulo by zero
	ENOMATCH               // cond fell through with no matching clause
	ENOTPROC               // attempt to call a non-procedure value
	ENOTLIST               // attempt to treat a non-list value as a list
	EUSER                  // user-initiated (error ...) call
	EUNSUPPORTED           // a recognised but intentionally unimplemented feature
)

// SyntaxError is raised by the lexer or the reader: malformed tokens,
// unbalanced parentheses, or a malformed dotted pair. It never escapes
// a complete, well-formed expression.
type SyntaxError struct {
	Code    ErrorCode
	Message string
}

// NewSyntaxError builds a SyntaxError with the given code and message.
func NewSyntaxError(code ErrorCode, msg string) *SyntaxError {
	return &SyntaxError{code, msg}
}

// NewSyntaxErrorf builds a SyntaxError with a formatted message.
func NewSyntaxErrorf(code ErrorCode, format string, args ...any) *SyntaxError {
	return &SyntaxError{code, fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return e.Message
}

// LispError is raised by the evaluator, special forms, and built-ins for
// unbound symbols, arity mismatches, type mismatches, division by zero,
// empty reduce, no-matching-cond, and user-initiated (error ...) calls.
// The surface REPL prints it as "Error: <message>".
type LispError struct {
	Code    ErrorCode
	Message string
}

// NewLispError builds a LispError with the given code and message.
func NewLispError(code ErrorCode, msg string) *LispError {
	return &LispError{code, msg}
}

// NewLispErrorf builds a LispError with a formatted message.
func NewLispErrorf(code ErrorCode, format string, args ...any) *LispError {
	return &LispError{code, fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *LispError) Error() string {
	return e.Message
}

// ErrorMessage returns the message without the "Error: " prefix the REPL
// driver adds.
func (e *LispError) ErrorMessage() string {
	return e.Message
}

// arityError is a convenience constructor for built-ins and special forms
// reporting a wrong argument count.
func arityError(name string, want, got int) *LispError {
	return NewLispErrorf(EARITY, "%s: expected %d argument(s), got %d", name, want, got)
}

// typeError is a convenience constructor for built-ins reporting that an
// argument was not of the expected value class.
func typeError(name, expected string, got Value) *LispError {
	return NewLispErrorf(EBADTYPE, "%s: expected %s, got %s", name, expected, writeText(got))
}
