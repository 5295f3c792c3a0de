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
	"strings"
	"testing"
)

// expectedLexerResult is equivalent to a token and is used in comparing
// the results from the lexer.
type expectedLexerResult struct {
	typ tokenType
	val string
}

// drainLexerChannel reads from the given channel until it closes.
func drainLexerChannel(c chan token) {
	for range c {
	}
}

// verifyLexerResults calls lex() and checks that the resulting tokens
// match the expected results.
func verifyLexerResults(t *testing.T, input string, expected []expectedLexerResult) {
	t.Helper()
	c := lex("unit", input)
	for i, e := range expected {
		tok, ok := <-c
		if !ok {
			t.Fatalf("lexer channel closed early (token %d)", i)
		}
		if tok.typ != e.typ {
			t.Errorf("expected type %v, got %v for %q (token %d)", e.typ, tok.typ, e.val, i)
		}
		if tok.val != e.val {
			t.Errorf("expected %q, got %q (token %d, type %v)", e.val, tok.val, i, e.typ)
		}
	}
	drainLexerChannel(c)
}

// verifyLexerErrors calls lex() on each input and checks that scanning
// fails with the associated error message.
func verifyLexerErrors(t *testing.T, inputs map[string]string) {
	t.Helper()
	for input, want := range inputs {
		c := lex("unit", input)
		var errTok *token
		for tok := range c {
			if tok.typ == tokenError {
				e := tok
				errTok = &e
				drainLexerChannel(c)
				break
			}
			if tok.typ == tokenEOF {
				break
			}
		}
		if errTok == nil {
			t.Errorf("expected %q to fail with %q", input, want)
			continue
		}
		if !strings.Contains(errTok.val, want) {
			t.Errorf("expected error %q but got %q for input %q", want, errTok.val, input)
		}
	}
}

func TestLexerComments(t *testing.T) {
	input := `; foo
; bar baz
42 ; trailing comment
`
	verifyLexerResults(t, input, []expectedLexerResult{
		{tokenNumber, "42"},
		{tokenEOF, ""},
	})
}

func TestLexerParensAndSugar(t *testing.T) {
	verifyLexerResults(t, "('a `b ,c)", []expectedLexerResult{
		{tokenOpenParen, "("},
		{tokenQuote, "'"},
		{tokenSymbol, "a"},
		{tokenQuasiquote, "`"},
		{tokenSymbol, "b"},
		{tokenUnquote, ","},
		{tokenSymbol, "c"},
		{tokenCloseParen, ")"},
		{tokenEOF, ""},
	})
}

func TestLexerNumbers(t *testing.T) {
	verifyLexerResults(t, "1 -2 3.25 +4 .5 1e3 -2.5e-2", []expectedLexerResult{
		{tokenNumber, "1"},
		{tokenNumber, "-2"},
		{tokenNumber, "3.25"},
		{tokenNumber, "+4"},
		{tokenNumber, ".5"},
		{tokenNumber, "1e3"},
		{tokenNumber, "-2.5e-2"},
		{tokenEOF, ""},
	})
}

func TestLexerSignsAreSymbols(t *testing.T) {
	verifyLexerResults(t, "+ - / * <= >= zero?", []expectedLexerResult{
		{tokenSymbol, "+"},
		{tokenSymbol, "-"},
		{tokenSymbol, "/"},
		{tokenSymbol, "*"},
		{tokenSymbol, "<="},
		{tokenSymbol, ">="},
		{tokenSymbol, "zero?"},
		{tokenEOF, ""},
	})
}

func TestLexerStrings(t *testing.T) {
	verifyLexerResults(t, `"foo" "a\"b" "tab\there" "line\nbreak" "back\\slash"`, []expectedLexerResult{
		{tokenString, "foo"},
		{tokenString, `a"b`},
		{tokenString, "tab\there"},
		{tokenString, "line\nbreak"},
		{tokenString, `back\slash`},
		{tokenEOF, ""},
	})
}

func TestLexerBooleans(t *testing.T) {
	verifyLexerResults(t, "#t #f (#t)", []expectedLexerResult{
		{tokenBoolean, "#t"},
		{tokenBoolean, "#f"},
		{tokenOpenParen, "("},
		{tokenBoolean, "#t"},
		{tokenCloseParen, ")"},
		{tokenEOF, ""},
	})
}

func TestLexerErrors(t *testing.T) {
	verifyLexerErrors(t, map[string]string{
		`"unterminated`: "unterminated string",
		`"trailing\`:    "unterminated string",
		"#q":            "unrecognized # syntax",
		"#true":         "malformed boolean",
	})
}
