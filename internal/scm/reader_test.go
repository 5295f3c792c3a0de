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

// verifyRead parses each input and checks its written form against the
// expected text.
func verifyRead(t *testing.T, inputs map[string]string) {
	t.Helper()
	for input, want := range inputs {
		v, err := ReadOne(input)
		if err != nil {
			t.Errorf("ReadOne(%q) failed: %v", input, err)
			continue
		}
		if got := writeText(v); got != want {
			t.Errorf("ReadOne(%q) = %q, want %q", input, got, want)
		}
	}
}

// verifyReadError parses each input and checks that reading fails with
// the associated message.
func verifyReadError(t *testing.T, inputs map[string]string) {
	t.Helper()
	for input, want := range inputs {
		_, err := ReadOne(input)
		if err == nil {
			t.Errorf("ReadOne(%q) should have failed with %q", input, want)
			continue
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("ReadOne(%q) failed with %q, want %q", input, err.Error(), want)
		}
	}
}

func TestReadAtoms(t *testing.T) {
	verifyRead(t, map[string]string{
		"42":      "42",
		"-3.5":    "-3.5",
		"#t":      "#t",
		"#f":      "#f",
		`"foo"`:   `"foo"`,
		"foo-bar": "foo-bar",
		"zero?":   "zero?",
	})
}

func TestReadLists(t *testing.T) {
	verifyRead(t, map[string]string{
		"()":                  "()",
		"(foo)":               "(foo)",
		"(foo  bar    baz)":   "(foo bar baz)",
		"(foo\n  (bar\nbaz))": "(foo (bar baz))",
		"(1 (2 (3 (4))))":     "(1 (2 (3 (4))))",
	})
}

func TestReadDottedPairs(t *testing.T) {
	verifyRead(t, map[string]string{
		"(a . b)":        "(a . b)",
		"(a b . c)":      "(a b . c)",
		"(a . (b . ()))": "(a b)",
	})
}

func TestReadQuotationSugar(t *testing.T) {
	verifyRead(t, map[string]string{
		"'foo":    "(quote foo)",
		"'(1 2)":  "(quote (1 2))",
		"`(1 ,x)": "(quasiquote (1 (unquote x)))",
		"''a":     "(quote (quote a))",
		"'()":     "(quote ())",
	})
}

func TestReadErrors(t *testing.T) {
	verifyReadError(t, map[string]string{
		"":          "unexpected end of input",
		"(1 2":      "unexpected end of input",
		")":         "unexpected )",
		"(. b)":     "unexpected . at start of list",
		"(a . b c)": "malformed dotted pair",
		`"oops`:     "unterminated string",
		"'":         "unexpected end of input",
	})
}

// TestReadWriteRoundTrip checks that re-reading a value's written form
// yields an equal? value.
func TestReadWriteRoundTrip(t *testing.T) {
	inputs := []string{
		"42", "-3.5", "#t", "#f", `"a\"b"`, "sym",
		"()", "(1 2 3)", "(a (b c) . d)", "'(1 (2) 3)",
	}
	for _, input := range inputs {
		v, err := ReadOne(input)
		if err != nil {
			t.Fatalf("ReadOne(%q) failed: %v", input, err)
		}
		again, err := ReadOne(writeText(v))
		if err != nil {
			t.Fatalf("re-reading %q failed: %v", writeText(v), err)
		}
		eq, err := structurallyEqual(v, again)
		if err != nil {
			t.Fatalf("comparing %q: %v", input, err)
		}
		if !eq {
			t.Errorf("round trip of %q changed the value: %q", input, writeText(again))
		}
	}
}

// TestReadAllMultipleForms checks that ReadAll splits a program into its
// top-level datums.
func TestReadAllMultipleForms(t *testing.T) {
	forms, err := ReadAll("(define x 1)\n(+ x 2) ; comment\n42")
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms, got %d", len(forms))
	}
	if got := writeText(forms[1]); got != "(+ x 2)" {
		t.Errorf("second form = %q, want %q", got, "(+ x 2)")
	}
}
