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
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestReplTranscript renders a whole interactive session the way the
// REPL driver would print it, one input and one result (or error) line
// per expression, and snapshots the transcript. A change to reading,
// evaluation, or rendering shows up as a readable transcript diff.
func TestReplTranscript(t *testing.T) {
	inputs := []string{
		"(+ 1 2 3)",
		"(define (fact n) (if (= n 0) 1 (* n (fact (- n 1)))))",
		"(fact 6)",
		"(map (lambda (x) (* x x)) '(1 2 3 4))",
		"(let ((x 2) (y 3)) (+ x y))",
		"`(1 ,(+ 1 1) 3)",
		"(reduce + '(1 2 3 4 5))",
		"(modulo -7 3)",
		"(remainder -7 3)",
		"(cond ((= 1 2) 'a) ((= 2 2) 'b) (else 'c))",
		"'(a . (b . c))",
		`(string-append "foo" "-" "bar")`,
		"(car '())",
		"undefined-symbol",
	}

	env := NewRootEnvironmentWithBuiltins()
	var b strings.Builder
	for _, input := range inputs {
		fmt.Fprintf(&b, ">>> %s\n", input)
		form, err := ReadOne(input)
		if err != nil {
			fmt.Fprintf(&b, "Error: %v\n", err)
			continue
		}
		result, err := Evaluate(form, env)
		if err != nil {
			fmt.Fprintf(&b, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(&b, ToDisplayText(result))
	}
	snaps.MatchSnapshot(t, b.String())
}

// TestHelpListingSnapshot pins the full help listing, so adding,
// renaming, or re-describing a built-in is a deliberate, reviewed
// change.
func TestHelpListingSnapshot(t *testing.T) {
	result, err := interpret("(help)")
	if err != nil {
		t.Fatalf("(help) failed: %v", err)
	}
	text, ok := AsString(result)
	if !ok {
		t.Fatalf("(help) returned a non-string: %s", writeText(result))
	}
	snaps.MatchSnapshot(t, text)
}
