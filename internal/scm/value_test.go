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

import "testing"

func TestTruthiness(t *testing.T) {
	falsy := []Value{Boolean(false)}
	truthy := []Value{
		Boolean(true),
		Number(0),
		NewString(""),
		Symbol("x"),
		NilValue,
		NewPair(Number(1), NilValue),
	}
	for _, v := range falsy {
		if AsBoolean(v) {
			t.Errorf("%s should be falsy", writeText(v))
		}
	}
	for _, v := range truthy {
		if !AsBoolean(v) {
			t.Errorf("%s should be truthy", writeText(v))
		}
	}
}

func TestWriteText(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Boolean(true), "#t"},
		{Boolean(false), "#f"},
		{Number(6), "6"},
		{Number(-0.5), "-0.5"},
		{Number(1e18), "1e+18"},
		{NewString("a\"b\n"), `"a\"b\n"`},
		{Symbol("foo"), "foo"},
		{NilValue, "()"},
		{FromVector([]Value{Number(1), Number(2), Number(3)}), "(1 2 3)"},
		{NewPair(Number(1), Number(2)), "(1 . 2)"},
		{NewPair(Number(1), NewPair(Number(2), Number(3))), "(1 2 . 3)"},
		{NewBuiltin("car", nil), "#<procedure>"},
		{NewLambda(nil, []Value{Number(1)}, nil), "#<procedure>"},
	}
	for _, c := range cases {
		if got := writeText(c.v); got != c.want {
			t.Errorf("writeText = %q, want %q", got, c.want)
		}
	}
}

func TestDisplayTextUnquotesStrings(t *testing.T) {
	if got := displayText(NewString("a\"b")); got != `a"b` {
		t.Errorf("displayText = %q, want %q", got, `a"b`)
	}
	list := FromVector([]Value{NewString("x"), Number(1)})
	if got := displayText(list); got != "(x 1)" {
		t.Errorf("displayText = %q, want %q", got, "(x 1)")
	}
}

func TestToVector(t *testing.T) {
	if got := ToVector(NilValue); len(got) != 0 {
		t.Errorf("ToVector(()) should be empty, got %d elements", len(got))
	}
	proper := FromVector([]Value{Number(1), Number(2)})
	if got := ToVector(proper); len(got) != 2 {
		t.Errorf("ToVector on proper list: got %d elements", len(got))
	}
	improper := NewPair(Number(1), Number(2))
	got := ToVector(improper)
	if len(got) != 2 || writeText(got[1]) != "2" {
		t.Errorf("ToVector on improper list: got %v", got)
	}
}

func TestIsProperList(t *testing.T) {
	if !IsProperList(NilValue) {
		t.Error("() should be a proper list")
	}
	if !IsProperList(FromVector([]Value{Number(1)})) {
		t.Error("(1) should be a proper list")
	}
	if IsProperList(NewPair(Number(1), Number(2))) {
		t.Error("(1 . 2) should not be a proper list")
	}
	if IsProperList(Number(1)) {
		t.Error("1 should not be a proper list")
	}
}

func TestIsAtom(t *testing.T) {
	atoms := []Value{Boolean(true), Number(1), NewString("s"), Symbol("s"), NilValue}
	for _, v := range atoms {
		if !IsAtom(v) {
			t.Errorf("%s should be an atom", writeText(v))
		}
	}
	if IsAtom(NewPair(Number(1), NilValue)) {
		t.Error("a pair is not an atom")
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:       "0",
		6:       "6",
		-42:     "-42",
		2.5:     "2.5",
		1.0 / 3: "0.3333333333333333",
	}
	for f, want := range cases {
		if got := formatNumber(f); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", f, got, want)
		}
	}
}
