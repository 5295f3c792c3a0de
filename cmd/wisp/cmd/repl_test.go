package cmd

import (
	"testing"

	"github.com/a1henu/mini-lisp/internal/scm"
)

func TestParenDepth(t *testing.T) {
	cases := map[string]int{
		"":                 0,
		"(+ 1 2)":          0,
		"(define (f x)":    2,
		"(let ((x 1)":      3,
		"\"(not a paren\"": 0,
		"(display \")\")":  0,
		"\"esc \\\" (\"":   0,
		"())":              0,
	}
	for input, want := range cases {
		if got := parenDepth(input); got != want {
			t.Errorf("parenDepth(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestNeedsMoreInput(t *testing.T) {
	_, err := scm.ReadOne("(define (f x)")
	if err == nil {
		t.Fatal("expected an incomplete-form error")
	}
	if !needsMoreInput(err) {
		t.Errorf("incomplete form should ask for more input, got %v", err)
	}

	_, err = scm.ReadOne(")")
	if err == nil {
		t.Fatal("expected a syntax error")
	}
	if needsMoreInput(err) {
		t.Error("a stray ) is a hard error, not a continuation")
	}
}

func TestPromptColor(t *testing.T) {
	noColor = false
	if got := prompt(">>> "); got == ">>> " {
		t.Error("colored prompt should carry escape codes")
	}
	noColor = true
	if got := prompt(">>> "); got != ">>> " {
		t.Errorf("plain prompt = %q, want %q", got, ">>> ")
	}
	noColor = false
}
