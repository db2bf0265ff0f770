package parser

import (
	"strings"
	"testing"
)

func TestNormalizeMergesHTMLFragments(t *testing.T) {
	n := NewNormalizer()

	// A code split across fragments must survive as one contiguous run
	got := n.Normalize("", []string{"<p>Your code is 123", "456</p>"})
	if !strings.Contains(got, "123456") {
		t.Fatalf("normalized text %q does not contain contiguous code", got)
	}
}

func TestNormalizeStripsMarkup(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize("", []string{"<div><b>Hello</b> world</div>"})
	if strings.ContainsAny(got, "<>") {
		t.Fatalf("markup left in normalized text: %q", got)
	}
	if !strings.Contains(got, "Hello world") {
		t.Fatalf("text content lost: %q", got)
	}
}

func TestNormalizeRejoinsDigitGaps(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single gap", "code 123 456", "code 123456"},
		{"many gaps", "1 2 3 4 5 6", "123456"},
		{"gap with newline", "98\n7654", "987654"},
		{"no gap", "already 123456 here", "already 123456 here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Normalize(tt.in, nil); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotentOnCleanText(t *testing.T) {
	n := NewNormalizer()

	inputs := []string{
		"Your verification code is 654321",
		"plain text without digits",
		"",
	}
	for _, in := range inputs {
		once := n.Normalize(in, nil)
		twice := n.Normalize(once, nil)
		if once != twice {
			t.Errorf("not idempotent: first %q, second %q", once, twice)
		}
	}
}

func TestNormalizeConcatenatesTextAndHTML(t *testing.T) {
	n := NewNormalizer()

	got := n.Normalize("plain part", []string{"<p>html part</p>"})
	if !strings.Contains(got, "plain part") || !strings.Contains(got, "html part") {
		t.Fatalf("both bodies must survive, got %q", got)
	}
}
