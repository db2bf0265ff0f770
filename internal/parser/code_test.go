package parser

import "testing"

func TestExtract(t *testing.T) {
	e := NewCodeExtractor()

	tests := []struct {
		name   string
		in     string
		want   string
		wantOK bool
	}{
		{"plain code", "Your code is 123456", "123456", true},
		{"code at start", "654321 is your code", "654321", true},
		{"code only", "123456", "123456", true},
		{"punctuation bounds", "code: 111222.", "111222", true},
		{"first of two", "use 111111 or 222222", "111111", true},
		{"seven digits", "order number 1234567", "", false},
		{"long run with real code", "ref 12345678, code 987654", "987654", true},
		{"five digits", "pin 12345", "", false},
		{"no digits", "hello there", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := e.Extract(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Extract(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
