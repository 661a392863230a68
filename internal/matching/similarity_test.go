package matching

import (
	"math"
	"testing"
)

func TestStringSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{name: "identical", a: "berlin", b: "berlin", expected: 1},
		{name: "empty left", a: "", b: "berlin", expected: 0},
		{name: "empty right", a: "berlin", b: "", expected: 0},
		{name: "both empty", a: "", b: "", expected: 0},
		{name: "single substitution", a: "berlin", b: "merlin", expected: 1 - 1.0/6},
		{name: "single insertion", a: "berlin", b: "berlinn", expected: 1 - 1.0/7},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", expected: 1 - 3.0/7},
		{name: "completely different", a: "abc", b: "xyz", expected: 0},
		{name: "unicode runes", a: "straße", b: "strasse", expected: 1 - 2.0/7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("StringSimilarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestStringSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"berlin", "berlinn"},
		{"main", "maine"},
		{"hauptstraße", "haupstrasse"},
		{"", "x"},
		{"short", "a much longer string entirely"},
	}
	for _, p := range pairs {
		ab := StringSimilarity(p[0], p[1])
		ba := StringSimilarity(p[1], p[0])
		if ab != ba {
			t.Errorf("StringSimilarity not symmetric for (%q, %q): %v vs %v", p[0], p[1], ab, ba)
		}
	}
}

func TestStringSimilarityRange(t *testing.T) {
	pairs := [][2]string{
		{"a", "zzzzzzzzzz"},
		{"identical", "identical"},
		{"10115", "10999"},
		{"x", "y"},
	}
	for _, p := range pairs {
		got := StringSimilarity(p[0], p[1])
		if got < 0 || got > 1 {
			t.Errorf("StringSimilarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
		}
	}
}
