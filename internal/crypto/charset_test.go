package crypto

import (
	"strings"
	"testing"
)

func TestAlphabet(t *testing.T) {
	if len(Alphabet) != 70 {
		t.Fatalf("len(Alphabet) = %d, want 70", len(Alphabet))
	}

	seen := make(map[rune]bool)
	for _, ch := range Alphabet {
		if seen[ch] {
			t.Errorf("Alphabet contains %q twice", string(ch))
		}
		seen[ch] = true
	}

	var joined strings.Builder
	for _, c := range Classes {
		joined.WriteString(c.Chars())
	}
	if joined.String() != Alphabet {
		t.Errorf("classes concatenate to %q, want %q", joined.String(), Alphabet)
	}
}

func TestClassChars(t *testing.T) {
	tests := []struct {
		class CharClass
		name  string
		size  int
	}{
		{Lowercase, "lowercase", 26},
		{Uppercase, "uppercase", 26},
		{Digit, "digit", 10},
		{Special, "special", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.class.String() != tt.name {
				t.Errorf("String() = %q, want %q", tt.class.String(), tt.name)
			}
			if len(tt.class.Chars()) != tt.size {
				t.Errorf("len(Chars()) = %d, want %d", len(tt.class.Chars()), tt.size)
			}
			for _, ch := range tt.class.Chars() {
				if got := Classify(ch); got != tt.class {
					t.Errorf("Classify(%q) = %v, want %v", string(ch), got, tt.class)
				}
			}
		})
	}

	if Special.Chars() != "!@#$%^&*" {
		t.Errorf("Special.Chars() = %q", Special.Chars())
	}
	if CharClass(9).String() != "unknown" || CharClass(9).Chars() != "" {
		t.Error("out of range class should be unknown with no characters")
	}
}
