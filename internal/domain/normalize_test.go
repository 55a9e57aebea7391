package domain

import "testing"

func TestNormalizeWord(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain word", "rental", "rental"},
		{"uppercase", "RENTAL", "rental"},
		{"surrounding whitespace", "  learnt \n", "learnt"},
		{"embedded space rejected", "learnt s", ""},
		{"apostrophe rejected", "don't", ""},
		{"hyphen rejected", "well-known", ""},
		{"digits rejected", "abc123", ""},
		{"empty line", "", ""},
		{"whitespace only", "   ", ""},
		{"non-ascii rejected", "café", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWord(tt.in); got != tt.want {
				t.Errorf("NormalizeWord(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsWordToken(t *testing.T) {
	if !IsWordToken("rental") {
		t.Error(`IsWordToken("rental") = false, want true`)
	}
	if IsWordToken("Rental") {
		t.Error(`IsWordToken("Rental") = true, want false`)
	}
	if IsWordToken("") {
		t.Error(`IsWordToken("") = true, want false`)
	}
}
