package solver

import "testing"

func TestHeuristics_LikelyPlural(t *testing.T) {
	h := DefaultHeuristics()

	tests := []struct {
		word string
		want bool
	}{
		{"trees", true},
		{"rentals", true},
		{"antlers", true},
		{"arts", false},     // length 4: heuristic requires > 4
		{"tens", false},     // length 4
		{"glass", false},    // "ss" ending
		{"stress", false},   // "ss" ending
		{"famous", false},   // "ous" exception
		{"darkness", false}, // "ness" exception
		{"restless", false}, // "less" exception
		{"serious", false},  // "ious" (and "ous") exception
		{"status", false},   // "us" exception
		{"rental", false},   // does not end in s
		{"s", false},        // too short
	}

	for _, tt := range tests {
		if got := h.LikelyPlural(tt.word); got != tt.want {
			t.Errorf("LikelyPlural(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestHeuristics_Obscure(t *testing.T) {
	h := DefaultHeuristics()

	tests := []struct {
		name string
		word string
		want bool
	}{
		{"ordinary word", "rental", false},
		{"fourteen characters pass", "abcdefghijklmn", false},
		{"fifteen characters rejected", "abcdefghijklmno", true},
		{"rare letter run qq", "sabiqq", true},
		{"mixed rare run xz", "taxzen", true},
		{"single rare letter ok", "exact", false},
		{"rare letters apart ok", "exotax", false},
		{"letter spam at 60 percent", "aaaala", true},
		{"repeats below threshold", "banana", false}, // 'a' is 3/6 = 50%
		{"short repeats exempt", "aaaa", false},      // below RepeatMinLen
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Obscure(tt.word); got != tt.want {
				t.Errorf("Obscure(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
