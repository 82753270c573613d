package tui

import "testing"

func TestTruncateTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		max   int
		want  string
	}{
		{"short stays intact", "Random", 14, "Random"},
		{"exact length stays intact", "Expectimax", 10, "Expectimax"},
		{"long ascii is shortened", "Expectimax search", 10, "Expectima."},
		{"multibyte never split", "Случайное дерево", 10, "Случайное."},
		{"multibyte within limit", "Дерево", 14, "Дерево"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateTitle(tt.title, tt.max)
			if got != tt.want {
				t.Errorf("truncateTitle(%q, %d) = %q, want %q", tt.title, tt.max, got, tt.want)
			}
			if len([]rune(got)) > tt.max {
				t.Errorf("result %q exceeds %d runes", got, tt.max)
			}
		})
	}
}
