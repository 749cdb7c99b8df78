package stringutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want string
	}{
		{"shorter than limit", "Pets", 50, "Pets"},
		{"exact limit", "abcde", 5, "abcde"},
		{"longer than limit", "abcdefgh", 3, "abc"},
		{"empty", "", 10, ""},
		{"zero limit", "abc", 0, ""},
		{"negative limit", "abc", -1, ""},
		{"multi-byte runes", "héllo wörld", 7, "héllo w"},
		{"emoji", "🐶🐱🐭🐹", 2, "🐶🐱"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.n); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.n, got, tt.want)
			}
		})
	}
}
