package backend

import "testing"

func TestDetectColors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		expected int
	}{
		{"no color", map[string]string{"NO_COLOR": "1", "TERM": "xterm-256color"}, 0},
		{"dumb", map[string]string{"TERM": "dumb"}, 0},
		{"unset", map[string]string{}, 0},
		{"truecolor", map[string]string{"TERM": "xterm", "COLORTERM": "truecolor"}, 1 << 24},
		{"direct", map[string]string{"TERM": "xterm-direct"}, 1 << 24},
		{"256", map[string]string{"TERM": "screen-256color"}, 256},
		{"basic", map[string]string{"TERM": "vt100"}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectColors(func(k string) string { return tt.env[k] })
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}
