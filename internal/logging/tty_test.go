package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
)

func TestSupportsColor(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"tty without overrides", map[string]string{}, true, true},
		{"NO_COLOR prevents color", map[string]string{"NO_COLOR": "1"}, true, false},
		{"empty NO_COLOR still prevents color", map[string]string{"NO_COLOR": ""}, true, false},
		{"TERM=dumb prevents color", map[string]string{"TERM": "dumb"}, true, false},
		{"other TERM allows color", map[string]string{"TERM": "xterm-256color"}, true, true},
		{"non-TTY prevents color", map[string]string{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lookup := func(key string) (string, bool) {
				v, ok := tt.env[key]
				return v, ok
			}
			if got := supportsColor(lookup, tt.isTTY); got != tt.want {
				t.Errorf("supportsColor() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY should return false for a buffer")
	}
}

func TestConfigureColor(t *testing.T) {
	orig := color.NoColor
	t.Cleanup(func() { color.NoColor = orig })

	color.NoColor = false
	ConfigureColor(&bytes.Buffer{})
	if !color.NoColor {
		t.Error("color should be disabled for a non-terminal writer")
	}
}
