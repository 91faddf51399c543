package core

import "testing"

func TestColorByName(t *testing.T) {
	tests := map[string]Color{
		"blue":   ColorBlue,
		"grey":   ColorGray,
		"gray":   ColorGray,
		"orange": ColorOrange,
		"":       ColorDefault,
		"mauve":  ColorDefault,
	}
	for name, want := range tests {
		if got := ColorByName(name); got != want {
			t.Errorf("ColorByName(%q) = %d, expected %d", name, got, want)
		}
	}
}
