package tui

import (
	"github.com/mattn/go-runewidth"
)

// Truncate truncates a string to stay within the given render width, using an
// ellipsis when truncation occurs. Non-positive widths yield an empty string.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
