package ui

import "fmt"

// ANSI256 color codes for countdown output.
const (
	colorAccent = 212 // pink
	colorValue  = 250 // light gray
	colorMuted  = 245 // medium gray
)

var noColor bool

// RenderAccent returns s in the accent (pink) color.
func RenderAccent(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorAccent, s)
}

// RenderValue returns s styled as a value (light gray).
func RenderValue(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorValue, s)
}

// RenderMuted returns s in the muted (gray) color.
func RenderMuted(s string) string {
	if noColor {
		return s
	}
	return fmt.Sprintf("\x1b[38;5;%dm%s\x1b[0m", colorMuted, s)
}

// ForceNoColor disables color output globally.
func ForceNoColor() {
	noColor = true
}
