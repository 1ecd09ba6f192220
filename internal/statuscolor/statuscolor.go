// Package statuscolor maps scan outcomes to console colors.
package statuscolor

import (
	"github.com/fatih/color"

	"github.com/selimozcann/ReflectHunter/internal/model"
)

var (
	reflected    = color.New(color.FgRed, color.Bold)
	notReflected = color.New(color.FgGreen)
	failed       = color.New(color.FgYellow)
)

// ForOutcome returns the color a result line is printed in: red for a
// reflection, green for a clean target, yellow for a per-URL failure.
// Coloring is TTY-only; piped output stays plain text.
func ForOutcome(o model.Outcome) *color.Color {
	switch o.Kind {
	case model.KindReflected:
		return reflected
	case model.KindFailed:
		return failed
	default:
		return notReflected
	}
}
