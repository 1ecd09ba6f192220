// Package output renders scan outcomes as result lines.
package output

import (
	"fmt"

	"github.com/selimozcann/ReflectHunter/internal/model"
)

// Text renders the outcome half of a result line. The three forms are part
// of the tool's output contract and scripts parse them; change nothing here
// without checking the consumers.
func Text(o model.Outcome) string {
	switch o.Kind {
	case model.KindReflected:
		return fmt.Sprintf("Potential XSS found! Tag '%s' reflected (%s)", o.Tag, o.Status)
	case model.KindFailed:
		return fmt.Sprintf("Error: %v", o.Err)
	default:
		return fmt.Sprintf("No tag reflection found (%s)", o.Status)
	}
}

// Line renders one complete result line for a target.
func Line(o model.Outcome) string {
	return fmt.Sprintf("%s -> %s", o.Target, Text(o))
}
