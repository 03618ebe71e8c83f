// Package output renders command results for terminals, agents and scripts.
package output

import (
	"fmt"
	"strings"
)

// Mode selects how results are rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
	ModeYAML     Mode = "yaml"
)

// Modes lists every accepted mode, in the order shown by shell completion.
var Modes = []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON, ModeYAML}

// ParseMode converts a flag or config value into a Mode. The empty string
// selects ModeAuto; "md" and "yml" are accepted as shorthands.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "text":
		return ModeText, nil
	case "markdown", "md":
		return ModeMarkdown, nil
	case "json":
		return ModeJSON, nil
	case "yaml", "yml":
		return ModeYAML, nil
	default:
		return "", fmt.Errorf("unknown output mode %q (want auto|text|markdown|json|yaml)", s)
	}
}

// IsStructured reports whether the mode emits machine-readable documents.
func (m Mode) IsStructured() bool {
	return m == ModeJSON || m == ModeYAML
}
