// Package style holds the palette and glyphs shared by terminal output.
package style

import (
	"log/slog"

	"github.com/charmbracelet/lipgloss"
)

// Palette.
var (
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)

// Mark is the glyph and color a log line is rendered with.
type Mark struct {
	Icon  string
	Color lipgloss.Color
}

// ForLevel returns the mark for records of the given level.
// Info lines carry no glyph.
func ForLevel(level slog.Level) Mark {
	switch {
	case level >= slog.LevelError:
		return Mark{Icon: Cross, Color: Red}
	case level >= slog.LevelWarn:
		return Mark{Icon: Warning, Color: Yellow}
	case level < slog.LevelInfo:
		return Mark{Icon: Dot, Color: Slate}
	default:
		return Mark{Color: Slate}
	}
}

// Decorate prefixes msg with the mark's glyph.
func (m Mark) Decorate(msg string) string {
	if m.Icon == "" {
		return msg
	}
	return m.Icon + " " + msg
}
