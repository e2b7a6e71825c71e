// Package tui provides the terminal file viewer hosting the blame gutter.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // File view
	ModeHelp               // Help overlay
	ModeGoto               // Line number prompt
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeHelp:
		return "help"
	case ModeGoto:
		return "goto"
	default:
		return "unknown"
	}
}
