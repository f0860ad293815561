package reporting

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode controls whether colored output is used.
type ColorMode string

const (
	// ColorAuto uses color if the stream and environment allow it.
	ColorAuto ColorMode = "auto"

	// ColorAlways always uses color.
	ColorAlways ColorMode = "always"

	// ColorNever never uses color.
	ColorNever ColorMode = "never"
)

// ParseColorMode returns the [ColorMode] for s, where an empty s is
// [ColorAuto].
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways:
		return ColorAlways, nil
	case ColorNever:
		return ColorNever, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidColorMode, s)
	}
}

// Terminal answers the capability queries for a diagnostic stream.
type Terminal struct {
	file *os.File
	mode ColorMode
}

// NewTerminal returns a pointer to a new [Terminal] for file.
func NewTerminal(file *os.File, mode ColorMode) *Terminal {
	return &Terminal{
		file: file,
		mode: mode,
	}
}

// IsInteractive reports whether the stream is a terminal.
func (t *Terminal) IsInteractive() bool {
	fd := t.file.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorAllowed reports whether colored output may be written to the stream.
// In [ColorAuto] mode this honors NO_COLOR and CLICOLOR_FORCE.
func (t *Terminal) ColorAllowed() bool {
	switch t.mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	case ColorAuto:
		return termenv.NewOutput(t.file).EnvColorProfile() != termenv.Ascii
	default:
		return false
	}
}
