package reporting

import "errors"

// ErrInvalidColorMode occurs when a color mode other than "auto", "always" or
// "never" is given.
var ErrInvalidColorMode = errors.New("invalid color mode")
