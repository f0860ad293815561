package configuration

import "errors"

// ErrInvalidSetting occurs when a configured value cannot be interpreted for
// its key.
var ErrInvalidSetting = errors.New("invalid setting")
