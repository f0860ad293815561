package main

import "errors"

// ErrUnknownCommand occurs when a parsed command has no implementation.
var ErrUnknownCommand = errors.New("command is not implemented")
