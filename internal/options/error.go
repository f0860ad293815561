package options

import (
	"fmt"
	"strings"
)

// ErrorKind is the kind of a [ParseError].
type ErrorKind int

const (
	// KindMultipleModes occurs when more than one mode flag was given.
	KindMultipleModes ErrorKind = iota

	// KindNoCommand occurs when neither a mode nor a command was given.
	KindNoCommand

	// KindUnknownOption occurs when a flag is not known in its position.
	KindUnknownOption

	// KindUnknownCommand occurs when the command is not known.
	KindUnknownCommand

	// KindMissingOperand occurs when a command has fewer operands than it
	// requires.
	KindMissingOperand

	// KindUnexpectedOperand occurs when a command has more operands than it
	// accepts.
	KindUnexpectedOperand
)

// ParseError is the error returned by [Parse]. Modes is only set for
// [KindMultipleModes], Hint only for [KindNoCommand] (and may be empty), Arg
// names the offending argument or command for the other kinds.
type ParseError struct {
	Kind  ErrorKind
	Modes []string
	Hint  string
	Arg   string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindMultipleModes:
		return "multiple modes specified: " + strings.Join(e.Modes, ", ")
	case KindNoCommand:
		if e.Hint == "" {
			return "no command provided"
		}

		return "no command provided: " + e.Hint
	case KindUnknownOption:
		return "unknown option: " + e.Arg
	case KindUnknownCommand:
		return "unknown command: " + e.Arg
	case KindMissingOperand:
		return "missing operand for command: " + e.Arg
	case KindUnexpectedOperand:
		return "unexpected operand: " + e.Arg
	default:
		return fmt.Sprintf("invalid arguments (%d)", int(e.Kind))
	}
}
