// Package reporting classifies arbitrary failures into usage, fixable and
// opaque errors and renders them to the diagnostic stream before terminating
// the process.
//
// [Classify] is pure and decides what is to be printed. The [Reporter] queries
// the terminal, prints the [Diagnostic] and exits.
package reporting

import (
	"errors"
	"fmt"
	"slices"

	"github.com/desertwitch/pathshim/internal/options"
)

// Fixable is an error that can describe itself to a user and may suggest a
// remediation.
type Fixable interface {
	error
	Message() string
	Fix() (string, bool)
}

// Class is the branch taken by [Classify].
type Class int

const (
	// ClassMultipleModes is a usage error with conflicting mode flags.
	ClassMultipleModes Class = iota

	// ClassNoCommand is a usage error without any command.
	ClassNoCommand

	// ClassUsage is any other usage error.
	ClassUsage

	// ClassFixable is an error implementing [Fixable].
	ClassFixable

	// ClassOpaque is any other error.
	ClassOpaque
)

func (c Class) String() string {
	switch c {
	case ClassMultipleModes:
		return "multiple-modes"
	case ClassNoCommand:
		return "no-command"
	case ClassUsage:
		return "usage"
	case ClassFixable:
		return "fixable"
	case ClassOpaque:
		return "opaque"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Diagnostic is what is to be printed for a failure, in order: the error
// line (unless Message is empty), the fix line (if HasFix), the help hint
// line (if HelpHint) and the usage text (if Usage, preceded by a blank line
// if UsageGap).
type Diagnostic struct {
	Class    Class
	Message  string
	Fix      string
	HasFix   bool
	HelpHint bool
	Usage    bool
	UsageGap bool
}

// Classify decides how err is to be reported. The first matching branch wins:
// conflicting modes, no command, other usage errors, [Fixable] errors and
// finally everything else. Interactive states whether the diagnostic stream
// is a terminal, which enables the usage text and the help hint.
func Classify(err error, interactive bool) Diagnostic {
	var parseErr *options.ParseError
	if errors.As(err, &parseErr) {
		switch parseErr.Kind {
		case options.KindMultipleModes:
			usage := interactive && slices.ContainsFunc(parseErr.Modes, options.IsHelpFlag)

			return Diagnostic{
				Class:    ClassMultipleModes,
				Message:  err.Error(),
				Usage:    usage,
				UsageGap: usage,
			}

		case options.KindNoCommand:
			d := Diagnostic{
				Class: ClassNoCommand,
				Usage: interactive,
			}
			if parseErr.Hint != "" {
				d.Message = err.Error()
			}

			return d

		default:
			return Diagnostic{
				Class:    ClassUsage,
				Message:  err.Error(),
				HelpHint: interactive,
			}
		}
	}

	var fixable Fixable
	if errors.As(err, &fixable) {
		fix, ok := fixable.Fix()

		return Diagnostic{
			Class:   ClassFixable,
			Message: fixable.Message(),
			Fix:     fix,
			HasFix:  ok,
		}
	}

	message := "unknown error"
	if err != nil {
		message = err.Error()
	}

	return Diagnostic{
		Class:   ClassOpaque,
		Message: message,
	}
}
