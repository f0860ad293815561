// Package options parses a command line into at most one mode flag or one
// command with its flags and operands.
package options

import (
	"slices"
	"sort"
	"strings"
)

// Command describes one command: the number of operands it requires and the
// boolean flags it accepts.
type Command struct {
	Operands int
	Flags    []string
	Usage    string
}

// Spec describes everything that [Parse] accepts.
type Spec struct {
	Modes    []string
	Commands map[string]Command
}

// Invocation is a successfully parsed command line. Either Mode or Command is
// set, never both.
type Invocation struct {
	Mode     string
	Command  string
	Flags    map[string]bool
	Operands []string
}

// IsHelpFlag reports whether arg requests the usage text.
func IsHelpFlag(arg string) bool {
	return arg == "--help" || arg == "-h"
}

// Parse parses args (without the program name) according to spec.
func Parse(args []string, spec Spec) (*Invocation, error) {
	inv := &Invocation{
		Flags: make(map[string]bool),
	}

	var modes []string
	var cmd Command

	for _, arg := range args {
		switch {
		case slices.Contains(spec.Modes, arg):
			modes = append(modes, arg)

		case strings.HasPrefix(arg, "-") && arg != "-":
			if inv.Command == "" || !slices.Contains(cmd.Flags, arg) {
				return nil, &ParseError{Kind: KindUnknownOption, Arg: arg}
			}
			inv.Flags[arg] = true

		case inv.Command == "":
			c, exists := spec.Commands[arg]
			if !exists {
				return nil, &ParseError{Kind: KindUnknownCommand, Arg: arg}
			}
			inv.Command = arg
			cmd = c

		default:
			inv.Operands = append(inv.Operands, arg)
		}
	}

	if len(modes) > 1 {
		return nil, &ParseError{Kind: KindMultipleModes, Modes: modes}
	}

	if len(modes) == 1 {
		return &Invocation{Mode: modes[0]}, nil
	}

	if inv.Command == "" {
		hint := ""
		if len(args) > 0 {
			hint = "expected one of: " + strings.Join(spec.commandNames(), ", ")
		}

		return nil, &ParseError{Kind: KindNoCommand, Hint: hint}
	}

	if len(inv.Operands) < cmd.Operands {
		return nil, &ParseError{Kind: KindMissingOperand, Arg: inv.Command}
	}

	if len(inv.Operands) > cmd.Operands {
		return nil, &ParseError{Kind: KindUnexpectedOperand, Arg: inv.Operands[cmd.Operands]}
	}

	return inv, nil
}

func (s Spec) commandNames() []string {
	names := make([]string, 0, len(s.Commands))
	for name := range s.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Usage calls printLine with every line of the usage text for program.
func (s Spec) Usage(program string, printLine func(string)) {
	printLine("usage: " + program + " [" + strings.Join(s.Modes, " | ") + "] <command> [flags] [operands]")
	printLine("")
	printLine("commands:")

	for _, name := range s.commandNames() {
		printLine("  " + name + " " + s.Commands[name].Usage)
	}
}
