package reporting

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	// DefaultProgramName is used when the program name cannot be derived from
	// the arguments.
	DefaultProgramName = "pathshim"

	exitFailure = 1
)

type terminalProvider interface {
	IsInteractive() bool
	ColorAllowed() bool
}

// UsageFunc calls printLine with every line of the usage text.
type UsageFunc func(printLine func(string))

// Reporter is the single terminal consumer of failures. It writes to the
// diagnostic stream and terminates the process.
type Reporter struct {
	out      io.Writer
	terminal terminalProvider
	args     []string
	usage    UsageFunc
	exit     func(int)
}

// NewReporter returns a pointer to a new [Reporter] writing to out, which
// should be the stream that terminal describes. Args are the process
// arguments including the program name.
func NewReporter(out io.Writer, terminal terminalProvider, args []string, usage UsageFunc) *Reporter {
	return &Reporter{
		out:      out,
		terminal: terminal,
		args:     args,
		usage:    usage,
		exit:     os.Exit,
	}
}

// ProgramName returns the last element of the first argument, or
// [DefaultProgramName] if there is none.
func ProgramName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return DefaultProgramName
	}

	return filepath.Base(args[0])
}

// invocationName returns the first argument as it was given, or
// [DefaultProgramName] if there is none.
func (r *Reporter) invocationName() string {
	if len(r.args) == 0 || r.args[0] == "" {
		return DefaultProgramName
	}

	return r.args[0]
}

// Handle reports err and terminates the process with status 1. It does not
// return.
func (r *Reporter) Handle(err error) {
	d := r.Render(err)

	slog.Debug("Terminating after fatal error",
		"class", d.Class.String(),
		"err", err,
	)

	r.exit(exitFailure)
}

// Render classifies err and writes the resulting [Diagnostic] without
// terminating. Interactivity and color permission are queried once.
func (r *Reporter) Render(err error) Diagnostic {
	interactive := r.terminal.IsInteractive()
	colored := r.terminal.ColorAllowed()

	d := Classify(err, interactive)

	errorPrefix := ProgramName(r.args) + ": error:"
	fixPrefix := "fix:"

	if colored {
		renderer := lipgloss.NewRenderer(r.out)
		renderer.SetColorProfile(termenv.ANSI)

		errorPrefix = renderer.NewStyle().Foreground(lipgloss.Color("1")).Render("error:")
		fixPrefix = renderer.NewStyle().Foreground(lipgloss.Color("3")).Render("fix:")
	}

	if d.Message != "" {
		r.println(errorPrefix, d.Message)
	}

	if d.HasFix {
		r.println(fixPrefix, d.Fix)
	}

	if d.HelpHint {
		r.println(fmt.Sprintf("enter `%s --help' for usage information", r.invocationName()))
	}

	if d.Usage && r.usage != nil {
		if d.UsageGap {
			r.println("")
		}
		r.usage(func(line string) {
			r.println(line)
		})
	}

	return d
}

func (r *Reporter) println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}
