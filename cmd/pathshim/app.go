package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/desertwitch/pathshim/internal/commands"
	"github.com/desertwitch/pathshim/internal/configuration"
	"github.com/desertwitch/pathshim/internal/filesystem"
	"github.com/desertwitch/pathshim/internal/options"
	"github.com/desertwitch/pathshim/internal/pathing"
	"github.com/dustin/go-humanize"
)

const (
	modeHelp     = "--help"
	modeHelpFlag = "-h"
	modeVersion  = "--version"

	flagAbsolute = "--absolute"
)

func cliSpec() options.Spec {
	return options.Spec{
		Modes: []string{modeHelp, modeHelpFlag, modeVersion},
		Commands: map[string]options.Command{
			"mkdir":    {Operands: 1, Usage: "<path>"},
			"rm":       {Operands: 1, Usage: "<path>"},
			"ln":       {Operands: 2, Flags: []string{flagAbsolute}, Usage: "[--absolute] <path> <dest>"},
			"mv":       {Operands: 2, Usage: "<path> <dest>"},
			"unlink":   {Operands: 1, Usage: "<path>"},
			"stat":     {Operands: 1, Usage: "<path>"},
			"realpath": {Operands: 1, Usage: "<path>"},
			"exists":   {Operands: 1, Usage: "<path>"},
			"digest":   {Operands: 1, Usage: "<path>"},
			"manifest": {Operands: 1, Usage: "<directory>"},
		},
	}
}

// App runs a single parsed command line against the filesystem.
type App struct {
	fsHandler *filesystem.Handler
	settings  *configuration.Settings
	program   string
	workDir   string
	out       io.Writer
}

func NewApp(fsHandler *filesystem.Handler, settings *configuration.Settings, program string, workDir string, out io.Writer) *App {
	return &App{
		fsHandler: fsHandler,
		settings:  settings,
		program:   program,
		workDir:   workDir,
		out:       out,
	}
}

// Launch parses args (without the program name) and runs the command. Errors
// of the filesystem layer are returned as they are.
func (app *App) Launch(ctx context.Context, args []string) error {
	spec := cliSpec()

	inv, err := options.Parse(args, spec)
	if err != nil {
		return err
	}

	switch inv.Mode {
	case modeHelp, modeHelpFlag:
		spec.Usage(app.program, func(line string) {
			fmt.Fprintln(app.out, line)
		})

		return nil

	case modeVersion:
		fmt.Fprintln(app.out, app.program, version())

		return nil
	}

	paths := make([]pathing.AbsolutePath, 0, len(inv.Operands))
	for _, operand := range inv.Operands {
		p, err := app.absolute(operand)
		if err != nil {
			return err
		}
		paths = append(paths, p)
	}

	return app.runCommand(ctx, inv, paths)
}

func (app *App) runCommand(ctx context.Context, inv *options.Invocation, paths []pathing.AbsolutePath) error {
	switch inv.Command {
	case "mkdir":
		return app.fsHandler.MakeDirectories(paths[0])

	case "rm":
		return app.fsHandler.RemoveFileTree(paths[0])

	case "ln":
		return app.fsHandler.Symlink(paths[0], paths[1], !inv.Flags[flagAbsolute])

	case "mv":
		return app.fsHandler.Rename(paths[0], paths[1])

	case "unlink":
		return app.fsHandler.Unlink(paths[0])

	case "stat":
		return app.stat(paths[0])

	case "realpath":
		fmt.Fprintln(app.out, app.fsHandler.ResolveSymlinks(paths[0]).String())

		return nil

	case "exists":
		fmt.Fprintln(app.out, app.fsHandler.Exists(paths[0]))

		return nil

	case "digest":
		sum, err := app.fsHandler.Digest(ctx, paths[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(app.out, "%s  %s\n", sum, paths[0].String())

		return nil

	case "manifest":
		return app.manifest(paths[0])

	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, inv.Command)
	}
}

func (app *App) absolute(operand string) (pathing.AbsolutePath, error) {
	if !filepath.IsAbs(operand) {
		operand = filepath.Join(app.workDir, operand)
	}

	return pathing.New(operand)
}

func (app *App) stat(path pathing.AbsolutePath) error {
	metadata, err := app.fsHandler.Metadata(path)
	if err != nil {
		return err
	}

	kind := "other"
	switch {
	case metadata.IsSymlink:
		kind = "symlink -> " + metadata.SymlinkTo
	case metadata.IsDir:
		kind = "directory"
	case metadata.IsRegular:
		kind = "file"
	}

	fmt.Fprintf(app.out, "%s: %s, %s, %04o\n", path.String(), kind, humanize.IBytes(metadata.Size), metadata.Perms)

	return nil
}

func (app *App) manifest(dir pathing.AbsolutePath) error {
	manifest := dir.Join(app.settings.Manifest)

	if !app.fsHandler.IsFile(manifest) {
		return commands.NoManifestFound(app.settings.Manifest, app.settings.InitCommand)
	}

	fmt.Fprintln(app.out, app.fsHandler.ResolveSymlinks(manifest).String())

	return nil
}
