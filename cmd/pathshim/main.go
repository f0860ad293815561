package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/desertwitch/pathshim/internal/configuration"
	"github.com/desertwitch/pathshim/internal/filesystem"
	"github.com/desertwitch/pathshim/internal/reporting"
	"github.com/desertwitch/pathshim/internal/schema"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var Version string

func version() string {
	if Version != "" {
		return Version
	}

	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}

	return "(devel)"
}

func setupLogging(level slog.Leveler, colored bool) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !colored,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

func configFiles() []string {
	if file := os.Getenv(configuration.EnvConfigFile); file != "" {
		return []string{file}
	}

	return nil
}

func main() {
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})

	settings, cfgErr := configHandler.Establish(configFiles()...)
	if cfgErr != nil {
		settings = configuration.Defaults()
	}

	program := reporting.ProgramName(os.Args)
	terminal := reporting.NewTerminal(os.Stderr, settings.Color)
	reporter := reporting.NewReporter(os.Stderr, terminal, os.Args, func(printLine func(string)) {
		cliSpec().Usage(program, printLine)
	})

	setupLogging(settings.LogLevel, terminal.ColorAllowed())

	if cfgErr != nil {
		reporter.Handle(cfgErr)

		return
	}

	workDir, err := os.Getwd()
	if err != nil {
		reporter.Handle(err)

		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	setupSignalHandlers(cancel)

	fsHandler := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})
	app := NewApp(fsHandler, settings, program, workDir, os.Stdout)

	if err := app.Launch(ctx, os.Args[1:]); err != nil {
		cancel()
		reporter.Handle(err)

		return
	}

	cancel()
}
