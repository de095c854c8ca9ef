package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/cps/internal/cli"
	"github.com/alexanderramin/cps/internal/config"
	"github.com/alexanderramin/cps/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	app := &cli.App{
		Schedules: service.NewScheduleService(service.NewLogUseCaseObserver(logger)),
		Config:    cfg,
		Logger:    logger,
	}

	// Only offer the interactive form when a person is at the keyboard.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
