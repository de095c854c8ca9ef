package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/cps/internal/config"
	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/service"
	"github.com/spf13/cobra"
)

// WizardFunc collects a plan interactively. defaults carries the base date
// and counting mode to pre-fill.
type WizardFunc func(ctx context.Context, defaults domain.Plan) (*domain.Plan, error)

// App holds the services and settings used by CLI commands.
type App struct {
	Schedules service.ScheduleService
	Config    config.Config
	Logger    *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Today returns the default base date. Nil means domain.Today.
	Today func() time.Time
	// Wizard collects a plan from the user. Nil means the huh form wizard.
	Wizard WizardFunc
}

func (a *App) today() time.Time {
	if a.Today != nil {
		return a.Today()
	}
	return domain.Today()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) wizard() WizardFunc {
	if a.Wizard != nil {
		return a.Wizard
	}
	return runPlanWizard
}

func (a *App) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.Default()
}

// NewRootCmd creates the top-level "cps" command and registers all
// subcommands against the provided App. Running cps without a subcommand
// behaves like "cps schedule".
func NewRootCmd(app *App) *cobra.Command {
	opts := &scheduleOptions{}

	root := &cobra.Command{
		Use:   "cps",
		Short: "Critical Path Schedule generator",
		Long: "Compute milestone dates from a base date and day offsets, counted in\n" +
			"calendar days or business days, and export the schedule as CSV.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, app, opts)
		},
	}
	bindScheduleFlags(root, app, opts)

	root.AddCommand(
		newScheduleCmd(app),
		newServeCmd(app),
	)

	return root
}
