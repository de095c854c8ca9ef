package cli

import (
	"fmt"

	"github.com/alexanderramin/cps/internal/cli/formatter"
	"github.com/alexanderramin/cps/internal/domain"
	"github.com/alexanderramin/cps/internal/importer"
	"github.com/spf13/cobra"
)

type scheduleOptions struct {
	base        string
	milestones  milestoneList
	business    bool
	file        string
	csv         bool
	outDir      string
	timeline    bool
	width       int
	interactive bool
}

func newScheduleCmd(app *App) *cobra.Command {
	opts := &scheduleOptions{}

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Compute and display a milestone schedule",
		Example: `  cps schedule --base 2024-01-01 --milestone "Briefing=0" --milestone "Review=5" --business-days
  cps schedule --file plan.yaml --timeline --csv --out exports/
  cps schedule --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, app, opts)
		},
	}
	bindScheduleFlags(cmd, app, opts)

	return cmd
}

func bindScheduleFlags(cmd *cobra.Command, app *App, opts *scheduleOptions) {
	f := cmd.Flags()
	f.StringVar(&opts.base, "base", "", "Base date (YYYY-MM-DD, default today)")
	f.VarP(&opts.milestones, "milestone", "m", "Milestone as Name=Offset (repeatable, kept in order)")
	f.BoolVar(&opts.business, "business-days", app.Config.BusinessDays, "Count offsets in business days (skip weekends)")
	f.StringVar(&opts.file, "file", "", "Read the plan from a JSON or YAML file")
	f.BoolVar(&opts.csv, "csv", false, "Export the schedule as CPS_schedule.csv")
	f.StringVar(&opts.outDir, "out", app.Config.ExportDir, "Directory for the CSV export")
	f.BoolVar(&opts.timeline, "timeline", false, "Also render a timeline chart")
	f.IntVar(&opts.width, "width", formatter.DefaultTimelineWidth, "Timeline width in cells")
	f.BoolVarP(&opts.interactive, "interactive", "i", false, "Enter the plan with an interactive form")
}

func runSchedule(cmd *cobra.Command, app *App, opts *scheduleOptions) error {
	ctx := cmd.Context()

	plan, err := resolvePlan(cmd, app, opts)
	if err != nil {
		return err
	}

	res, err := app.Schedules.Build(ctx, plan)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, formatter.FormatSchedule(res.Schedule))

	if opts.timeline {
		fmt.Fprintln(out, formatter.FormatTimeline(res.Schedule, opts.width))
	}

	if opts.csv {
		path, err := app.Schedules.ExportCSV(ctx, res, opts.outDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported schedule to %s\n", path)
	}

	return nil
}

// resolvePlan gathers the plan from a file, from flags, or from the
// interactive wizard, in that order of precedence. Flags given alongside a
// file override the file's base date and counting mode.
func resolvePlan(cmd *cobra.Command, app *App, opts *scheduleOptions) (*domain.Plan, error) {
	flags := cmd.Flags()

	if opts.interactive && (opts.file != "" || len(opts.milestones) > 0) {
		return nil, fmt.Errorf("--interactive cannot be combined with --milestone or --file")
	}

	base := app.today()
	if opts.base != "" {
		d, err := domain.ParseDate(opts.base)
		if err != nil {
			return nil, fmt.Errorf("--base: %w", err)
		}
		base = d
	}

	var plan *domain.Plan
	switch {
	case opts.file != "":
		if len(opts.milestones) > 0 {
			return nil, fmt.Errorf("--milestone cannot be combined with --file")
		}
		p, err := importer.LoadPlan(opts.file, base)
		if err != nil {
			return nil, err
		}
		if flags.Changed("base") {
			p.BaseDate = base
		}
		if flags.Changed("business-days") {
			p.BusinessDaysOnly = opts.business
		}
		plan = p

	case len(opts.milestones) > 0:
		plan = &domain.Plan{
			BaseDate:         base,
			Milestones:       opts.milestones,
			BusinessDaysOnly: opts.business,
		}

	case opts.interactive || app.interactive():
		p, err := app.wizard()(cmd.Context(), domain.Plan{BaseDate: base, BusinessDaysOnly: opts.business})
		if err != nil {
			return nil, fmt.Errorf("collecting plan: %w", err)
		}
		plan = p

	default:
		return nil, fmt.Errorf("no milestones given: use --milestone Name=Offset, --file, or --interactive")
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}
