package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/campusworks/coursedash/internal/dashboard"
)

// SummaryOptions holds flags for the summary command.
type SummaryOptions struct {
	*RootOptions
	Today  string
	Top    int
	Recent int
}

// NewSummaryCommand creates the summary command.
func NewSummaryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SummaryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Load all collections and derive the dashboard summary",
		Long: `Fetch all five collections and print the derived dashboard state:
per-course enrollment and fill rates, status breakdown, unpaid
registrations, the fill-rate ranking, and recent activity.

The five fetches run concurrently; if any one fails the whole load
fails and nothing is derived from the partial data.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Today, "today", "", "reference date for status classification, YYYY-MM-DD (default today)")
	cmd.Flags().IntVar(&opts.Top, "top", 5, "number of courses in the fill-rate ranking")
	cmd.Flags().IntVar(&opts.Recent, "recent", 5, "number of entries in the recent-activity list")

	return cmd
}

func runSummary(opts *SummaryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}

	today := opts.Today
	if today == "" {
		today = time.Now().Format("2006-01-02")
	}

	client := newClient(cfg)
	formatter.VerboseLog("loading collections from %s", cfg.BaseURL)
	snap, err := client.LoadAll(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "load collections", err)
	}
	formatter.VerboseLog("loaded snapshot %s: %v", snap.Token, snap.Counts())

	summary := dashboard.BuildSummary(snap, today, opts.Top, opts.Recent)

	if handled, err := formatter.JSON(summary); handled {
		return err
	}
	renderSummaryText(formatter, summary)
	return nil
}

func renderSummaryText(f *OutputFormatter, s dashboard.Summary) {
	f.Textf("Dashboard for %s", s.Today)
	f.Textf("  rooms %d | instructors %d | courses %d | participants %d | registrations %d",
		s.Totals.Rooms, s.Totals.Instructors, s.Totals.Courses, s.Totals.Participants, s.Totals.Registrations)
	f.Textf("  courses: %d active, %d upcoming, %d completed, %d draft",
		s.CourseStatus.Active, s.CourseStatus.Upcoming, s.CourseStatus.Completed, s.CourseStatus.Draft)
	f.Textf("  unpaid registrations: %d", s.UnpaidRegistrations)
	f.Textf("  average fill: %d%%", s.AverageFillPercent)

	f.Textf("")
	f.Textf("Courses")
	for _, c := range s.Courses {
		f.Textf("  %-30s %-9s room %-15s instructor %-20s %d/%d (%d%%)",
			c.Title, c.Status, c.Room, c.Instructor, c.Enrolled, c.Capacity, c.FillPercent)
	}

	if len(s.TopCourses) > 0 {
		f.Textf("")
		f.Textf("Top courses by fill rate")
		for i, c := range s.TopCourses {
			f.Textf("  %d. %s (%d%%)", i+1, c.Title, c.FillPercent)
		}
	}

	if len(s.RecentActivity) > 0 {
		f.Textf("")
		f.Textf("Recent registrations")
		for _, a := range s.RecentActivity {
			paid := "unpaid"
			if a.Paid {
				paid = "paid"
			}
			f.Textf("  %s  %-20s %-30s %s", a.Date, a.Participant, a.Course, paid)
		}
	}
}
