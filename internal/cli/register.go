package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/ref"
	"github.com/campusworks/coursedash/internal/store"
)

// RegisterOptions holds flags for the register command.
type RegisterOptions struct {
	*RootOptions
	Participant string
	Course      string
	Date        string
	Paid        bool
}

// NewRegisterCommand creates the register command, the guided form of
// `create registrations`.
func NewRegisterCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RegisterOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "register --participant <id> --course <id>",
		Short: "Register a participant for a course",
		Long: `Register a participant for a course.

Both identifiers are required; a registration without either is
meaningless and is rejected before any request reaches the store.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegister(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Participant, "participant", "", "participant record id")
	cmd.Flags().StringVar(&opts.Course, "course", "", "course record id")
	cmd.Flags().StringVar(&opts.Date, "date", "", "registration date, YYYY-MM-DD (default today)")
	cmd.Flags().BoolVar(&opts.Paid, "paid", false, "mark the registration as paid")

	return cmd
}

func runRegister(opts *RegisterOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts.RootOptions)
	if err != nil {
		return err
	}
	cols := cfg.RecordCollections()

	fields := map[string]any{
		"participant": opts.Participant,
		"course":      opts.Course,
		"paid":        opts.Paid,
	}
	encodeReferences(fields, cfg.BaseURL, cols)

	// Validation gate: reject locally, with zero network calls issued.
	if err := record.ValidateRegistrationFields(fields); err != nil {
		return WrapExitError(ExitCommandError, "register", err)
	}
	for _, name := range []string{"participant", "course"} {
		if id, _ := ref.Decode(fields[name].(string)); id == "" {
			return NewExitError(ExitCommandError, "register: --"+name+" is not a record id or reference")
		}
	}

	date := opts.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	fields["date"] = date

	client := newClient(cfg)
	created, err := store.Create[record.Registration](cmd.Context(), client, cols.Registrations, fields)
	if err != nil {
		return WrapExitError(ExitFailure, "register", err)
	}
	if err := reloadAfterMutation(cmd.Context(), client, formatter); err != nil {
		return err
	}

	if handled, err := formatter.JSON(created); handled {
		return err
	}
	formatter.Textf("registered: %s (date %s, paid %t)", created.RecordID(), date, created.IsPaid())
	return nil
}
