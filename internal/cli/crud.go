package cli

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/campusworks/coursedash/internal/record"
	"github.com/campusworks/coursedash/internal/store"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list <collection>",
		Short:         "List all records of a collection",
		Args:          cobra.ExactArgs(1),
		ValidArgs:     collectionNames,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, args[0], cmd)
		},
	}
}

func runList(opts *RootOptions, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	collection, err := collectionByName(cfg.RecordCollections(), name)
	if err != nil {
		return WrapExitError(ExitCommandError, "list", err)
	}

	client := newClient(cfg)
	records, err := store.List[map[string]any](cmd.Context(), client, collection)
	if err != nil {
		return WrapExitError(ExitFailure, "list "+name, err)
	}

	if handled, err := formatter.JSON(records); handled {
		return err
	}
	formatter.Textf("%s: %d record(s)", name, len(records))
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			return WrapExitError(ExitFailure, "render record", err)
		}
		formatter.Textf("  %s", line)
	}
	return nil
}

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "create <collection> --set key=value ...",
		Short: "Create a record",
		Long: `Create a record in a collection.

Reference fields (room, instructor, participant, course) accept a bare
record identifier; it is encoded as a full reference string before the
record is submitted.`,
		Args:          cobra.ExactArgs(1),
		ValidArgs:     collectionNames,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(rootOpts, args[0], sets, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field to set, key=value (repeatable)")
	return cmd
}

func runCreate(opts *RootOptions, name string, sets []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	collection, err := collectionByName(cfg.RecordCollections(), name)
	if err != nil {
		return WrapExitError(ExitCommandError, "create", err)
	}

	fields, err := parseFields(sets)
	if err != nil {
		return WrapExitError(ExitCommandError, "create", err)
	}
	encodeReferences(fields, cfg.BaseURL, cfg.RecordCollections())

	// The registration gate: both references must be present before any
	// network call goes out.
	if name == "registrations" {
		if err := record.ValidateRegistrationFields(fields); err != nil {
			return WrapExitError(ExitCommandError, "create registration", err)
		}
	}

	client := newClient(cfg)
	created, err := store.Create[map[string]any](cmd.Context(), client, collection, fields)
	if err != nil {
		return WrapExitError(ExitFailure, "create "+name, err)
	}
	if err := reloadAfterMutation(cmd.Context(), client, formatter); err != nil {
		return err
	}

	if handled, err := formatter.JSON(created); handled {
		return err
	}
	formatter.Textf("created %s %v", name, created["_id"])
	return nil
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "update <collection> <id> --set key=value ...",
		Short: "Update fields of a record",
		Long: `Update a record by identifier.

The submitted fields are merged server-side; unspecified fields keep
their stored values. Submit the full intended field set when replacing
a record wholesale.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(rootOpts, args[0], args[1], sets, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "field to set, key=value (repeatable)")
	return cmd
}

func runUpdate(opts *RootOptions, name, id string, sets []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	collection, err := collectionByName(cfg.RecordCollections(), name)
	if err != nil {
		return WrapExitError(ExitCommandError, "update", err)
	}

	fields, err := parseFields(sets)
	if err != nil {
		return WrapExitError(ExitCommandError, "update", err)
	}
	if len(fields) == 0 {
		return NewExitError(ExitCommandError, "update: no fields given, use --set key=value")
	}
	encodeReferences(fields, cfg.BaseURL, cfg.RecordCollections())

	if name == "registrations" {
		// Updates may submit a partial field set; only reject when a
		// required reference is being explicitly cleared.
		for _, required := range []string{"participant", "course"} {
			if v, present := fields[required]; present && (v == nil || v == "") {
				return NewExitError(ExitCommandError,
					"update registration: the "+required+" reference cannot be cleared")
			}
		}
	}

	client := newClient(cfg)
	updated, err := store.Update[map[string]any](cmd.Context(), client, collection, id, fields)
	if err != nil {
		return WrapExitError(ExitFailure, "update "+name, err)
	}
	if err := reloadAfterMutation(cmd.Context(), client, formatter); err != nil {
		return err
	}

	if handled, err := formatter.JSON(updated); handled {
		return err
	}
	formatter.Textf("updated %s %s", name, id)
	return nil
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete a record",
		Long: `Delete a record by identifier.

Deletes do not cascade: records referencing the deleted one keep their
reference string, which from then on resolves as unknown.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], args[1], cmd)
		},
	}
}

func runDelete(opts *RootOptions, name, id string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	collection, err := collectionByName(cfg.RecordCollections(), name)
	if err != nil {
		return WrapExitError(ExitCommandError, "delete", err)
	}

	client := newClient(cfg)
	if err := client.Delete(cmd.Context(), collection, id); err != nil {
		return WrapExitError(ExitFailure, "delete "+name, err)
	}
	if err := reloadAfterMutation(cmd.Context(), client, formatter); err != nil {
		return err
	}

	if handled, err := formatter.JSON(map[string]string{"deleted": id}); handled {
		return err
	}
	formatter.Textf("deleted %s %s", name, id)
	return nil
}

// reloadAfterMutation re-fetches all five collections after a successful
// mutation, keeping the client's view in step with the store. The reload
// is deliberately conservative: references cross collections, so a narrow
// reload would need to know the dependency graph.
func reloadAfterMutation(ctx context.Context, client *store.Client, formatter *OutputFormatter) error {
	snap, err := client.LoadAll(ctx)
	if err != nil {
		return WrapExitError(ExitFailure, "reload after mutation", err)
	}
	formatter.VerboseLog("reloaded snapshot %s: %v", snap.Token, snap.Counts())
	return nil
}
