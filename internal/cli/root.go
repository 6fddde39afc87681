// Package cli implements the coursedash command line interface: the
// presentation-layer consumer of the store client and aggregation engine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/campusworks/coursedash/internal/config"
	"github.com/campusworks/coursedash/internal/store"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the coursedash CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "coursedash",
		Short: "Course administration dashboard",
		Long:  "Manage rooms, instructors, courses, participants, and registrations\nin the hosted record store, and derive dashboard aggregates from them.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default $COURSEDASH_CONFIG)")

	// Add subcommands
	cmd.AddCommand(NewSummaryCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewRegisterCommand(opts))
	cmd.AddCommand(NewProxyCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// loadConfig resolves the effective configuration for a command.
// Config problems are command errors (exit 2), not operation failures.
func loadConfig(opts *RootOptions) (config.Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = os.Getenv("COURSEDASH_CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "configuration", err)
	}
	return cfg, nil
}

// newClient builds the store client from resolved configuration.
func newClient(cfg config.Config) *store.Client {
	return store.New(cfg.BaseURL, cfg.APIKey,
		store.WithCollections(cfg.RecordCollections()))
}
