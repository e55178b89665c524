package cli

import (
	"github.com/cyphera/cyphera-circles/internal/auth"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/spf13/cobra"
)

// NewHashAdminKeyCommand creates the hash-admin-key command.
func NewHashAdminKeyCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-admin-key <key>",
		Short: "Print the bcrypt hash to store in ADMIN_API_KEY_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args[0]) < 16 {
				return NewExitError(ExitCommandError, "admin key must be at least 16 characters")
			}
			hash, err := auth.HashAdminKey(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "failed to hash key", err)
			}
			return newFormatter(opts, cmd.OutOrStdout()).Success(map[string]string{"hash": hash}, hash)
		},
	}
}

// MigrateOptions holds flags for the migrate command.
type MigrateOptions struct {
	*RootOptions
	DryRun bool
}

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MigrateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema to an empty database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := db.UpMigrations()
			if err != nil {
				return WrapExitError(ExitFailure, "failed to load migrations", err)
			}
			if opts.DryRun {
				_, err := cmd.OutOrStdout().Write([]byte(schema))
				return err
			}

			rt, err := opts.runtime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.Exec == nil {
				return NewExitError(ExitCommandError, "database not configured")
			}
			if err := rt.Exec(cmd.Context(), schema); err != nil {
				return WrapExitError(ExitFailure, "failed to apply migrations", err)
			}
			return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Success(map[string]bool{"applied": true}, "migrations applied")
		},
	}

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the schema instead of applying it")

	return cmd
}
