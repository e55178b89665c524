package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cyphera/cyphera-circles/internal/app"
	"github.com/cyphera/cyphera-circles/internal/config"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/spf13/cobra"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Runtime is the slice of the application circlectl commands operate on.
type Runtime struct {
	Sync interfaces.CircleSyncService
	// Ledger is nil when RPC_URL is not configured.
	Ledger        interfaces.NonceReader
	SignerAddress string
	Exec          func(ctx context.Context, sql string) error
	Close         func()
}

// Opener builds a Runtime from the environment.
type Opener func(ctx context.Context) (*Runtime, error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string
	Open    Opener
}

// NewRootCommand creates the circlectl root command. A nil open uses OpenApplication.
func NewRootCommand(open Opener) *cobra.Command {
	if open == nil {
		open = OpenApplication
	}
	opts := &RootOptions{Open: open}

	cmd := &cobra.Command{
		Use:   "circlectl",
		Short: "Operate the Cyphera savings circle backend",
		Long:  "Operator tooling for circle reconciliation, signer nonces and admin key management.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !opts.Verbose && os.Getenv("LOG_LEVEL") == "" {
				_ = os.Setenv("LOG_LEVEL", "warn")
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewSyncCommand(opts))
	cmd.AddCommand(NewSyncAllCommand(opts))
	cmd.AddCommand(NewNonceCommand(opts))
	cmd.AddCommand(NewHashAdminKeyCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))

	return cmd
}

// OpenApplication loads configuration and wires the full application.
func OpenApplication(ctx context.Context) (*Runtime, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	a, err := app.New(ctx, cfg)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{
		Sync:  a.Sync,
		Close: a.Close,
		Exec: func(ctx context.Context, sql string) error {
			_, err := a.Pool.Exec(ctx, sql)
			return err
		},
	}
	if a.Chain != nil {
		rt.Ledger = a.Chain
		rt.SignerAddress = a.Chain.SignerAddress()
	}
	return rt, nil
}

func (o *RootOptions) runtime(ctx context.Context) (*Runtime, error) {
	rt, err := o.Open(ctx)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to initialize", err)
	}
	if rt.Close == nil {
		rt.Close = func() {}
	}
	return rt, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
