package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// SyncResult is the output of the sync command.
type SyncResult struct {
	CircleID string `json:"circle_id"`
	Synced   bool   `json:"synced"`
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <circle-id>",
		Short: "Reconcile one circle with its on-chain state",
		Long: `Reconcile one circle with its on-chain state.

Exits 1 when the circle was not synced: it has no on-chain id, or the
ledger could not be read.

Example:
  circlectl sync 6f1c1a8e-8a0b-4d52-9d1e-3c2f8f0f6a11`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			circleID, err := uuid.Parse(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid circle id", err)
			}

			rt, err := opts.runtime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			synced, err := rt.Sync.SyncCircle(cmd.Context(), circleID)
			if err != nil {
				return WrapExitError(ExitFailure, "sync failed", err)
			}

			out := newFormatter(opts, cmd.OutOrStdout())
			result := SyncResult{CircleID: circleID.String(), Synced: synced}
			text := fmt.Sprintf("circle %s synced", circleID)
			if !synced {
				text = fmt.Sprintf("circle %s not synced", circleID)
			}
			if err := out.Success(result, text); err != nil {
				return err
			}
			if !synced {
				return NewExitError(ExitFailure, "circle not synced")
			}
			return nil
		},
	}
}

// NewSyncAllCommand creates the sync-all command.
func NewSyncAllCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "sync-all",
		Short:         "Reconcile every non-terminal circle that has an on-chain id",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.runtime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			results, err := rt.Sync.SyncAllCircles(cmd.Context())
			if err != nil {
				return WrapExitError(ExitFailure, "sync-all failed", err)
			}

			out := newFormatter(opts, cmd.OutOrStdout())
			text := fmt.Sprintf("total=%d synced=%d failed=%d", results.Total, results.Synced, results.Failed)
			if err := out.Success(results, text); err != nil {
				return err
			}
			if results.Failed > 0 {
				return NewExitError(ExitFailure, fmt.Sprintf("%d circle(s) failed to sync", results.Failed))
			}
			return nil
		},
	}
}
