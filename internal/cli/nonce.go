package cli

import (
	"fmt"

	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/spf13/cobra"
)

// NonceResult is the output of the nonce command.
type NonceResult struct {
	Address      string `json:"address"`
	PendingNonce uint64 `json:"pending_nonce"`
}

// NewNonceCommand creates the nonce command.
func NewNonceCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "nonce [address]",
		Short: "Show the ledger's pending nonce for an address",
		Long: `Show the ledger's pending nonce for an address.

Defaults to the service signer address when no address is given.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.runtime(cmd.Context())
			if err != nil {
				return err
			}
			defer rt.Close()

			if rt.Ledger == nil {
				return NewExitError(ExitCommandError, "ledger not configured: set RPC_URL")
			}

			address := rt.SignerAddress
			if len(args) == 1 {
				address = args[0]
			}
			if address == "" {
				return NewExitError(ExitCommandError, "no address given and no signer configured")
			}
			if !helpers.IsAddressValid(address) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid address: %s", address))
			}

			nonce, err := rt.Ledger.PendingNonceAt(cmd.Context(), address)
			if err != nil {
				return WrapExitError(ExitFailure, "failed to read nonce", err)
			}

			out := newFormatter(opts, cmd.OutOrStdout())
			return out.Success(
				NonceResult{Address: address, PendingNonce: nonce},
				fmt.Sprintf("%s pending nonce %d", address, nonce),
			)
		},
	}
}
