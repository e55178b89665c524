package interfaces

//go:generate mockgen -source=clients.go -destination=../mocks/mock_clients.go -package=mocks

import (
	"context"

	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/google/uuid"
)

// ChainReader reads circle records from the SavingsCircle contract
type ChainReader interface {
	GetCircleInfo(ctx context.Context, onChainID uint64) (*chain.CircleInfo, bool)
}

// NonceReader reports the ledger's next nonce for an account
type NonceReader interface {
	PendingNonceAt(ctx context.Context, address string) (uint64, error)
}

// TransactionSubmitter signs and broadcasts a transaction at a caller-chosen nonce. Prepare
// must succeed before a nonce is taken for the transaction.
type TransactionSubmitter interface {
	Prepare(ctx context.Context, spec chain.TxSpec) (*chain.PreparedTx, error)
	Send(ctx context.Context, tx *chain.PreparedTx, nonce uint64) (string, error)
	HasSigner() bool
	HasContract(name string) bool
	SignerAddress() string
}

// SyncQueue hands single-circle sync requests to the async processor
type SyncQueue interface {
	EnqueueCircleSync(ctx context.Context, circleID uuid.UUID) (string, error)
}

// NonceGapAlert describes a nonce that was allocated but never landed on chain
type NonceGapAlert struct {
	Address string
	Nonce   uint64
	Step    string
	Reason  string
}

// NonceGapAlerter notifies operators about skipped nonces
type NonceGapAlerter interface {
	NotifyNonceGap(ctx context.Context, alert NonceGapAlert)
}
