package interfaces

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/google/uuid"
)

// NonceSequencer hands out per-address transaction nonces
type NonceSequencer interface {
	GetNextNonce(ctx context.Context, address string) (uint64, error)
	ResetNonce(address string)
	CurrentNonce(address string) (uint64, bool)
}

// DispatchResult is the outcome of a broadcast transaction
type DispatchResult struct {
	TransactionID string
	Nonce         uint64
}

// TransactionDispatcher submits transactions from the service signing key
type TransactionDispatcher interface {
	Dispatch(ctx context.Context, spec chain.TxSpec) (*DispatchResult, error)
	Configured() bool
	Supports(contract string) bool
	SignerAddress() string
}

// SyncResults summarizes a batch reconciliation run
type SyncResults struct {
	Total  int `json:"total"`
	Synced int `json:"synced"`
	Failed int `json:"failed"`
}

// CircleSyncService reconciles cached circles with on-chain state
type CircleSyncService interface {
	SyncCircle(ctx context.Context, circleID uuid.UUID) (bool, error)
	SyncAllCircles(ctx context.Context) (*SyncResults, error)
}

// DisbursementResult is returned for a successful faucet claim
type DisbursementResult struct {
	RequestID      uuid.UUID
	TransactionIDs []string
}

// FaucetStatus is the latest claim for a wallet and when it may claim again
type FaucetStatus struct {
	Latest         *db.DisbursementRequest
	NextEligibleAt time.Time
	Eligible       bool
}

// FaucetService handles testnet fund disbursements
type FaucetService interface {
	RequestDisbursement(ctx context.Context, userID uuid.UUID, walletAddress string) (*DisbursementResult, error)
	GetStatus(ctx context.Context, walletAddress string) (*FaucetStatus, error)
	Enabled() bool
}
