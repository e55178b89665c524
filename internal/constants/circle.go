package constants

import "time"

// Faucet rate limit window per wallet
const DisbursementWindow = 24 * time.Hour

// Defaults for ledger and batch settings
const (
	DefaultChainReadTimeout   = 10 * time.Second
	DefaultChainSubmitTimeout = 30 * time.Second
	DefaultSyncConcurrency    = 4
)

// SavingsCircle on-chain status codes
const (
	OnChainStatusForming   uint8 = 0
	OnChainStatusActive    uint8 = 1
	OnChainStatusPaused    uint8 = 2
	OnChainStatusCompleted uint8 = 3
)

// Faucet disbursement step numbers recorded on failed requests
const (
	DisbursementStepGas   = 1
	DisbursementStepToken = 2
)
