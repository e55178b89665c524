package services

import (
	"context"
	"math/big"
	"time"

	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/constants"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/metrics"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const completionWriteTimeout = 5 * time.Second

// FaucetConfig sets the drip amounts and the per-wallet claim window
type FaucetConfig struct {
	GasDripWei      *big.Int
	TokenDripAmount *big.Int
	Window          time.Duration
}

// FaucetService sends a native gas drip and an ERC-20 token drip to a user's wallet
type FaucetService struct {
	queries    db.Querier
	dispatcher interfaces.TransactionDispatcher
	cfg        FaucetConfig
	locks      *keyedMutex
	now        func() time.Time
	logger     *zap.Logger
}

type disbursementStep struct {
	number int
	name   string
	spec   chain.TxSpec
}

// NewFaucetService creates a new faucet service
func NewFaucetService(queries db.Querier, dispatcher interfaces.TransactionDispatcher, cfg FaucetConfig) *FaucetService {
	if cfg.Window <= 0 {
		cfg.Window = constants.DisbursementWindow
	}
	if cfg.GasDripWei == nil {
		cfg.GasDripWei = big.NewInt(0)
	}
	if cfg.TokenDripAmount == nil {
		cfg.TokenDripAmount = big.NewInt(0)
	}
	return &FaucetService{
		queries:    queries,
		dispatcher: dispatcher,
		cfg:        cfg,
		locks:      newKeyedMutex(),
		now:        time.Now,
		logger:     logger.ForComponent(logger.ComponentFaucet),
	}
}

// Enabled reports whether claims can be served. Both the signer and the token contract must
// be configured.
func (s *FaucetService) Enabled() bool {
	return s.dispatcher.Configured() && s.dispatcher.Supports(chain.ContractToken)
}

// RequestDisbursement runs one faucet claim for walletAddress. Both drips go out back to back
// from the service key; the request row ends as success or failed and is never reopened.
func (s *FaucetService) RequestDisbursement(ctx context.Context, userID uuid.UUID, walletAddress string) (*interfaces.DisbursementResult, error) {
	if !helpers.IsAddressValid(walletAddress) {
		return nil, ErrInvalidWalletAddress
	}
	wallet := helpers.NormalizeAddress(walletAddress)

	if !s.Enabled() {
		metrics.DisbursementsTotal.WithLabelValues(metrics.DisbursementUnavailable).Inc()
		return nil, ErrServiceUnavailable
	}

	unlock := s.locks.Lock(wallet)
	defer unlock()

	log := s.logger.With(
		zap.String("user_id", userID.String()),
		zap.String("wallet_address", wallet),
	)

	now := s.now()

	latest, err := s.queries.GetLatestDisbursementByWallet(ctx, wallet)
	switch {
	case err == nil:
		if latest.CountsTowardLimit(now, s.cfg.Window) {
			log.Info("Faucet claim rejected, wallet inside claim window",
				zap.String("latest_request_id", latest.ID.String()),
				zap.Time("latest_requested_at", latest.RequestedAt.Time),
			)
			metrics.DisbursementsTotal.WithLabelValues(metrics.DisbursementRateLimited).Inc()
			return nil, ErrRateLimited
		}
	case errors.Is(err, pgx.ErrNoRows):
		// first claim
	default:
		return nil, errors.Wrap(err, "failed to check disbursement history")
	}

	req, err := s.queries.CreateDisbursementRequest(ctx, db.CreateDisbursementRequestParams{
		UserID:        userID,
		WalletAddress: wallet,
		RequestedAt:   db.Timestamptz(now),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create disbursement request")
	}
	log = log.With(zap.String("request_id", req.ID.String()))

	recipient := common.HexToAddress(wallet)
	steps := []disbursementStep{
		{
			number: constants.DisbursementStepGas,
			name:   "gas drip",
			spec: chain.TxSpec{
				Contract: chain.NativeAsset,
				Args:     []interface{}{recipient},
				Value:    s.cfg.GasDripWei,
			},
		},
		{
			number: constants.DisbursementStepToken,
			name:   "token drip",
			spec: chain.TxSpec{
				Contract: chain.ContractToken,
				Function: "transfer",
				Args:     []interface{}{recipient, s.cfg.TokenDripAmount},
			},
		},
	}

	txIDs := make([]string, 0, len(steps))
	for _, step := range steps {
		result, err := s.dispatcher.Dispatch(ctx, step.spec)
		if err != nil {
			log.Error("Faucet drip failed",
				zap.String("step", step.name),
				zap.Strings("landed_transactions", txIDs),
				zap.Error(err),
			)
			s.complete(ctx, log, db.CompleteDisbursementRequestParams{
				ID:             req.ID,
				Status:         db.DisbursementStatusFailed,
				TransactionIds: txIDs,
				FailedStep:     pgtype.Int4{Int32: int32(step.number), Valid: true},
				FailureReason:  pgtype.Text{String: err.Error(), Valid: true},
				CompletedAt:    db.Timestamptz(s.now()),
			})
			metrics.DisbursementsTotal.WithLabelValues(metrics.DisbursementFailed).Inc()
			return nil, errors.Wrapf(ErrDisbursementFailed, "%s: %v", step.name, err)
		}
		txIDs = append(txIDs, result.TransactionID)
	}

	s.complete(ctx, log, db.CompleteDisbursementRequestParams{
		ID:             req.ID,
		Status:         db.DisbursementStatusSuccess,
		TransactionIds: txIDs,
		CompletedAt:    db.Timestamptz(s.now()),
	})
	metrics.DisbursementsTotal.WithLabelValues(metrics.DisbursementSuccess).Inc()

	log.Info("Faucet claim completed", zap.Strings("transaction_ids", txIDs))

	return &interfaces.DisbursementResult{
		RequestID:      req.ID,
		TransactionIDs: txIDs,
	}, nil
}

// complete records the final state even if the caller's context is already done.
func (s *FaucetService) complete(ctx context.Context, log *zap.Logger, params db.CompleteDisbursementRequestParams) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), completionWriteTimeout)
	defer cancel()

	if _, err := s.queries.CompleteDisbursementRequest(writeCtx, params); err != nil {
		log.Error("Failed to record disbursement outcome",
			zap.String("status", string(params.Status)),
			zap.Strings("transaction_ids", params.TransactionIds),
			zap.Error(err),
		)
	}
}

// GetStatus returns the wallet's latest claim and when it may claim again
func (s *FaucetService) GetStatus(ctx context.Context, walletAddress string) (*interfaces.FaucetStatus, error) {
	if !helpers.IsAddressValid(walletAddress) {
		return nil, ErrInvalidWalletAddress
	}
	wallet := helpers.NormalizeAddress(walletAddress)
	now := s.now()

	latest, err := s.queries.GetLatestDisbursementByWallet(ctx, wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &interfaces.FaucetStatus{NextEligibleAt: now, Eligible: true}, nil
		}
		return nil, errors.Wrap(err, "failed to get latest disbursement")
	}

	status := &interfaces.FaucetStatus{Latest: &latest, NextEligibleAt: now, Eligible: true}
	if latest.CountsTowardLimit(now, s.cfg.Window) {
		status.NextEligibleAt = latest.RequestedAt.Time.Add(s.cfg.Window)
		status.Eligible = false
	}
	return status, nil
}
