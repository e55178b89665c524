package services

import (
	"context"
	"fmt"

	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/metrics"
	"go.uber.org/zap"
)

// TransactionDispatcher pairs each outgoing transaction with a sequenced nonce for the
// service signing address.
type TransactionDispatcher struct {
	submitter interfaces.TransactionSubmitter
	nonces    interfaces.NonceSequencer
	alerter   interfaces.NonceGapAlerter
	logger    *zap.Logger
}

// NewTransactionDispatcher creates a new dispatcher. submitter and alerter may be nil; without a
// submitter the dispatcher reports itself unconfigured.
func NewTransactionDispatcher(submitter interfaces.TransactionSubmitter, nonces interfaces.NonceSequencer, alerter interfaces.NonceGapAlerter) *TransactionDispatcher {
	return &TransactionDispatcher{
		submitter: submitter,
		nonces:    nonces,
		alerter:   alerter,
		logger:    logger.ForComponent(logger.ComponentDispatch),
	}
}

// Configured reports whether a signing key is loaded.
func (d *TransactionDispatcher) Configured() bool {
	return d.submitter != nil && d.submitter.HasSigner()
}

// Supports reports whether transactions against contract can be dispatched.
func (d *TransactionDispatcher) Supports(contract string) bool {
	return d.Configured() && d.submitter.HasContract(contract)
}

// SignerAddress returns the address transactions are sent from.
func (d *TransactionDispatcher) SignerAddress() string {
	if d.submitter == nil {
		return ""
	}
	return d.submitter.SignerAddress()
}

// Dispatch prepares spec, allocates a nonce and broadcasts. Preparation failures never take a
// nonce. A nonce allocated for a failed broadcast is not returned to the pool; the gap is
// reported and left for an explicit reset.
func (d *TransactionDispatcher) Dispatch(ctx context.Context, spec chain.TxSpec) (*interfaces.DispatchResult, error) {
	if !d.Configured() {
		return nil, chain.ErrSignerNotConfigured
	}

	from := d.submitter.SignerAddress()

	tx, err := d.submitter.Prepare(ctx, spec)
	if err != nil {
		d.logger.Warn("Transaction rejected before nonce allocation",
			zap.String("from", from),
			zap.String("call", describe(spec)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to prepare %s transaction: %w", describe(spec), err)
	}

	nonce, err := d.nonces.GetNextNonce(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate nonce: %w", err)
	}

	txID, err := d.submitter.Send(ctx, tx, nonce)
	if err != nil {
		d.reportGap(ctx, from, nonce, spec, err)
		return nil, fmt.Errorf("failed to submit %s transaction: %w", describe(spec), err)
	}

	d.logger.Info("Transaction dispatched",
		zap.String("from", from),
		zap.String("tx_hash", txID),
		zap.Uint64("nonce", nonce),
		zap.String("call", describe(spec)),
	)

	return &interfaces.DispatchResult{TransactionID: txID, Nonce: nonce}, nil
}

func (d *TransactionDispatcher) reportGap(ctx context.Context, from string, nonce uint64, spec chain.TxSpec, cause error) {
	metrics.NonceGapsTotal.Inc()
	d.logger.Error("Broadcast failed after nonce allocation, nonce gap possible",
		zap.String("from", from),
		zap.Uint64("nonce", nonce),
		zap.String("call", describe(spec)),
		zap.Error(cause),
	)

	if d.alerter != nil {
		d.alerter.NotifyNonceGap(ctx, interfaces.NonceGapAlert{
			Address: from,
			Nonce:   nonce,
			Step:    describe(spec),
			Reason:  cause.Error(),
		})
	}
}

func describe(spec chain.TxSpec) string {
	if spec.Contract == chain.NativeAsset {
		return "native transfer"
	}
	return spec.Contract + "." + spec.Function
}
