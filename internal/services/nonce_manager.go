package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/metrics"
	"go.uber.org/zap"
)

// nonceCursor is the next nonce to hand out for one address.
type nonceCursor struct {
	mu          sync.Mutex
	next        uint64
	initialized bool
}

// NonceManager allocates strictly increasing nonces per address, seeded from the ledger's
// pending nonce. Cursors live in memory only.
type NonceManager struct {
	reader  interfaces.NonceReader
	mu      sync.Mutex
	cursors map[string]*nonceCursor
	logger  *zap.Logger
}

// NewNonceManager creates a new nonce manager
func NewNonceManager(reader interfaces.NonceReader) *NonceManager {
	return &NonceManager{
		reader:  reader,
		cursors: make(map[string]*nonceCursor),
		logger:  logger.ForComponent(logger.ComponentNonce),
	}
}

func (m *NonceManager) cursor(address string) *nonceCursor {
	key := helpers.NormalizeAddress(address)

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cursors[key]
	if !ok {
		c = &nonceCursor{}
		m.cursors[key] = c
	}
	return c
}

// lookup returns the cursor for address without creating one.
func (m *NonceManager) lookup(address string) (*nonceCursor, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.cursors[helpers.NormalizeAddress(address)]
	return c, ok
}

// GetNextNonce returns the next nonce for address. The first call after construction or
// ResetNonce reads the pending nonce from the ledger; later calls never touch the network.
func (m *NonceManager) GetNextNonce(ctx context.Context, address string) (uint64, error) {
	c := m.cursor(address)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		pending, err := m.reader.PendingNonceAt(ctx, address)
		if err != nil {
			m.logger.Error("Failed to seed nonce cursor",
				zap.String("address", address),
				zap.Error(err),
			)
			return 0, fmt.Errorf("%w for %s: %w", ErrNonceRetrieval, address, err)
		}
		c.next = pending
		c.initialized = true
		m.logger.Info("Nonce cursor initialized",
			zap.String("address", address),
			zap.Uint64("nonce", pending),
		)
	}

	nonce := c.next
	c.next++
	metrics.NonceAllocationsTotal.Inc()

	return nonce, nil
}

// ResetNonce discards the cursor so the next allocation re-reads the ledger.
func (m *NonceManager) ResetNonce(address string) {
	c, ok := m.lookup(address)
	if !ok {
		m.logger.Info("Nonce reset for address without a cursor", zap.String("address", address))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	previous, wasInitialized := c.next, c.initialized
	c.next = 0
	c.initialized = false
	metrics.NonceResetsTotal.Inc()

	m.logger.Warn("Nonce cursor reset",
		zap.String("address", address),
		zap.Bool("was_initialized", wasInitialized),
		zap.Uint64("discarded_next_nonce", previous),
	)
}

// CurrentNonce returns the nonce the next allocation would hand out, if the cursor is live.
func (m *NonceManager) CurrentNonce(address string) (uint64, bool) {
	c, ok := m.lookup(address)
	if !ok {
		return 0, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return 0, false
	}
	return c.next, true
}
