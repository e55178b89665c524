package app

import (
	"context"
	"fmt"

	awsclient "github.com/cyphera/cyphera-circles/internal/client/aws"
	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/config"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/cyphera/cyphera-circles/internal/services"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Application holds the dependencies shared by the API, the sync processor and circlectl.
type Application struct {
	Config     *config.Config
	Pool       *pgxpool.Pool
	Queries    *db.Queries
	Chain      *chain.Client
	Nonces     *services.NonceManager
	Dispatcher *services.TransactionDispatcher
	Sync       *services.CircleSyncService
	Faucet     *services.FaucetService
	SyncQueue  interfaces.SyncQueue
}

// New opens the database pool and the ledger connection and wires the services. A missing
// RPC_URL leaves the chain client nil: syncs report false and the faucet reports unavailable.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	log := logger.ForComponent(logger.ComponentAPI)

	pool, err := config.NewPool(ctx, cfg.DatabaseURL, cfg.Pool)
	if err != nil {
		return nil, err
	}

	a := &Application{
		Config:  cfg,
		Pool:    pool,
		Queries: db.New(pool),
	}

	var (
		reader    interfaces.ChainReader
		nonceRead interfaces.NonceReader
		submitter interfaces.TransactionSubmitter
		alerter   interfaces.NonceGapAlerter
	)

	if cfg.Chain.RPCURL != "" {
		client, err := chain.Dial(ctx, cfg.Chain)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to initialize chain client: %w", err)
		}
		a.Chain = client
		nonceRead = client
		submitter = client
		if cfg.Chain.SavingsCircleAddress != "" {
			reader = client
		} else {
			log.Warn("SAVINGS_CIRCLE_ADDRESS not set, circle sync disabled")
		}
		if client.HasSigner() && !client.HasContract(chain.ContractToken) {
			log.Warn("TOKEN_ADDRESS not set, faucet disbursements disabled")
		}
	} else {
		log.Warn("RPC_URL not set, chain reads and faucet disbursements disabled")
	}

	if cfg.AlertsEnabled() {
		alerter = services.NewEmailAlerter(cfg.Alerts.ResendAPIKey, cfg.Alerts.FromEmail, cfg.Alerts.FromName, cfg.Alerts.To)
	}

	a.Nonces = services.NewNonceManager(nonceRead)
	a.Dispatcher = services.NewTransactionDispatcher(submitter, a.Nonces, alerter)
	a.Sync = services.NewCircleSyncService(a.Queries, reader, cfg.SyncConcurrency)
	a.Faucet = services.NewFaucetService(a.Queries, a.Dispatcher, services.FaucetConfig{
		GasDripWei:      cfg.GasDripWei,
		TokenDripAmount: cfg.TokenDripAmount,
	})

	if cfg.SyncQueueURL != "" {
		queue, err := awsclient.NewSyncQueueClient(ctx, cfg.SyncQueueURL)
		if err != nil {
			log.Warn("Failed to initialize sync queue client, enqueue endpoint disabled", zap.Error(err))
		} else {
			a.SyncQueue = queue
		}
	}

	log.Info("Application initialized",
		zap.String("stage", cfg.Stage),
		zap.Bool("chain", a.Chain != nil),
		zap.Bool("faucet_enabled", a.Faucet.Enabled()),
		zap.Bool("alerts", alerter != nil),
		zap.Bool("sync_queue", a.SyncQueue != nil),
	)

	return a, nil
}

// Close releases the ledger connection and the database pool.
func (a *Application) Close() {
	if a.Chain != nil {
		a.Chain.Close()
	}
	if a.Pool != nil {
		a.Pool.Close()
	}
}
