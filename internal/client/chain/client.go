package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cyphera/cyphera-circles/internal/constants"
	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
)

// Backend is the subset of ethclient.Client the chain client relies on.
type Backend interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// Config holds the connection and contract settings for a single EVM network.
type Config struct {
	RPCURL               string
	ChainID              int64
	SavingsCircleAddress string
	TokenAddress         string
	SignerPrivateKey     string
	ReadTimeout          time.Duration
	SubmitTimeout        time.Duration
	MaxReadAttempts      int
	RetryInitialInterval time.Duration
}

type registeredContract struct {
	address common.Address
	abi     abi.ABI
}

// Client reads SavingsCircle state and signs and broadcasts transactions from one key.
type Client struct {
	backend  Backend
	chainID  *big.Int
	registry map[string]registeredContract
	key      *ecdsa.PrivateKey
	from     common.Address
	cfg      Config
	logger   *zap.Logger
	closer   func()
}

// Dial connects to cfg.RPCURL and builds a Client. The chain id is read from the node when
// cfg.ChainID is zero.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, fmt.Errorf("RPC URL not provided")
	}

	ec, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	chainID := big.NewInt(cfg.ChainID)
	if cfg.ChainID == 0 {
		chainID, err = ec.ChainID(ctx)
		if err != nil {
			ec.Close()
			return nil, fmt.Errorf("failed to get chain ID: %w", err)
		}
	}

	client, err := NewClient(ec, chainID, cfg)
	if err != nil {
		ec.Close()
		return nil, err
	}
	client.closer = ec.Close

	return client, nil
}

// NewClient builds a Client over an existing backend.
func NewClient(backend Backend, chainID *big.Int, cfg Config) (*Client, error) {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = constants.DefaultChainReadTimeout
	}
	if cfg.SubmitTimeout <= 0 {
		cfg.SubmitTimeout = constants.DefaultChainSubmitTimeout
	}
	if cfg.MaxReadAttempts <= 0 {
		cfg.MaxReadAttempts = 3
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 200 * time.Millisecond
	}

	c := &Client{
		backend:  backend,
		chainID:  chainID,
		registry: make(map[string]registeredContract),
		cfg:      cfg,
		logger:   logger.ForComponent(logger.ComponentChain),
	}

	if cfg.SavingsCircleAddress != "" {
		if err := c.register(ContractSavingsCircle, cfg.SavingsCircleAddress, SavingsCircleABI); err != nil {
			return nil, err
		}
	}
	if cfg.TokenAddress != "" {
		if err := c.register(ContractToken, cfg.TokenAddress, ERC20ABI); err != nil {
			return nil, err
		}
	}

	if cfg.SignerPrivateKey != "" {
		if !helpers.IsPrivateKeyValid(cfg.SignerPrivateKey) {
			return nil, fmt.Errorf("invalid signer private key format")
		}
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.SignerPrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse signer private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
		c.logger.Info("Signer configured", zap.String("address", c.from.Hex()))
	} else {
		c.logger.Warn("No signer private key configured, submissions disabled")
	}

	return c, nil
}

func (c *Client) register(name, address, abiJSON string) error {
	if !helpers.IsAddressValid(address) {
		return fmt.Errorf("invalid %s contract address: %s", name, address)
	}
	parsed, err := abi.JSON(strings.NewReader(abiJSON))
	if err != nil {
		return fmt.Errorf("failed to parse %s ABI: %w", name, err)
	}
	c.registry[name] = registeredContract{address: common.HexToAddress(address), abi: parsed}
	return nil
}

func (c *Client) contract(name string) (registeredContract, error) {
	rc, ok := c.registry[name]
	if !ok {
		return registeredContract{}, fmt.Errorf("%w: %s", ErrUnknownContract, name)
	}
	return rc, nil
}

// HasSigner reports whether a signing key is loaded.
func (c *Client) HasSigner() bool {
	return c.key != nil
}

// SignerAddress returns the checksummed signing address, or "" without a key.
func (c *Client) SignerAddress() string {
	if c.key == nil {
		return ""
	}
	return c.from.Hex()
}

// PendingNonceAt returns the ledger-reported next nonce for address.
func (c *Client) PendingNonceAt(ctx context.Context, address string) (uint64, error) {
	if !helpers.IsAddressValid(address) {
		return 0, fmt.Errorf("invalid address: %s", address)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ReadTimeout)
	defer cancel()

	nonce, err := c.backend.PendingNonceAt(ctx, common.HexToAddress(address))
	if err != nil {
		return 0, fmt.Errorf("failed to get pending nonce: %w", err)
	}
	return nonce, nil
}

// Close releases the underlying RPC connection when the client owns it.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}
