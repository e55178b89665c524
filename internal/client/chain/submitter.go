package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

// PreparedTx is an encoded, priced transaction that has not been assigned a nonce yet.
type PreparedTx struct {
	Spec   TxSpec
	To     common.Address
	Data   []byte
	Value  *big.Int
	Gas    uint64
	TipCap *big.Int
	FeeCap *big.Int
}

// Prepare runs every check that can fail before a transaction leaves the process: signer,
// contract registry, ABI packing, fee lookup and gas estimation.
func (c *Client) Prepare(ctx context.Context, spec TxSpec) (*PreparedTx, error) {
	if c.key == nil {
		return nil, ErrSignerNotConfigured
	}

	to, data, err := c.encode(spec)
	if err != nil {
		return nil, err
	}

	value := spec.Value
	if value == nil {
		value = big.NewInt(0)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SubmitTimeout)
	defer cancel()

	tipCap, err := c.backend.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to suggest gas tip cap: %w", err)
	}

	header, err := c.backend.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest header: %w", err)
	}

	feeCap := new(big.Int).Set(tipCap)
	if header.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(header.BaseFee, big.NewInt(2)))
	}

	gas, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From:  c.from,
		To:    &to,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to estimate gas: %w", err)
	}

	return &PreparedTx{
		Spec:   spec,
		To:     to,
		Data:   data,
		Value:  value,
		Gas:    gas,
		TipCap: tipCap,
		FeeCap: feeCap,
	}, nil
}

// Send signs tx with the configured key at the given nonce and broadcasts it. It returns the
// transaction hash. The nonce is used as given and never re-read from the ledger.
func (c *Client) Send(ctx context.Context, tx *PreparedTx, nonce uint64) (string, error) {
	if c.key == nil {
		return "", ErrSignerNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.SubmitTimeout)
	defer cancel()

	to := tx.To
	unsigned := types.NewTx(&types.DynamicFeeTx{
		ChainID:   c.chainID,
		Nonce:     nonce,
		GasTipCap: tx.TipCap,
		GasFeeCap: tx.FeeCap,
		Gas:       tx.Gas,
		To:        &to,
		Value:     tx.Value,
		Data:      tx.Data,
	})

	signed, err := types.SignTx(unsigned, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign transaction: %w", err)
	}

	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.Info("Transaction broadcast",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("contract", tx.Spec.Contract),
		zap.String("function", tx.Spec.Function),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", tx.Gas),
	)

	return signed.Hash().Hex(), nil
}

// Submit prepares and sends spec in one step.
func (c *Client) Submit(ctx context.Context, spec TxSpec, nonce uint64) (string, error) {
	tx, err := c.Prepare(ctx, spec)
	if err != nil {
		return "", err
	}
	return c.Send(ctx, tx, nonce)
}

// HasContract reports whether name can be called. The native asset needs no registration.
func (c *Client) HasContract(name string) bool {
	if name == NativeAsset {
		return true
	}
	_, ok := c.registry[name]
	return ok
}

func (c *Client) encode(spec TxSpec) (common.Address, []byte, error) {
	if spec.Contract == NativeAsset {
		if len(spec.Args) != 1 {
			return common.Address{}, nil, ErrInvalidTransferArgs
		}
		to, ok := toAddress(spec.Args[0])
		if !ok {
			return common.Address{}, nil, ErrInvalidTransferArgs
		}
		return to, nil, nil
	}

	rc, err := c.contract(spec.Contract)
	if err != nil {
		return common.Address{}, nil, err
	}

	data, err := rc.abi.Pack(spec.Function, spec.Args...)
	if err != nil {
		return common.Address{}, nil, fmt.Errorf("failed to pack %s.%s: %w", spec.Contract, spec.Function, err)
	}
	return rc.address, data, nil
}

func toAddress(v interface{}) (common.Address, bool) {
	switch a := v.(type) {
	case common.Address:
		return a, true
	case string:
		if !common.IsHexAddress(a) {
			return common.Address{}, false
		}
		return common.HexToAddress(a), true
	default:
		return common.Address{}, false
	}
}
