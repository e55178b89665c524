package chain

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// GetCircleInfo reads the SavingsCircle record for onChainID. It returns (nil, false) when the
// circle does not exist and when the read could not complete.
func (c *Client) GetCircleInfo(ctx context.Context, onChainID uint64) (*CircleInfo, bool) {
	log := c.logger.With(zap.Uint64("on_chain_id", onChainID))

	rc, err := c.contract(ContractSavingsCircle)
	if err != nil {
		log.Error("SavingsCircle contract not configured", zap.Error(err))
		return nil, false
	}

	input, err := rc.abi.Pack("getCircleInfo", new(big.Int).SetUint64(onChainID))
	if err != nil {
		log.Error("Failed to pack getCircleInfo call", zap.Error(err))
		return nil, false
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ReadTimeout)
	defer cancel()

	msg := ethereum.CallMsg{To: &rc.address, Data: input}
	var output []byte
	attempts := 0

	operation := func() error {
		attempts++
		out, callErr := c.backend.CallContract(ctx, msg, nil)
		if callErr != nil {
			if isRevert(callErr) {
				return backoff.Permanent(errCircleNotFound)
			}
			if ctx.Err() != nil {
				return backoff.Permanent(callErr)
			}
			log.Debug("Transient getCircleInfo failure", zap.Int("attempt", attempts), zap.Error(callErr))
			return callErr
		}
		if len(out) == 0 {
			return backoff.Permanent(errCircleNotFound)
		}
		output = out
		return nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.cfg.RetryInitialInterval
	expBackoff.MaxElapsedTime = c.cfg.ReadTimeout

	retryErr := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(c.cfg.MaxReadAttempts-1)), ctx))
	if retryErr != nil {
		if errors.Is(retryErr, errCircleNotFound) {
			log.Debug("Circle not found on chain")
		} else {
			log.Warn("Failed to read circle from chain", zap.Int("attempts", attempts), zap.Error(retryErr))
		}
		return nil, false
	}

	var decoded circleInfoOutput
	if err := rc.abi.UnpackIntoInterface(&decoded, "getCircleInfo", output); err != nil {
		log.Error("Failed to decode getCircleInfo result", zap.Error(err))
		return nil, false
	}

	if decoded.Creator == (common.Address{}) {
		log.Debug("Circle has zero creator, treating as not found")
		return nil, false
	}

	return decoded.toCircleInfo(), true
}

func isRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}
