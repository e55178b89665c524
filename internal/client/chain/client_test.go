package chain

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCircleAddress = "0x1111111111111111111111111111111111111111"
	testTokenAddress  = "0x2222222222222222222222222222222222222222"
	testRecipient     = "0x3333333333333333333333333333333333333333"
)

type revertError struct{}

func (revertError) Error() string          { return "execution reverted" }
func (revertError) ErrorData() interface{} { return "0x" }

type fakeBackend struct {
	mu          sync.Mutex
	callResults []callResult
	calls       int
	nonce       uint64
	nonceErr    error
	sent        []*types.Transaction
	sendErr     error
}

type callResult struct {
	out []byte
	err error
}

func (f *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := f.calls
	f.calls++
	if idx >= len(f.callResults) {
		idx = len(f.callResults) - 1
	}
	return f.callResults[idx].out, f.callResults[idx].err
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	return f.nonce, f.nonceErr
}

func (f *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	return 21000, nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{BaseFee: big.NewInt(10_000_000_000)}, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, tx)
	return nil
}

func newTestClient(t *testing.T, backend Backend, signerKey string) *Client {
	t.Helper()
	c, err := NewClient(backend, big.NewInt(84532), Config{
		SavingsCircleAddress: testCircleAddress,
		TokenAddress:         testTokenAddress,
		SignerPrivateKey:     signerKey,
		ReadTimeout:          time.Second,
		RetryInitialInterval: time.Millisecond,
	})
	require.NoError(t, err)
	return c
}

func packCircleInfo(t *testing.T, creator, token common.Address, status uint8) []byte {
	t.Helper()
	parsed, err := abi.JSON(strings.NewReader(SavingsCircleABI))
	require.NoError(t, err)
	out, err := parsed.Methods["getCircleInfo"].Outputs.Pack(
		"Weekly Savers",
		creator,
		big.NewInt(100),
		big.NewInt(5),
		big.NewInt(2),
		status,
		big.NewInt(1_700_000_000),
		big.NewInt(10),
		big.NewInt(604800),
		big.NewInt(86400),
		big.NewInt(500),
		big.NewInt(200),
		uint8(1),
		token,
	)
	require.NoError(t, err)
	return out
}

func TestGetCircleInfo(t *testing.T) {
	creator := common.HexToAddress("0x4444444444444444444444444444444444444444")
	token := common.HexToAddress(testTokenAddress)

	tests := []struct {
		name         string
		results      []callResult
		wantFound    bool
		wantCalls    int
		wantTokenNil bool
		wantStatus   uint8
	}{
		{
			name:       "found",
			results:    []callResult{{out: packCircleInfo(t, creator, token, 1)}},
			wantFound:  true,
			wantCalls:  1,
			wantStatus: 1,
		},
		{
			name:         "native token circle",
			results:      []callResult{{out: packCircleInfo(t, creator, common.Address{}, 3)}},
			wantFound:    true,
			wantCalls:    1,
			wantTokenNil: true,
			wantStatus:   3,
		},
		{
			name:      "zero creator is not found",
			results:   []callResult{{out: packCircleInfo(t, common.Address{}, token, 0)}},
			wantFound: false,
			wantCalls: 1,
		},
		{
			name:      "revert is not retried",
			results:   []callResult{{err: revertError{}}},
			wantFound: false,
			wantCalls: 1,
		},
		{
			name:      "empty result is not found",
			results:   []callResult{{out: []byte{}}},
			wantFound: false,
			wantCalls: 1,
		},
		{
			name: "transient failure recovers",
			results: []callResult{
				{err: errors.New("connection reset by peer")},
				{err: errors.New("i/o timeout")},
				{out: packCircleInfo(t, creator, token, 2)},
			},
			wantFound:  true,
			wantCalls:  3,
			wantStatus: 2,
		},
		{
			name:      "transient failure exhausts attempts",
			results:   []callResult{{err: errors.New("connection refused")}},
			wantFound: false,
			wantCalls: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{callResults: tt.results}
			c := newTestClient(t, backend, "")

			info, found := c.GetCircleInfo(context.Background(), 7)

			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantCalls, backend.calls)
			if !tt.wantFound {
				assert.Nil(t, info)
				return
			}
			require.NotNil(t, info)
			assert.Equal(t, "Weekly Savers", info.Name)
			assert.Equal(t, creator.Hex(), info.Creator)
			assert.Equal(t, tt.wantStatus, info.Status)
			assert.Equal(t, int64(2), info.CurrentRound.Int64())
			assert.Equal(t, int64(500), info.TotalContributed.Int64())
			if tt.wantTokenNil {
				assert.Nil(t, info.TokenContract)
			} else {
				require.NotNil(t, info.TokenContract)
				assert.Equal(t, token.Hex(), *info.TokenContract)
			}
		})
	}
}

func TestGetCircleInfo_NoContractConfigured(t *testing.T) {
	backend := &fakeBackend{}
	c, err := NewClient(backend, big.NewInt(1), Config{})
	require.NoError(t, err)

	info, found := c.GetCircleInfo(context.Background(), 1)
	assert.False(t, found)
	assert.Nil(t, info)
	assert.Equal(t, 0, backend.calls)
}

func TestPendingNonceAt(t *testing.T) {
	c := newTestClient(t, &fakeBackend{nonce: 42}, "")

	nonce, err := c.PendingNonceAt(context.Background(), testRecipient)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), nonce)

	_, err = c.PendingNonceAt(context.Background(), "not-an-address")
	assert.Error(t, err)

	failing := newTestClient(t, &fakeBackend{nonceErr: errors.New("rpc down")}, "")
	_, err = failing.PendingNonceAt(context.Background(), testRecipient)
	assert.Error(t, err)
}

func TestSubmit(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	keyHex := "0x" + hex.EncodeToString(crypto.FromECDSA(key))
	signer := crypto.PubkeyToAddress(key.PublicKey)

	t.Run("native transfer", func(t *testing.T) {
		backend := &fakeBackend{}
		c := newTestClient(t, backend, keyHex)
		assert.True(t, c.HasSigner())
		assert.Equal(t, signer.Hex(), c.SignerAddress())

		hash, err := c.Submit(context.Background(), TxSpec{
			Contract: NativeAsset,
			Args:     []interface{}{testRecipient},
			Value:    big.NewInt(1000),
		}, 7)
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)

		tx := backend.sent[0]
		assert.Equal(t, tx.Hash().Hex(), hash)
		assert.Equal(t, uint64(7), tx.Nonce())
		assert.Equal(t, common.HexToAddress(testRecipient), *tx.To())
		assert.Equal(t, int64(1000), tx.Value().Int64())
		assert.Empty(t, tx.Data())
		assert.Equal(t, uint8(types.DynamicFeeTxType), tx.Type())

		from, err := types.Sender(types.LatestSignerForChainID(big.NewInt(84532)), tx)
		require.NoError(t, err)
		assert.Equal(t, signer, from)
	})

	t.Run("token transfer", func(t *testing.T) {
		backend := &fakeBackend{}
		c := newTestClient(t, backend, keyHex)

		_, err := c.Submit(context.Background(), TxSpec{
			Contract: ContractToken,
			Function: "transfer",
			Args:     []interface{}{common.HexToAddress(testRecipient), big.NewInt(5)},
		}, 8)
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)

		tx := backend.sent[0]
		parsed, err := abi.JSON(strings.NewReader(ERC20ABI))
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress(testTokenAddress), *tx.To())
		assert.Equal(t, parsed.Methods["transfer"].ID, tx.Data()[:4])
		assert.Equal(t, uint64(8), tx.Nonce())
	})

	t.Run("errors", func(t *testing.T) {
		unsigned := newTestClient(t, &fakeBackend{}, "")
		_, err := unsigned.Submit(context.Background(), TxSpec{Contract: NativeAsset, Args: []interface{}{testRecipient}}, 0)
		assert.ErrorIs(t, err, ErrSignerNotConfigured)

		c := newTestClient(t, &fakeBackend{}, keyHex)
		_, err = c.Submit(context.Background(), TxSpec{Contract: "unknown", Function: "x"}, 0)
		assert.ErrorIs(t, err, ErrUnknownContract)

		_, err = c.Submit(context.Background(), TxSpec{Contract: NativeAsset, Args: []interface{}{"bogus"}}, 0)
		assert.ErrorIs(t, err, ErrInvalidTransferArgs)

		failing := newTestClient(t, &fakeBackend{sendErr: errors.New("nonce too low")}, keyHex)
		_, err = failing.Submit(context.Background(), TxSpec{Contract: NativeAsset, Args: []interface{}{testRecipient}}, 0)
		assert.ErrorContains(t, err, "nonce too low")
	})
}

func TestNewClient_InvalidConfig(t *testing.T) {
	_, err := NewClient(&fakeBackend{}, big.NewInt(1), Config{SavingsCircleAddress: "0x123"})
	assert.Error(t, err)

	_, err = NewClient(&fakeBackend{}, big.NewInt(1), Config{SignerPrivateKey: "abc"})
	assert.Error(t, err)
}

func TestPrepare(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	keyHex := "0x" + hex.EncodeToString(crypto.FromECDSA(key))

	t.Run("prices without broadcasting", func(t *testing.T) {
		backend := &fakeBackend{}
		c := newTestClient(t, backend, keyHex)

		tx, err := c.Prepare(context.Background(), TxSpec{
			Contract: NativeAsset,
			Args:     []interface{}{testRecipient},
			Value:    big.NewInt(3),
		})
		require.NoError(t, err)
		assert.Empty(t, backend.sent)
		assert.Equal(t, uint64(21000), tx.Gas)
		assert.Equal(t, int64(21_000_000_000), tx.FeeCap.Int64())

		hash, err := c.Send(context.Background(), tx, 11)
		require.NoError(t, err)
		require.Len(t, backend.sent, 1)
		assert.Equal(t, hash, backend.sent[0].Hash().Hex())
		assert.Equal(t, uint64(11), backend.sent[0].Nonce())
	})

	t.Run("token contract not configured", func(t *testing.T) {
		backend := &fakeBackend{}
		c, err := NewClient(backend, big.NewInt(84532), Config{
			SavingsCircleAddress: testCircleAddress,
			SignerPrivateKey:     keyHex,
		})
		require.NoError(t, err)

		assert.True(t, c.HasContract(NativeAsset))
		assert.True(t, c.HasContract(ContractSavingsCircle))
		assert.False(t, c.HasContract(ContractToken))

		_, err = c.Prepare(context.Background(), TxSpec{
			Contract: ContractToken,
			Function: "transfer",
			Args:     []interface{}{common.HexToAddress(testRecipient), big.NewInt(5)},
		})
		assert.ErrorIs(t, err, ErrUnknownContract)
		assert.Empty(t, backend.sent)
	})

	t.Run("bad arguments", func(t *testing.T) {
		c := newTestClient(t, &fakeBackend{}, keyHex)
		_, err := c.Prepare(context.Background(), TxSpec{Contract: ContractToken, Function: "transfer", Args: []interface{}{"x"}})
		assert.ErrorContains(t, err, "failed to pack token.transfer")
	})
}
