package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/cyphera/cyphera-circles/internal/mocks"
	"github.com/cyphera/cyphera-circles/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNonceManager_SequentialAllocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockNonceReader(ctrl)
	reader.EXPECT().PendingNonceAt(gomock.Any(), signerAddress).Return(uint64(5), nil).Times(1)

	m := services.NewNonceManager(reader)
	ctx := context.Background()

	_, ok := m.CurrentNonce(signerAddress)
	assert.False(t, ok)

	for _, want := range []uint64{5, 6, 7} {
		got, err := m.GetNextNonce(ctx, signerAddress)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	next, ok := m.CurrentNonce(signerAddress)
	assert.True(t, ok)
	assert.Equal(t, uint64(8), next)
}

func TestNonceManager_ConcurrentAllocationIsUnique(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockNonceReader(ctrl)
	reader.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(10), nil).Times(1)

	m := services.NewNonceManager(reader)
	const workers = 100

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = make(map[uint64]int)
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := m.GetNextNonce(context.Background(), signerAddress)
			assert.NoError(t, err)
			mu.Lock()
			seen[n]++
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers)
	for n := uint64(10); n < 10+workers; n++ {
		assert.Equal(t, 1, seen[n], "nonce %d", n)
	}
}

func TestNonceManager_AddressCaseSharesCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockNonceReader(ctrl)
	reader.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(0), nil).Times(1)

	m := services.NewNonceManager(reader)
	mixed := "0xAbCdEf0000000000000000000000000000000001"

	first, err := m.GetNextNonce(context.Background(), mixed)
	require.NoError(t, err)
	second, err := m.GetNextNonce(context.Background(), "0xabcdef0000000000000000000000000000000001")
	require.NoError(t, err)

	assert.Equal(t, uint64(0), first)
	assert.Equal(t, uint64(1), second)
}

func TestNonceManager_ResetReadsLedgerAgain(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockNonceReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().PendingNonceAt(gomock.Any(), signerAddress).Return(uint64(5), nil),
		reader.EXPECT().PendingNonceAt(gomock.Any(), signerAddress).Return(uint64(20), nil),
	)

	m := services.NewNonceManager(reader)
	ctx := context.Background()

	n, err := m.GetNextNonce(ctx, signerAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), n)
	n, err = m.GetNextNonce(ctx, signerAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), n)

	m.ResetNonce(signerAddress)
	_, ok := m.CurrentNonce(signerAddress)
	assert.False(t, ok)

	n, err = m.GetNextNonce(ctx, signerAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(20), n)
}

func TestNonceManager_RetrievalFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockNonceReader(ctrl)
	gomock.InOrder(
		reader.EXPECT().PendingNonceAt(gomock.Any(), signerAddress).Return(uint64(0), errors.New("rpc unavailable")),
		reader.EXPECT().PendingNonceAt(gomock.Any(), signerAddress).Return(uint64(3), nil),
	)

	m := services.NewNonceManager(reader)

	_, err := m.GetNextNonce(context.Background(), signerAddress)
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNonceRetrieval)
	assert.Contains(t, err.Error(), "rpc unavailable")

	_, ok := m.CurrentNonce(signerAddress)
	assert.False(t, ok, "failed initialization must not allocate")

	n, err := m.GetNextNonce(context.Background(), signerAddress)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), n)
}
