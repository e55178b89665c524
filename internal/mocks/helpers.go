package mocks

import (
	"testing"

	"go.uber.org/mock/gomock"
)

// NewMockQuerierForTest creates a new mock Querier for testing
func NewMockQuerierForTest(t *testing.T) *MockQuerier {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockQuerier(ctrl)
}

// NewMockChainReaderForTest creates a new mock ChainReader for testing
func NewMockChainReaderForTest(t *testing.T) *MockChainReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockChainReader(ctrl)
}

// NewMockCircleSyncServiceForTest creates a new mock CircleSyncService for testing
func NewMockCircleSyncServiceForTest(t *testing.T) *MockCircleSyncService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockCircleSyncService(ctrl)
}

// NewMockFaucetServiceForTest creates a new mock FaucetService for testing
func NewMockFaucetServiceForTest(t *testing.T) *MockFaucetService {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockFaucetService(ctrl)
}

// NewMockNonceReaderForTest creates a new mock NonceReader for testing
func NewMockNonceReaderForTest(t *testing.T) *MockNonceReader {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return NewMockNonceReader(ctrl)
}
