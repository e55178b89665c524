package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountsTowardLimit(t *testing.T) {
	now := time.Now()
	window := 24 * time.Hour

	tests := []struct {
		name     string
		req      DisbursementRequest
		expected bool
	}{
		{"recent success", DisbursementRequest{Status: DisbursementStatusSuccess, RequestedAt: Timestamptz(now.Add(-time.Hour))}, true},
		{"recent pending", DisbursementRequest{Status: DisbursementStatusPending, RequestedAt: Timestamptz(now.Add(-time.Minute))}, true},
		{"recent failure", DisbursementRequest{Status: DisbursementStatusFailed, RequestedAt: Timestamptz(now.Add(-time.Minute))}, false},
		{"recent failure with empty ids", DisbursementRequest{Status: DisbursementStatusFailed, RequestedAt: Timestamptz(now.Add(-time.Minute)), TransactionIds: []string{}}, false},
		{"recent failure after gas drip", DisbursementRequest{Status: DisbursementStatusFailed, RequestedAt: Timestamptz(now.Add(-time.Minute)), TransactionIds: []string{"0xgas"}}, true},
		{"old failure after gas drip", DisbursementRequest{Status: DisbursementStatusFailed, RequestedAt: Timestamptz(now.Add(-25 * time.Hour)), TransactionIds: []string{"0xgas"}}, false},
		{"old success", DisbursementRequest{Status: DisbursementStatusSuccess, RequestedAt: Timestamptz(now.Add(-25 * time.Hour))}, false},
		{"missing timestamp", DisbursementRequest{Status: DisbursementStatusSuccess}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.req.CountsTowardLimit(now, window))
		})
	}
}

func TestUpMigrations(t *testing.T) {
	schema, err := UpMigrations()
	require.NoError(t, err)
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS circles")
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS disbursement_requests")
}

func TestCircleStatusScan(t *testing.T) {
	var s CircleStatus
	require.NoError(t, s.Scan([]byte("active")))
	assert.Equal(t, CircleStatusActive, s)
	assert.False(t, s.IsTerminal())

	require.NoError(t, s.Scan("completed"))
	assert.True(t, s.IsTerminal())

	assert.Error(t, s.Scan(42))
}
