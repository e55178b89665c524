package db

//go:generate mockgen -source=querier.go -destination=../mocks/mock_querier.go -package=mocks

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// GetDBTX returns the underlying database transaction or connection interface
func (q *Queries) GetDBTX() DBTX {
	return q.db
}

// IsTerminal reports whether no further lifecycle transition may occur.
func (s CircleStatus) IsTerminal() bool {
	return s == CircleStatusCompleted
}

// CountsTowardLimit reports whether the request blocks another claim inside the window. A
// failed request counts once any of its transactions was broadcast.
func (r DisbursementRequest) CountsTowardLimit(now time.Time, window time.Duration) bool {
	if !r.RequestedAt.Valid {
		return false
	}
	if r.Status == DisbursementStatusFailed && len(r.TransactionIds) == 0 {
		return false
	}
	return now.Sub(r.RequestedAt.Time) < window
}

// Timestamptz wraps t as a valid pgtype.Timestamptz.
func Timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
