package services

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/cyphera/cyphera-circles/internal/client/chain"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/cyphera/cyphera-circles/internal/metrics"
	"github.com/cyphera/cyphera-circles/internal/mocks"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var syncNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func deployedCircle(status db.CircleStatus, onChainID int64) db.Circle {
	return db.Circle{
		ID:        uuid.New(),
		Name:      "Weekly Savers",
		OnChainID: pgtype.Int8{Int64: onChainID, Valid: true},
		Status:    status,
	}
}

func circleInfo(status uint8, round int64) *chain.CircleInfo {
	return &chain.CircleInfo{
		Name:         "Weekly Savers",
		Creator:      "0x4444444444444444444444444444444444444444",
		CurrentRound: big.NewInt(round),
		Status:       status,
	}
}

func newTestSyncService(t *testing.T) (*CircleSyncService, *mocks.MockQuerier, *mocks.MockChainReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	q := mocks.NewMockQuerier(ctrl)
	reader := mocks.NewMockChainReader(ctrl)
	svc := NewCircleSyncService(q, reader, 2)
	svc.now = func() time.Time { return syncNow }
	return svc, q, reader
}

func TestSyncCircle_UndeployedIsNoop(t *testing.T) {
	svc, q, reader := newTestSyncService(t)

	circle := db.Circle{ID: uuid.New(), Status: db.CircleStatusForming}
	q.EXPECT().GetCircle(gomock.Any(), circle.ID).Return(circle, nil)
	reader.EXPECT().GetCircleInfo(gomock.Any(), gomock.Any()).Times(0)
	q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).Times(0)

	synced, err := svc.SyncCircle(context.Background(), circle.ID)
	require.NoError(t, err)
	assert.False(t, synced)
}

func TestSyncCircle_AbsentOnChainWritesNothing(t *testing.T) {
	svc, q, reader := newTestSyncService(t)

	circle := deployedCircle(db.CircleStatusForming, 12)
	q.EXPECT().GetCircle(gomock.Any(), circle.ID).Return(circle, nil)
	reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(12)).Return(nil, false)
	q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).Times(0)

	synced, err := svc.SyncCircle(context.Background(), circle.ID)
	require.NoError(t, err)
	assert.False(t, synced)
}

func TestSyncCircle_NoReaderTouchesNothing(t *testing.T) {
	q := mocks.NewMockQuerierForTest(t)
	svc := NewCircleSyncService(q, nil, 2)

	synced, err := svc.SyncCircle(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, synced)
}

func TestSyncCircle_Lifecycle(t *testing.T) {
	earlier := syncNow.Add(-72 * time.Hour)

	tests := []struct {
		name            string
		circle          func() db.Circle
		info            *chain.CircleInfo
		wantStatus      db.CircleStatus
		wantStartedAt   pgtype.Timestamptz
		wantCompletedAt pgtype.Timestamptz
		wantRound       int32
	}{
		{
			name:       "forming holds on code 0",
			circle:     func() db.Circle { return deployedCircle(db.CircleStatusForming, 1) },
			info:       circleInfo(0, 0),
			wantStatus: db.CircleStatusForming,
		},
		{
			name:          "forming becomes active on code 1",
			circle:        func() db.Circle { return deployedCircle(db.CircleStatusForming, 1) },
			info:          circleInfo(1, 1),
			wantStatus:    db.CircleStatusActive,
			wantStartedAt: db.Timestamptz(syncNow),
			wantRound:     1,
		},
		{
			name: "active keeps original started_at",
			circle: func() db.Circle {
				c := deployedCircle(db.CircleStatusActive, 1)
				c.StartedAt = db.Timestamptz(earlier)
				return c
			},
			info:          circleInfo(1, 3),
			wantStatus:    db.CircleStatusActive,
			wantStartedAt: db.Timestamptz(earlier),
			wantRound:     3,
		},
		{
			name: "active holds on code 2",
			circle: func() db.Circle {
				c := deployedCircle(db.CircleStatusActive, 1)
				c.StartedAt = db.Timestamptz(earlier)
				return c
			},
			info:          circleInfo(2, 2),
			wantStatus:    db.CircleStatusActive,
			wantStartedAt: db.Timestamptz(earlier),
			wantRound:     2,
		},
		{
			name: "active becomes completed on code 3",
			circle: func() db.Circle {
				c := deployedCircle(db.CircleStatusActive, 1)
				c.StartedAt = db.Timestamptz(earlier)
				c.OnChainRound = 4
				return c
			},
			info:            circleInfo(3, 5),
			wantStatus:      db.CircleStatusCompleted,
			wantStartedAt:   db.Timestamptz(earlier),
			wantCompletedAt: db.Timestamptz(syncNow),
			wantRound:       5,
		},
		{
			name: "completed never regresses",
			circle: func() db.Circle {
				c := deployedCircle(db.CircleStatusCompleted, 1)
				c.StartedAt = db.Timestamptz(earlier)
				c.CompletedAt = db.Timestamptz(earlier)
				return c
			},
			info:            circleInfo(1, 6),
			wantStatus:      db.CircleStatusCompleted,
			wantStartedAt:   db.Timestamptz(earlier),
			wantCompletedAt: db.Timestamptz(earlier),
			wantRound:       6,
		},
		{
			name: "active does not return to forming",
			circle: func() db.Circle {
				c := deployedCircle(db.CircleStatusActive, 1)
				c.StartedAt = db.Timestamptz(earlier)
				return c
			},
			info:          circleInfo(0, 2),
			wantStatus:    db.CircleStatusActive,
			wantStartedAt: db.Timestamptz(earlier),
			wantRound:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, q, reader := newTestSyncService(t)
			circle := tt.circle()

			q.EXPECT().GetCircle(gomock.Any(), circle.ID).Return(circle, nil)
			reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(1)).Return(tt.info, true)

			var written db.UpdateCircleSyncStateParams
			q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, arg db.UpdateCircleSyncStateParams) (db.Circle, error) {
					written = arg
					return db.Circle{}, nil
				})

			synced, err := svc.SyncCircle(context.Background(), circle.ID)
			require.NoError(t, err)
			assert.True(t, synced)

			assert.Equal(t, circle.ID, written.ID)
			assert.Equal(t, tt.wantStatus, written.Status)
			assert.Equal(t, tt.wantStartedAt, written.StartedAt)
			assert.Equal(t, tt.wantCompletedAt, written.CompletedAt)
			assert.Equal(t, tt.wantRound, written.OnChainRound)
			assert.Equal(t, pgtype.Int2{Int16: int16(tt.info.Status), Valid: true}, written.OnChainStatus)
			assert.Equal(t, db.Timestamptz(syncNow), written.LastSyncedAt)
		})
	}
}

func TestSyncCircle_UnknownStatusHoldsAndCounts(t *testing.T) {
	svc, q, reader := newTestSyncService(t)
	circle := deployedCircle(db.CircleStatusForming, 1)

	q.EXPECT().GetCircle(gomock.Any(), circle.ID).Return(circle, nil)
	reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(1)).Return(circleInfo(9, 0), true)

	var written db.UpdateCircleSyncStateParams
	q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateCircleSyncStateParams) (db.Circle, error) {
			written = arg
			return db.Circle{}, nil
		})

	before := promtestutil.ToFloat64(metrics.CircleSyncUnknownStatusTotal)

	synced, err := svc.SyncCircle(context.Background(), circle.ID)
	require.NoError(t, err)
	assert.True(t, synced)
	assert.Equal(t, db.CircleStatusForming, written.Status)
	assert.Equal(t, int16(9), written.OnChainStatus.Int16)
	assert.Equal(t, before+1, promtestutil.ToFloat64(metrics.CircleSyncUnknownStatusTotal))
}

func TestSyncCircle_Idempotent(t *testing.T) {
	svc, q, reader := newTestSyncService(t)

	row := deployedCircle(db.CircleStatusForming, 1)
	q.EXPECT().GetCircle(gomock.Any(), row.ID).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (db.Circle, error) { return row, nil }).
		Times(2)
	reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(1)).Return(circleInfo(1, 2), true).Times(2)
	q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateCircleSyncStateParams) (db.Circle, error) {
			row.Status = arg.Status
			row.OnChainRound = arg.OnChainRound
			row.OnChainStatus = arg.OnChainStatus
			row.StartedAt = arg.StartedAt
			row.CompletedAt = arg.CompletedAt
			row.LastSyncedAt = arg.LastSyncedAt
			return row, nil
		}).
		Times(2)

	_, err := svc.SyncCircle(context.Background(), row.ID)
	require.NoError(t, err)
	first := row

	svc.now = func() time.Time { return syncNow.Add(time.Minute) }
	_, err = svc.SyncCircle(context.Background(), row.ID)
	require.NoError(t, err)

	assert.Equal(t, first.Status, row.Status)
	assert.Equal(t, first.OnChainRound, row.OnChainRound)
	assert.Equal(t, first.OnChainStatus, row.OnChainStatus)
	assert.Equal(t, first.StartedAt, row.StartedAt)
	assert.Equal(t, first.CompletedAt, row.CompletedAt)
	assert.True(t, row.LastSyncedAt.Time.After(first.LastSyncedAt.Time))
}

func TestSyncCircle_StoreErrors(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		svc, q, _ := newTestSyncService(t)
		id := uuid.New()
		q.EXPECT().GetCircle(gomock.Any(), id).Return(db.Circle{}, pgx.ErrNoRows)

		synced, err := svc.SyncCircle(context.Background(), id)
		assert.False(t, synced)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})

	t.Run("write", func(t *testing.T) {
		svc, q, reader := newTestSyncService(t)
		circle := deployedCircle(db.CircleStatusForming, 1)
		q.EXPECT().GetCircle(gomock.Any(), circle.ID).Return(circle, nil)
		reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(1)).Return(circleInfo(1, 1), true)
		q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).Return(db.Circle{}, errors.New("connection lost"))

		synced, err := svc.SyncCircle(context.Background(), circle.ID)
		assert.False(t, synced)
		assert.Error(t, err)
	})
}

func TestSyncAllCircles(t *testing.T) {
	svc, q, reader := newTestSyncService(t)

	const total, absent = 6, 2
	circles := make([]db.Circle, 0, total)
	for i := 0; i < total; i++ {
		c := deployedCircle(db.CircleStatusForming, int64(i+1))
		circles = append(circles, c)
		q.EXPECT().GetCircle(gomock.Any(), c.ID).Return(c, nil)
		if i < absent {
			reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(i+1)).Return(nil, false)
		} else {
			reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(i+1)).Return(circleInfo(1, 1), true)
		}
	}
	q.EXPECT().ListSyncableCircles(gomock.Any()).Return(circles, nil)
	q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).Return(db.Circle{}, nil).Times(total - absent)

	results, err := svc.SyncAllCircles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, total, results.Total)
	assert.Equal(t, total-absent, results.Synced)
	assert.Equal(t, absent, results.Failed)
}

func TestSyncAllCircles_IsolatesStoreFailures(t *testing.T) {
	svc, q, reader := newTestSyncService(t)

	ok := deployedCircle(db.CircleStatusForming, 1)
	broken := deployedCircle(db.CircleStatusForming, 2)

	q.EXPECT().ListSyncableCircles(gomock.Any()).Return([]db.Circle{ok, broken}, nil)
	q.EXPECT().GetCircle(gomock.Any(), ok.ID).Return(ok, nil)
	q.EXPECT().GetCircle(gomock.Any(), broken.ID).Return(db.Circle{}, errors.New("timeout"))
	reader.EXPECT().GetCircleInfo(gomock.Any(), uint64(1)).Return(circleInfo(1, 1), true)
	q.EXPECT().UpdateCircleSyncState(gomock.Any(), gomock.Any()).Return(db.Circle{}, nil)

	results, err := svc.SyncAllCircles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, results.Total)
	assert.Equal(t, 1, results.Synced)
	assert.Equal(t, 1, results.Failed)
}

func TestSyncAllCircles_ListFailure(t *testing.T) {
	svc, q, _ := newTestSyncService(t)
	q.EXPECT().ListSyncableCircles(gomock.Any()).Return(nil, errors.New("db down"))

	results, err := svc.SyncAllCircles(context.Background())
	assert.Error(t, err)
	assert.Nil(t, results)
}

func TestSyncAllCircles_Empty(t *testing.T) {
	svc, q, _ := newTestSyncService(t)
	q.EXPECT().ListSyncableCircles(gomock.Any()).Return([]db.Circle{}, nil)

	results, err := svc.SyncAllCircles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, results.Total)
}
