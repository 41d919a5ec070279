package repositories

import (
	"context"
	"planet-positions-service/internal/platform/db"
	"planet-positions-service/internal/ports"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(t *testing.T) *SqliteCalculationLog {
	t.Helper()

	conn, err := db.OpenSqlite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSqliteSchema(context.Background(), conn))
	// Schema init must be idempotent.
	require.NoError(t, InitSqliteSchema(context.Background(), conn))

	return NewSqliteCalculationLog(conn)
}

func TestSqliteCalculationLogRecent(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()

	msk := time.FixedZone("moscow", 3*3600)
	base := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

	for i, city := range []string{"moscow", "ivanovo", "lipetsk"} {
		err := log.Record(ctx, ports.CalculationEntry{
			ID:           city + "-id",
			City:         city,
			LocalTime:    base.In(msk),
			UTCTime:      base,
			JulianDay:    2460389.875,
			SunLongitude: 0.2525,
			CreatedAt:    base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	got, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "lipetsk", got[0].City)
	assert.Equal(t, "ivanovo", got[1].City)
	assert.True(t, got[0].UTCTime.Equal(base))
	assert.True(t, got[0].LocalTime.Equal(base))
	_, offset := got[0].LocalTime.Zone()
	assert.Equal(t, 3*3600, offset)
	assert.InDelta(t, 2460389.875, got[0].JulianDay, 1e-9)
}

func TestSqliteCalculationLogRejectsDuplicateID(t *testing.T) {
	log := newTestLog(t)
	ctx := context.Background()
	e := ports.CalculationEntry{ID: "same", City: "moscow", CreatedAt: time.Now()}

	require.NoError(t, log.Record(ctx, e))
	assert.Error(t, log.Record(ctx, e))
}

func TestSqliteCalculationLogEmptyAndNil(t *testing.T) {
	log := newTestLog(t)

	got, err := log.Recent(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	var nilLog SqliteCalculationLog
	_, err = nilLog.Recent(context.Background(), 5)
	assert.Error(t, err)
	assert.Error(t, nilLog.Record(context.Background(), ports.CalculationEntry{ID: "x"}))
}
