package obs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsRequestIDAndError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	var ctx context.Context
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotNil(t, ctx)

	err := errors.New("boom")
	Time(ctx, "unit.op")(&err)

	var ok error
	Time(context.Background(), "unit.ok")(&ok)

	entries := logs.All()
	require.Len(t, entries, 2)

	failed := entries[0].ContextMap()
	assert.Equal(t, "unit.op", failed["op"])
	assert.Equal(t, "boom", failed["error"])
	assert.NotEmpty(t, failed["req_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	assert.Equal(t, "unit.ok", entries[1].ContextMap()["op"])
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("loud")
	require.Error(t, err)
}
