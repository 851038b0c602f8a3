package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outdoorcast/internal/types"
)

func noSleep(time.Duration) {}

func newTestClient(t *testing.T) *BaseClient {
	t.Helper()
	return NewBaseClient(
		&http.Client{Timeout: 5 * time.Second},
		"test-"+t.Name(),
		DefaultRetryPolicy(),
		"outdoorcast-test/1.0",
		WithSleepFunc(noSleep),
	)
}

func TestGetJSON_DecodesPlainResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "outdoorcast-test/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"value": 42}`))
	}))
	defer srv.Close()

	var payload struct {
		Value int `json:"value"`
	}
	err := newTestClient(t).GetJSON(context.Background(), srv.URL, &payload)

	require.NoError(t, err)
	assert.Equal(t, 42, payload.Value)
}

func TestGetJSON_DecodesGzipResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "gzip", r.Header.Get("Accept-Encoding"))
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Set("Content-Type", "application/json")
		gz := gzip.NewWriter(w)
		gz.Write([]byte(`{"value": 7}`))
		gz.Close()
	}))
	defer srv.Close()

	var payload struct {
		Value int `json:"value"`
	}
	err := newTestClient(t).GetJSON(context.Background(), srv.URL, &payload)

	require.NoError(t, err)
	assert.Equal(t, 7, payload.Value)
}

func TestGetJSON_MapsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestClient(t).GetJSON(context.Background(), srv.URL, &struct{}{})

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamUnavailable, appErr.Code)
}

func TestDo_RetriesServerErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	err := newTestClient(t).GetJSON(context.Background(), srv.URL, &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
}

func TestDo_DoesNotRetryClientErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	err := newTestClient(t).GetJSON(context.Background(), srv.URL, &struct{}{})

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestDo_ExhaustedRetriesMapToUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := newTestClient(t).GetJSON(context.Background(), srv.URL, &struct{}{})

	var appErr *types.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, types.ErrCodeUpstreamUnavailable, appErr.Code)
}

func TestDo_PropagatesRequestID(t *testing.T) {
	var gotID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx := types.WithRequestID(context.Background(), "req-123")
	err := newTestClient(t).GetJSON(ctx, srv.URL, &struct{}{})

	require.NoError(t, err)
	assert.Equal(t, "req-123", gotID)
}

func TestComputeBackoff_RespectsRetryAfterSeconds(t *testing.T) {
	c := newTestClient(t)
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"2"}}}

	assert.Equal(t, 2*time.Second, c.computeBackoff(0, resp))
}

func TestComputeBackoff_ClampsToMaxWait(t *testing.T) {
	c := newTestClient(t)
	resp := &http.Response{Header: http.Header{"Retry-After": []string{"3600"}}}

	assert.Equal(t, c.retryPolicy.MaxWait, c.computeBackoff(0, resp))
}
