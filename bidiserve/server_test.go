package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func post(t *testing.T, s *Server, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func get(s *Server, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bidishape")
	defer teardown()
	//
	s := NewServer(DefaultConfig())
	tests := []struct {
		path, body string
		want       TextResponse
	}{
		{
			"/v1/reshapeArabicText", `{"units":[1576,1576]}`,
			TextResponse{"reshapeArabicText", "\uFE91\uFE90", []uint16{0xFE91, 0xFE90}, 2},
		},
		{
			"/v1/reorderReshapeBidiText", `{"text":"abc אב"}`,
			TextResponse{"reorderReshapeBidiText", "abc בא", []uint16{'a', 'b', 'c', ' ', 0x05D1, 0x05D0}, 6},
		},
		{
			"/v1/reorderReshapeBidiText", `{"text":""}`,
			TextResponse{"reorderReshapeBidiText", "", []uint16{}, 0},
		},
	}
	for _, tt := range tests {
		w := post(t, s, tt.path, tt.body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var got TextResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, tt.want, got)
	}
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("reshapeArabicText", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("reorderReshapeBidiText", "ok")))
}

func TestBadRequests(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxUnits = 2
	s := NewServer(cfg)
	w := post(t, s, "/v1/reshapeArabicText", `{"units":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = post(t, s, "/v1/reshapeArabicText", `{"text":"abc"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	w = post(t, s, "/v1/shapeArabic", `{"text":"a"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.requests.WithLabelValues("reshapeArabicText", "too_large")))
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rate, cfg.Burst = 0.001, 1
	s := NewServer(cfg)
	w := post(t, s, "/v1/reshapeArabicText", `{"text":"a"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = post(t, s, "/v1/reshapeArabicText", `{"text":"a"}`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.limited))
	assert.Equal(t, http.StatusOK, get(s, "/healthz").Code, "health checks are not limited")
}

func TestListAndMetrics(t *testing.T) {
	s := NewServer(DefaultConfig())
	w := get(s, "/v1/operations")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"operations":["reorderReshapeBidiText","reshapeArabicText"]}`, w.Body.String())
	post(t, s, "/v1/reshapeArabicText", `{"text":"a"}`)
	w = get(s, "/metrics")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `bidishape_requests_total{operation="reshapeArabicText",result="ok"} 1`)
	assert.Contains(t, w.Body.String(), "bidishape_operation_seconds_bucket")
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	cfg := DefaultConfig()
	cfg.Burst = 0
	assert.Error(t, cfg.Validate())
	cfg = DefaultConfig()
	cfg.TraceLevel = "Verbose"
	assert.Error(t, cfg.Validate())
	cfg = DefaultConfig()
	cfg.Addr = ""
	assert.Error(t, cfg.Validate())
	cfg = DefaultConfig()
	cfg.LimiterTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestSetTraceLevel(t *testing.T) {
	tr := gotestingadapter.GetAdapter(t)()
	cfg := DefaultConfig()
	cfg.TraceLevel = "Debug"
	cfg.setTraceLevel(tr)
	assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel())
	cfg.TraceLevel = "Verbose"
	cfg.setTraceLevel(tr)
	assert.Equal(t, tracing.LevelDebug, tr.GetTraceLevel(), "unknown level leaves tracer unchanged")
}

func TestLimiterPerClient(t *testing.T) {
	cl := newClientLimiter(1, 1, time.Minute, 16)
	a := cl.get("10.0.0.1")
	assert.Same(t, a, cl.get("10.0.0.1"))
	assert.NotSame(t, a, cl.get("10.0.0.2"))
}

func TestLimiterExpiry(t *testing.T) {
	cl := newClientLimiter(0.001, 1, 20*time.Millisecond, 16)
	first := cl.get("10.0.0.1")
	require.True(t, first.Allow())
	require.False(t, first.Allow())
	assert.Eventually(t, func() bool {
		_, ok := cl.limiters.GetIfPresent("10.0.0.1")
		return !ok
	}, 2*time.Second, 10*time.Millisecond, "idle limiter must be evicted")
	again := cl.get("10.0.0.1")
	assert.NotSame(t, first, again)
	assert.True(t, again.Allow(), "evicted client starts with a full bucket")
}
