// SPDX-License-Identifier: MIT

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/posecare/statusd/internal/api"
	"github.com/posecare/statusd/internal/config"
	"github.com/posecare/statusd/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()
	cfg := config.Defaults()
	cfg.RateLimitEnabled = false
	if mutate != nil {
		mutate(&cfg)
	}
	holder := config.NewHolder(cfg, config.NewLoader("", "test"), "")

	healthManager := health.NewManager("test")
	healthManager.Register(health.CatalogChecker{})

	return api.New(holder, healthManager).Router()
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestInterpretCompletedStatus(t *testing.T) {
	handler := newTestServer(t, nil)

	rec := postJSON(t, handler, "/api/v1/interpret", map[string]string{
		"analysis_status": "llm_completed",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)

	assert.Equal(t, "analysis_completed", out["status"])
	assert.Equal(t, "llm_completed", out["legacy_status"])

	display := out["display"].(map[string]any)
	assert.Equal(t, float64(100), display["progress_percent"])
	assert.Equal(t, "success", display["variant"])

	nav := out["navigation"].(map[string]any)
	assert.Equal(t, "prescription-history", nav["target"])
	assert.Equal(t, float64(2000), nav["delay_ms"])

	notif := out["notification"].(map[string]any)
	assert.Equal(t, "success", notif["type"])
}

func TestInterpretLLMFailureKeepsPoseCredit(t *testing.T) {
	handler := newTestServer(t, nil)

	rec := postJSON(t, handler, "/api/v1/interpret", map[string]string{
		"analysis_status": "llm_failed",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)

	assert.Equal(t, "llm_analysis_failed", out["status"])

	display := out["display"].(map[string]any)
	assert.Equal(t, float64(50), display["progress_percent"])
	assert.Equal(t, "error", display["variant"])
	assert.Equal(t, true, display["show_retry"])

	start := out["start"].(map[string]any)
	assert.Equal(t, "처방 생성 재시작", start["button_text"])
	assert.Equal(t, "pose_completed", start["restart_from"])

	nav := out["navigation"].(map[string]any)
	assert.Equal(t, "prescription-history", nav["target"])
	assert.Equal(t, float64(3000), nav["delay_ms"])
}

func TestInterpretInProgressOmitsNavigationAndNotification(t *testing.T) {
	handler := newTestServer(t, nil)

	rec := postJSON(t, handler, "/api/v1/interpret", map[string]string{
		"analysis_status": "pose_analyzing",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)

	assert.NotContains(t, out, "navigation")
	assert.NotContains(t, out, "notification")
}

func TestInterpretUnknownStatusDefaultsToPending(t *testing.T) {
	handler := newTestServer(t, nil)

	rec := postJSON(t, handler, "/api/v1/interpret", map[string]string{
		"analysis_status": "totally_bogus_value",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, "pending", out["status"])
}

func TestInterpretAppliesMessageOverrides(t *testing.T) {
	handler := newTestServer(t, func(cfg *config.Config) {
		cfg.Messages = map[string]string{"analysis_completed": "맞춤 완료 문구"}
	})

	rec := postJSON(t, handler, "/api/v1/interpret", map[string]string{
		"analysis_status": "analysis_completed",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	display := out["display"].(map[string]any)
	assert.Equal(t, "맞춤 완료 문구", display["text"])
}

func TestInterpretRejectsMalformedBody(t *testing.T) {
	handler := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/interpret", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidateEndpoint(t *testing.T) {
	handler := newTestServer(t, nil)

	rec := postJSON(t, handler, "/api/v1/validate", map[string]string{"status": "totally_bogus_value"})

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	assert.Equal(t, false, out["is_valid"])
	assert.Equal(t, "pending", out["unified"])
	assert.NotEmpty(t, out["warnings"])
}

func TestStatusesEndpoint(t *testing.T) {
	handler := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statuses", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	out := decodeResponse(t, rec)
	rows := out["statuses"].([]any)
	assert.Len(t, rows, 12)

	first := rows[0].(map[string]any)
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, float64(5), first["progress_percent"])
}

func TestProbeEndpoints(t *testing.T) {
	handler := newTestServer(t, nil)

	for _, path := range []string{"/healthz", "/readyz"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRequestIDEchoed(t *testing.T) {
	handler := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/statuses", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "req-123", rec.Header().Get("X-Request-ID"))
}

func TestRateLimitReturns429(t *testing.T) {
	handler := newTestServer(t, func(cfg *config.Config) {
		cfg.RateLimitEnabled = true
		cfg.RateLimitRPM = 2
	})

	var last int
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/statuses", nil)
		req.RemoteAddr = "10.1.2.3:4567"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
