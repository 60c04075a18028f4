// SPDX-License-Identifier: MIT

package health_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/posecare/statusd/internal/health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	name   string
	result health.CheckResult
}

func (s stubChecker) Name() string { return s.name }

func (s stubChecker) Check(context.Context) health.CheckResult { return s.result }

func TestHealthAlwaysHealthy(t *testing.T) {
	m := health.NewManager("v1")
	m.Register(stubChecker{name: "broken", result: health.CheckResult{Status: health.StatusUnhealthy}})

	resp := m.Health(context.Background())
	assert.Equal(t, health.StatusHealthy, resp.Status)
	assert.Equal(t, "v1", resp.Version)
}

func TestReadyAggregatesCheckers(t *testing.T) {
	tests := []struct {
		name      string
		results   []health.Status
		want      health.Status
		wantReady bool
	}{
		{"all healthy", []health.Status{health.StatusHealthy, health.StatusHealthy}, health.StatusHealthy, true},
		{"one degraded", []health.Status{health.StatusHealthy, health.StatusDegraded}, health.StatusDegraded, true},
		{"one unhealthy", []health.Status{health.StatusDegraded, health.StatusUnhealthy}, health.StatusUnhealthy, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := health.NewManager("v1")
			for i, st := range tt.results {
				m.Register(stubChecker{name: string(rune('a' + i)), result: health.CheckResult{Status: st}})
			}
			resp := m.Ready(context.Background())
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, tt.wantReady, resp.Ready)
		})
	}
}

func TestServeReadyStatusCodes(t *testing.T) {
	m := health.NewManager("v1")
	m.Register(stubChecker{name: "down", result: health.CheckResult{Status: health.StatusUnhealthy}})

	rec := httptest.NewRecorder()
	m.ServeReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	ok := health.NewManager("v1")
	rec = httptest.NewRecorder()
	ok.ServeReady(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogCheckerHealthy(t *testing.T) {
	result := health.CatalogChecker{}.Check(context.Background())
	require.Equal(t, health.StatusHealthy, result.Status)
}
