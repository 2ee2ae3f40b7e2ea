package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type fakeFleet bool

func (f fakeFleet) HasFleet() bool { return bool(f) }

func ready(t *testing.T, h *Handler) (int, Status) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.HandleReady(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	var status Status
	if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	return rec.Code, status
}

func TestLive(t *testing.T) {
	h := NewHandler(fakeFleet(false))
	rec := httptest.NewRecorder()
	h.HandleLive(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadiness(t *testing.T) {
	tests := []struct {
		name     string
		fleet    FleetChecker
		grace    time.Duration
		wantCode int
		wantNote string
	}{
		{"no fleet", fakeFleet(false), 0, http.StatusServiceUnavailable, "empty"},
		{"nil fleet", nil, 0, http.StatusServiceUnavailable, "empty"},
		{"starting up", fakeFleet(true), time.Hour, http.StatusServiceUnavailable, "generated"},
		{"ready", fakeFleet(true), 0, http.StatusOK, "generated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(tt.fleet)
			h.SetStartupGrace(tt.grace)

			code, status := ready(t, h)
			if code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, code)
			}
			if status.Checks["fleet"] != tt.wantNote {
				t.Fatalf("expected fleet check %q, got %q", tt.wantNote, status.Checks["fleet"])
			}
		})
	}
}

func TestOPCUADoesNotBlockReadiness(t *testing.T) {
	h := NewHandler(fakeFleet(true))
	h.SetStartupGrace(0)
	h.SetOPCUAEnabled(true)

	code, status := ready(t, h)
	if code != http.StatusOK || status.Checks["opcua_server"] != "not_ready" {
		t.Fatalf("expected ready with OPC UA not_ready, got %d %v", code, status.Checks)
	}

	h.SetOPCUAReady(true)
	if _, status := ready(t, h); status.Checks["opcua_server"] != "healthy" {
		t.Fatalf("expected healthy OPC UA, got %v", status.Checks)
	}
}
