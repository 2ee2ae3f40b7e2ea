package health

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// DefaultStartupGrace is how long the service reports not ready after start
const DefaultStartupGrace = 5 * time.Second

// Status represents the health status response
type Status struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// FleetChecker reports whether a fleet has been generated
type FleetChecker interface {
	HasFleet() bool
}

// Handler handles health check endpoints
type Handler struct {
	mu           sync.RWMutex
	fleet        FleetChecker
	opcuaEnabled bool
	opcuaReady   bool
	startTime    time.Time
	startupGrace time.Duration
}

// NewHandler creates a new health handler
func NewHandler(fleet FleetChecker) *Handler {
	return &Handler{
		fleet:        fleet,
		startTime:    time.Now(),
		startupGrace: DefaultStartupGrace,
	}
}

// SetStartupGrace overrides the startup grace period
func (h *Handler) SetStartupGrace(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.startupGrace = d
}

// SetOPCUAEnabled marks the OPC UA server as part of the readiness checks
func (h *Handler) SetOPCUAEnabled(enabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opcuaEnabled = enabled
}

// SetOPCUAReady sets the OPC UA server readiness status
func (h *Handler) SetOPCUAReady(ready bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opcuaReady = ready
}

// HandleLive handles the liveness probe
// Returns 200 if the application is running
func (h *Handler) HandleLive(w http.ResponseWriter, r *http.Request) {
	status := Status{
		Status:    "alive",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// HandleReady handles the readiness probe
// Returns 200 once a fleet exists and the startup grace period has passed
func (h *Handler) HandleReady(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	opcuaEnabled, opcuaReady := h.opcuaEnabled, h.opcuaReady
	grace := h.startupGrace
	h.mu.RUnlock()

	checks := make(map[string]string)
	allHealthy := true

	if h.fleet != nil && h.fleet.HasFleet() {
		checks["fleet"] = "generated"
	} else {
		checks["fleet"] = "empty"
		allHealthy = false
	}

	// OPC UA is optional; a failed server does not block HTTP traffic
	switch {
	case !opcuaEnabled:
		checks["opcua_server"] = "disabled"
	case opcuaReady:
		checks["opcua_server"] = "healthy"
	default:
		checks["opcua_server"] = "not_ready"
	}

	if time.Since(h.startTime) >= grace {
		checks["startup"] = "complete"
	} else {
		checks["startup"] = "in_progress"
		allHealthy = false
	}

	status := Status{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
	}

	w.Header().Set("Content-Type", "application/json")

	if allHealthy {
		status.Status = "ready"
		w.WriteHeader(http.StatusOK)
	} else {
		status.Status = "not_ready"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	json.NewEncoder(w).Encode(status)
}

// HandleHealth handles the combined health endpoint (for Docker HEALTHCHECK)
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.HandleReady(w, r)
}
