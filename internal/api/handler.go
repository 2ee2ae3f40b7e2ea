package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/analytics"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/config"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/core"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/depot"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/simulator"
)

// FleetSource is the fleet pipeline the API reads from
type FleetSource interface {
	Generate(ctx context.Context) (simulator.FleetSnapshot, error)
	Snapshot() (simulator.FleetSnapshot, error)
	Train(number string) (simulator.FleetTrain, error)
	Runs() int
	Layout() depot.Layout
}

// Handler handles REST API requests for the simulator
type Handler struct {
	simulatorName string
	fleet         FleetSource
	runtime       *config.RuntimeConfig
}

// NewHandler creates an API handler
func NewHandler(name string, fleet FleetSource, rc *config.RuntimeConfig) *Handler {
	return &Handler{
		simulatorName: name,
		fleet:         fleet,
		runtime:       rc,
	}
}

// RegisterRoutes registers all API routes and the embedded UI on mux
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/status", h.HandleStatus)
	mux.HandleFunc("/api/trains", h.HandleTrains)
	mux.HandleFunc("/api/trains/", h.HandleTrainDetail)
	mux.HandleFunc("/api/assignments", h.HandleAssignments)
	mux.HandleFunc("/api/analytics/", h.HandleAnalytics)
	mux.HandleFunc("/api/nodes", h.HandleNodes)
	mux.HandleFunc("/api/generate", h.HandleGenerate)
	mux.HandleFunc("/api/config", h.HandleConfig)
	mux.Handle("/", GetUIFileServer())
}

// snapshot returns the current fleet, or an empty snapshot before the first run
func (h *Handler) snapshot() (simulator.FleetSnapshot, bool) {
	snap, err := h.fleet.Snapshot()
	if errors.Is(err, simulator.ErrNoFleet) {
		return simulator.FleetSnapshot{
			Trains:      []core.Train{},
			Assignments: []core.BayAssignment{},
			Unassigned:  []core.Train{},
		}, false
	}
	return snap, true
}

func (h *Handler) status(snap simulator.FleetSnapshot, hasFleet bool) StatusResponse {
	service, bay := snap.Counts()
	resp := StatusResponse{
		SimulatorName: h.simulatorName,
		HasFleet:      hasFleet,
		FleetID:       snap.ID,
		Runs:          h.fleet.Runs(),
		TrainCount:    len(snap.Trains),
		Service:       service,
		Bay:           bay,
		AssignedBays:  len(snap.Assignments),
		Unassigned:    len(snap.Unassigned),
		BayCapacity:   h.fleet.Layout().Capacity(),
		Risk:          analytics.DistributeRisk(snap.Trains),
		Averages:      analytics.AverageScores(snap.Trains),
	}
	if hasFleet {
		generatedAt := snap.GeneratedAt
		resp.GeneratedAt = &generatedAt
	}
	return resp
}

// HandleStatus handles GET /api/status
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, hasFleet := h.snapshot()
	h.writeJSON(w, h.status(snap, hasFleet))
}

// HandleTrains handles GET /api/trains
func (h *Handler) HandleTrains(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, _ := h.snapshot()
	h.writeJSON(w, TrainListResponse{Trains: snap.Trains})
}

// HandleTrainDetail handles GET /api/trains/{number}
func (h *Handler) HandleTrainDetail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	number := strings.TrimPrefix(r.URL.Path, "/api/trains/")
	if number == "" || strings.Contains(number, "/") {
		http.Error(w, "Train number required", http.StatusBadRequest)
		return
	}

	train, err := h.fleet.Train(number)
	switch {
	case errors.Is(err, simulator.ErrNoFleet), errors.Is(err, simulator.ErrTrainNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, train)
}

// HandleAssignments handles GET /api/assignments
func (h *Handler) HandleAssignments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, _ := h.snapshot()
	layout := h.fleet.Layout()
	h.writeJSON(w, AssignmentListResponse{
		Capacity:    layout.Capacity(),
		Exit:        layout.Exit,
		Assignments: snap.Assignments,
		Unassigned:  snap.Unassigned,
	})
}

// HandleAnalytics handles GET /api/analytics/{view}
func (h *Handler) HandleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, _ := h.snapshot()
	trains := snap.Trains

	view := strings.TrimPrefix(r.URL.Path, "/api/analytics/")
	switch view {
	case "risk":
		h.writeJSON(w, RiskAnalyticsResponse{
			Distribution: analytics.DistributeRisk(trains),
			Averages:     analytics.AverageScores(trains),
			Ranking:      analytics.RankByRisk(trains),
		})
	case "mcda":
		h.writeJSON(w, MCDAAnalyticsResponse{
			Averages: analytics.AverageScores(trains),
			Ranking:  analytics.RankByMCDA(trains),
		})
	case "passenger-load":
		ranked := analytics.RankByLoad(trains)
		entries := make([]LoadEntry, 0, len(ranked))
		for _, t := range ranked {
			entries = append(entries, LoadEntry{
				TrainNumber:     t.TrainNumber,
				TrainName:       t.TrainName,
				DailyCrowdCount: t.DailyCrowdCount,
				Category:        analytics.CategorizeLoad(t.DailyCrowdCount),
				TrainStatus:     t.TrainStatus,
			})
		}
		h.writeJSON(w, PassengerLoadResponse{
			Summary: analytics.SummarizePassengerLoad(trains),
			Ranking: entries,
		})
	case "induction":
		h.writeJSON(w, analytics.PlanInduction(trains, analytics.InductionSlots))
	case "branding":
		h.writeJSON(w, analytics.ReportBranding(trains))
	case "service-bay":
		h.writeJSON(w, analytics.SummarizeServiceBay(trains, snap.Assignments))
	default:
		http.Error(w, fmt.Sprintf("Unknown analytics view %q", view), http.StatusNotFound)
	}
}

// HandleNodes handles GET /api/nodes and lists the OPC UA nodes with the
// values the current fleet publishes
func (h *Handler) HandleNodes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, _ := h.snapshot()
	layout := h.fleet.Layout()

	resp := []NamespaceInfo{
		describeNamespace(core.NamespaceFleet, "Fleet", simulator.FleetNodes(), simulator.FleetValues(snap)),
		describeNamespace(core.NamespaceDepot, "Depot", simulator.DepotNodes(layout), simulator.DepotValues(snap, layout)),
	}
	h.writeJSON(w, resp)
}

func describeNamespace(ns uint16, folder string, defs []core.NodeDefinition, values map[string]interface{}) NamespaceInfo {
	info := NamespaceInfo{
		Namespace: ns,
		Folder:    folder,
		Nodes:     make([]NodeInfo, 0, len(defs)),
	}
	for _, def := range defs {
		info.Nodes = append(info.Nodes, NodeInfo{
			Name:        def.Name,
			NodeID:      fmt.Sprintf("ns=%d;s=%s.%s", ns, folder, def.Name),
			DataType:    def.DataType.String(),
			Unit:        def.Unit,
			Description: def.Description,
			Value:       values[def.Name],
		})
	}
	return info
}

// HandleGenerate handles POST /api/generate
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		h.writeCORSPreflight(w)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, err := h.fleet.Generate(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			http.Error(w, "Generation cancelled", http.StatusServiceUnavailable)
			return
		}
		log.Error().Err(err).Msg("Fleet generation failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, h.status(snap, true))
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeCORSPreflight(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.WriteHeader(http.StatusOK)
}

// HandleConfig handles GET and POST /api/config
func (h *Handler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodOptions:
		h.writeCORSPreflight(w)
	case http.MethodGet:
		h.writeJSON(w, h.configResponse())
	case http.MethodPost:
		h.handleConfigUpdate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) configResponse() ConfigResponse {
	snapshot := h.runtime.Snapshot()
	return ConfigResponse{
		FleetSize:     snapshot.FleetSize,
		GenerateDelay: snapshot.GenerateDelay.String(),
	}
}

func (h *Handler) handleConfigUpdate(w http.ResponseWriter, r *http.Request) {
	var req ConfigUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Parse everything before applying so a bad request changes nothing
	var delay time.Duration
	if req.GenerateDelay != nil {
		d, err := time.ParseDuration(*req.GenerateDelay)
		if err != nil {
			http.Error(w, "Invalid generateDelay: "+err.Error(), http.StatusBadRequest)
			return
		}
		if d < 0 || d > config.MaxGenerateDelay {
			http.Error(w, fmt.Sprintf("generate delay must be between 0 and %s, got %s", config.MaxGenerateDelay, d), http.StatusBadRequest)
			return
		}
		delay = d
	}

	if req.FleetSize != nil {
		if err := h.runtime.SetFleetSize(*req.FleetSize); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	if req.GenerateDelay != nil {
		if err := h.runtime.SetGenerateDelay(delay); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	log.Info().
		Int("fleetSize", h.runtime.GetFleetSize()).
		Dur("generateDelay", h.runtime.GetGenerateDelay()).
		Msg("Runtime configuration updated")

	h.writeJSON(w, h.configResponse())
}
