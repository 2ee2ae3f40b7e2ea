package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sebastiankruger/depot-fleet-simulator/internal/analytics"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/config"
	"github.com/sebastiankruger/depot-fleet-simulator/internal/simulator"
)

var refNow = time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

func newTestServer(t *testing.T, generate bool) (*httptest.Server, *simulator.FleetSimulator, *config.RuntimeConfig) {
	t.Helper()

	rc := config.NewRuntimeConfig(&config.Config{FleetSize: 25})
	fs := simulator.NewFleetSimulator(rc, 42)
	fs.SetClock(func() time.Time { return refNow })
	if generate {
		if _, err := fs.Generate(context.Background()); err != nil {
			t.Fatal(err)
		}
	}

	mux := http.NewServeMux()
	NewHandler("Depot-Test", fs, rc).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, fs, rc
}

func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp.StatusCode
}

func TestEmptyFleetRendersEmptyCollections(t *testing.T) {
	srv, _, _ := newTestServer(t, false)

	var status StatusResponse
	if code := getJSON(t, srv.URL+"/api/status", &status); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if status.HasFleet || status.TrainCount != 0 || status.GeneratedAt != nil {
		t.Fatalf("expected empty status, got %+v", status)
	}

	paths := []string{
		"/api/trains",
		"/api/assignments",
		"/api/analytics/risk",
		"/api/analytics/mcda",
		"/api/analytics/passenger-load",
		"/api/analytics/induction",
		"/api/analytics/branding",
		"/api/analytics/service-bay",
		"/api/nodes",
	}
	for _, path := range paths {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatal(err)
		}
		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}

		if resp.StatusCode != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, resp.StatusCode)
			continue
		}
		if strings.Contains(string(raw), "null") {
			t.Errorf("%s: expected empty collections, got %s", path, raw)
		}
		if !json.Valid(raw) {
			t.Errorf("%s: invalid JSON %s", path, raw)
		}
	}

	if code := getJSON(t, srv.URL+"/api/trains/01", nil); code != http.StatusNotFound {
		t.Errorf("expected 404 for train detail without a fleet, got %d", code)
	}
}

func TestTrainsAndDetail(t *testing.T) {
	srv, fs, _ := newTestServer(t, true)
	snap, _ := fs.Snapshot()

	var list TrainListResponse
	if code := getJSON(t, srv.URL+"/api/trains", &list); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(list.Trains) != len(snap.Trains) {
		t.Fatalf("expected %d trains, got %d", len(snap.Trains), len(list.Trains))
	}

	var detail simulator.FleetTrain
	number := snap.Trains[0].TrainNumber
	if code := getJSON(t, srv.URL+"/api/trains/"+number, &detail); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if detail.TrainNumber != number || detail.RiskLevel == "" {
		t.Fatalf("unexpected detail %+v", detail)
	}

	if code := getJSON(t, srv.URL+"/api/trains/nope", nil); code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", code)
	}
	if code := getJSON(t, srv.URL+"/api/trains/", nil); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}
}

func TestAssignmentsAndAnalytics(t *testing.T) {
	srv, fs, _ := newTestServer(t, true)
	snap, _ := fs.Snapshot()

	var assignments AssignmentListResponse
	if code := getJSON(t, srv.URL+"/api/assignments", &assignments); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if assignments.Capacity != 15 || len(assignments.Assignments) != len(snap.Assignments) {
		t.Fatalf("unexpected assignments %+v", assignments)
	}

	var risk RiskAnalyticsResponse
	getJSON(t, srv.URL+"/api/analytics/risk", &risk)
	if risk.Distribution.Total() != len(snap.Trains) {
		t.Errorf("risk distribution covers %d of %d trains", risk.Distribution.Total(), len(snap.Trains))
	}
	for i := 1; i < len(risk.Ranking); i++ {
		if risk.Ranking[i-1].RiskScore < risk.Ranking[i].RiskScore {
			t.Fatalf("risk ranking not descending at %d", i)
		}
	}

	var plan analytics.InductionPlan
	getJSON(t, srv.URL+"/api/analytics/induction", &plan)
	if len(plan.Candidates) != analytics.InductionSlots {
		t.Errorf("expected %d induction candidates, got %d", analytics.InductionSlots, len(plan.Candidates))
	}

	var load PassengerLoadResponse
	getJSON(t, srv.URL+"/api/analytics/passenger-load", &load)
	if len(load.Ranking) != len(snap.Trains) || load.Summary.Total == 0 {
		t.Errorf("unexpected passenger load %+v", load.Summary)
	}

	var summary analytics.ServiceBaySummary
	getJSON(t, srv.URL+"/api/analytics/service-bay", &summary)
	if summary.Service+summary.Bay != len(snap.Trains) {
		t.Errorf("service/bay split %d+%d does not cover the fleet", summary.Service, summary.Bay)
	}

	if code := getJSON(t, srv.URL+"/api/analytics/unknown", nil); code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown view, got %d", code)
	}
}

func TestNodesListing(t *testing.T) {
	srv, _, _ := newTestServer(t, true)

	var namespaces []NamespaceInfo
	if code := getJSON(t, srv.URL+"/api/nodes", &namespaces); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if len(namespaces) != 2 || namespaces[0].Folder != "Fleet" || namespaces[1].Folder != "Depot" {
		t.Fatalf("unexpected namespaces %+v", namespaces)
	}
	first := namespaces[0].Nodes[0]
	if first.NodeID != "ns=2;s=Fleet.FleetId" || first.DataType != "String" || first.Value == "" {
		t.Errorf("unexpected fleet node %+v", first)
	}
}

func TestGenerate(t *testing.T) {
	srv, fs, _ := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/api/generate")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 for GET, got %d", resp.StatusCode)
	}

	resp, err = http.Post(srv.URL+"/api/generate", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatal(err)
	}
	if !status.HasFleet || status.TrainCount != 25 || status.Runs != 1 || status.FleetID == "" {
		t.Fatalf("unexpected status %+v", status)
	}
	if !fs.HasFleet() {
		t.Fatal("expected simulator to hold a fleet")
	}
}

func TestConfig(t *testing.T) {
	srv, _, rc := newTestServer(t, false)

	var cfg ConfigResponse
	getJSON(t, srv.URL+"/api/config", &cfg)
	if cfg.FleetSize != 25 || cfg.GenerateDelay != "0s" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantSize int
	}{
		{"valid update", `{"fleetSize": 40, "generateDelay": "250ms"}`, http.StatusOK, 40},
		{"fleet size too large", `{"fleetSize": 500}`, http.StatusBadRequest, 40},
		{"bad duration", `{"fleetSize": 10, "generateDelay": "soon"}`, http.StatusBadRequest, 40},
		{"delay out of range", `{"fleetSize": 10, "generateDelay": "1m"}`, http.StatusBadRequest, 40},
		{"invalid json", `{`, http.StatusBadRequest, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/config", "application/json", strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			resp.Body.Close()
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, resp.StatusCode)
			}
			if rc.GetFleetSize() != tt.wantSize {
				t.Fatalf("expected fleet size %d, got %d", tt.wantSize, rc.GetFleetSize())
			}
		})
	}

	if rc.GetGenerateDelay() != 250*time.Millisecond {
		t.Fatalf("expected 250ms delay, got %s", rc.GetGenerateDelay())
	}
}

func TestUIServed(t *testing.T) {
	srv, _, _ := newTestServer(t, false)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html, got %q", ct)
	}
}
