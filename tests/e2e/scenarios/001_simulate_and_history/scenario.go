package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"os"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data and must match expected results.
// DO NOT MODIFY: Changing these will break the scenario's expected numbers.
const (
	serviceBaseURL = "http://localhost:8080"

	// fakeBackendAddr must match upstream.base_url in the service config so
	// the service fetches span counts from this scenario's fake backend.
	fakeBackendAddr = ":9080"

	organization = "acme"
	project      = "checkout"
	periodDays   = 7

	httpServerCount = 1000
	dbQueryCount    = 500
	declaredTotal   = 1800 // 300 spans beyond the two visible groups
)

// ### End - fixed configs

type simulateResponse struct {
	SimulationID string `json:"simulationId"`
	Result       struct {
		TotalRawCount         int64   `json:"totalRawCount"`
		TotalSimulatedCount   float64 `json:"totalSimulatedCount"`
		CostReductionPercent  float64 `json:"costReductionPercent"`
		MonthlyRawCount       float64 `json:"monthlyRawCount"`
		MonthlySimulatedCount float64 `json:"monthlySimulatedCount"`
		Breakdown             []struct {
			Operation        string  `json:"operation"`
			RawCount         int64   `json:"rawCount"`
			SimulatedCount   float64 `json:"simulatedCount"`
			SamplingRate     float64 `json:"samplingRate"`
			MatchedRuleLabel string  `json:"matchedRuleLabel"`
		} `json:"breakdown"`
	} `json:"result"`
	Display struct {
		TotalRawCount        string `json:"totalRawCount"`
		CostReductionPercent string `json:"costReductionPercent"`
	} `json:"display"`
}

// main runs the e2e scenario: 001_simulate_and_history
//
// This scenario drives a running spansim instance end to end. It serves a
// deterministic span-counts dataset from a fake telemetry backend, runs a
// simulation with one equals rule over it, and follows the recorded snapshot
// through the async history pipeline.
//
// What it tests:
//   - Span group fetch from the upstream backend (with declared total)
//   - Rule matching and first-match rate selection via POST /api/v1/simulations
//   - Reconciliation of the declared total into a synthetic "(other)" bucket
//   - 30-day projection of a 7-day window
//   - Display string formatting
//   - Asynchronous snapshot recording and read-back via GET /api/v1/simulations/{id}
//   - Rule set create / get / delete round trip
//
// Expected results:
//   - totalRawCount = 1800 (declared total wins over the 1500 visible)
//   - http.server keeps 1000 (global rate 100%), db.query keeps 50 (rule 10%),
//     the "(other)" bucket keeps 300 -> totalSimulatedCount = 1350
//   - costReductionPercent = 25.0
//   - monthlyRawCount = 1800 * 30/7
//   - the snapshot becomes readable through the history API within a few
//     polling rounds
func main() {
	backend := startFakeBackend()
	defer backend.Close()

	fmt.Println("fake telemetry backend listening on", fakeBackendAddr)

	simResp := runSimulation()
	verifySimulation(simResp)
	verifyHistory(simResp.SimulationID)
	verifyRuleSetRoundTrip()

	fmt.Println("scenario 001_simulate_and_history passed")
}

func startFakeBackend() *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/0/organizations/"+organization+"/sampling/span-counts",
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			payload := map[string]any{
				"data": []map[string]any{
					{"operation": "http.server", "count": httpServerCount},
					{"operation": "db.query", "count": dbQueryCount},
				},
				"meta": map[string]any{"total": declaredTotal},
			}
			_ = json.NewEncoder(w).Encode(payload)
		})

	server := &http.Server{Addr: fakeBackendAddr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fail("fake backend failed: %v", err)
		}
	}()
	time.Sleep(200 * time.Millisecond)
	return server
}

func runSimulation() *simulateResponse {
	body := map[string]any{
		"organization":     organization,
		"project":          project,
		"periodDays":       periodDays,
		"globalSampleRate": 100,
		"expansionFactor":  1,
		"rules": []map[string]any{
			{"id": "r1", "attribute": "operation", "operator": "equals", "value": "db.query", "rate": 10},
		},
	}
	resp := postJSON("/api/v1/simulations", body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fail("simulate returned status %d", resp.StatusCode)
	}

	var simResp simulateResponse
	if err := json.NewDecoder(resp.Body).Decode(&simResp); err != nil {
		fail("decoding simulate response: %v", err)
	}
	if simResp.SimulationID == "" {
		fail("simulate response carries no simulation ID")
	}
	return &simResp
}

func verifySimulation(simResp *simulateResponse) {
	result := simResp.Result

	expectEq("totalRawCount", int64(declaredTotal), result.TotalRawCount)
	expectFloat("totalSimulatedCount", 1350, result.TotalSimulatedCount)
	expectFloat("costReductionPercent", 25, result.CostReductionPercent)
	expectFloat("monthlyRawCount", float64(declaredTotal)*30/periodDays, result.MonthlyRawCount)
	expectFloat("monthlySimulatedCount", 1350*30.0/periodDays, result.MonthlySimulatedCount)

	if len(result.Breakdown) != 3 {
		fail("expected 3 breakdown rows (2 groups + other bucket), got %d", len(result.Breakdown))
	}
	other := result.Breakdown[2]
	if other.Operation != "(other)" {
		fail("expected synthetic bucket last, got operation %q", other.Operation)
	}
	expectEq("other bucket rawCount", int64(declaredTotal-httpServerCount-dbQueryCount), other.RawCount)
	if result.Breakdown[1].MatchedRuleLabel != "operation:db.query" {
		fail("expected db.query row to carry the rule label, got %q", result.Breakdown[1].MatchedRuleLabel)
	}

	expectEq("display totalRawCount", "1.80K", simResp.Display.TotalRawCount)
	expectEq("display costReductionPercent", "25.0%", simResp.Display.CostReductionPercent)

	fmt.Println("simulation result verified, id:", simResp.SimulationID)
}

// verifyHistory polls the history endpoint until the async recorder has
// flushed the snapshot. A handful of rounds is plenty: the queue hop plus
// one file write normally completes within milliseconds.
func verifyHistory(simulationID string) {
	target := fmt.Sprintf("%s/api/v1/simulations/%s?organization=%s", serviceBaseURL, simulationID, organization)

	for attempt := 0; attempt < 20; attempt++ {
		resp, err := http.Get(target)
		if err != nil {
			fail("history get failed: %v", err)
		}
		if resp.StatusCode == http.StatusOK {
			var record struct {
				ID     string `json:"id"`
				Result *struct {
					TotalRawCount int64 `json:"totalRawCount"`
				} `json:"result"`
			}
			err := json.NewDecoder(resp.Body).Decode(&record)
			resp.Body.Close()
			if err != nil {
				fail("decoding history record: %v", err)
			}
			expectEq("recorded simulation ID", simulationID, record.ID)
			if record.Result == nil {
				fail("recorded snapshot carries no result")
			}
			expectEq("recorded totalRawCount", int64(declaredTotal), record.Result.TotalRawCount)
			fmt.Println("history snapshot verified after", attempt+1, "poll(s)")
			return
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			fail("history get returned status %d", resp.StatusCode)
		}
		time.Sleep(250 * time.Millisecond)
	}
	fail("snapshot %s never appeared in history", simulationID)
}

func verifyRuleSetRoundTrip() {
	created := struct {
		ID string `json:"id"`
	}{}

	resp := postJSON("/api/v1/rulesets", map[string]any{
		"organization": organization,
		"project":      project,
		"name":         fmt.Sprintf("e2e-%d", time.Now().UnixNano()),
		"rules": []map[string]any{
			{"id": "r1", "attribute": "operation", "operator": "equals", "value": "db.query", "rate": 10},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		fail("ruleset create returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		fail("decoding ruleset create response: %v", err)
	}
	resp.Body.Close()

	getResp, err := http.Get(serviceBaseURL + "/api/v1/rulesets/" + created.ID)
	if err != nil || getResp.StatusCode != http.StatusOK {
		fail("ruleset get failed (err=%v)", err)
	}
	getResp.Body.Close()

	req, _ := http.NewRequest(http.MethodDelete, serviceBaseURL+"/api/v1/rulesets/"+created.ID, nil)
	delResp, err := http.DefaultClient.Do(req)
	if err != nil || delResp.StatusCode != http.StatusNoContent {
		fail("ruleset delete failed (err=%v)", err)
	}
	delResp.Body.Close()

	fmt.Println("rule set round trip verified, id:", created.ID)
}

func postJSON(path string, body any) *http.Response {
	buf, err := json.Marshal(body)
	if err != nil {
		fail("marshaling request: %v", err)
	}
	resp, err := http.Post(serviceBaseURL+path, "application/json", bytes.NewReader(buf))
	if err != nil {
		fail("POST %s failed: %v", path, err)
	}
	return resp
}

func expectEq[T comparable](name string, expected, actual T) {
	if expected != actual {
		fail("%s: expected %v, got %v", name, expected, actual)
	}
}

func expectFloat(name string, expected, actual float64) {
	if math.Abs(expected-actual) > 1e-6 {
		fail("%s: expected %v, got %v", name, expected, actual)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "FAIL: "+format+"\n", args...)
	os.Exit(1)
}
