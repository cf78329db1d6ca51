// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package simulator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pdiddy/skid-engine/internal/httputil"
	"github.com/pdiddy/skid-engine/pkg/types"
)

func init() {
	// Use a tiny backoff so busy-bridge tests finish quickly.
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

const bridgeResultJSON = `{
	"power_output": -66.53419,
	"inlet_conditions": {"pressure": 0.8, "temperature": 20},
	"outlet_conditions": {"pressure": 0.3, "temperature": -43.2},
	"performance_metrics": {"efficiency": 85, "pressure_ratio": 2.6666666667},
	"simulation_time": 12.4
}`

func testClient(ts *httptest.Server) *Client {
	c := NewClient(types.SimulatorConfig{
		HTTPConfig: types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "skid-engine-test/0.1"},
		BaseURL:    ts.URL,
		MaxRetries: 2,
	})
	c.HTTP = ts.Client()
	return c
}

// --- Request construction ---

func TestClientRunRequestShape(t *testing.T) {
	var captured *http.Request
	var body types.SimulationRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, bridgeResultJSON)
	}))
	defer ts.Close()

	c := testClient(ts)
	c.APIKey = "sk_test_123"

	_, err := c.Run(context.Background(), types.DefaultSimulationRequest())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if captured.Method != http.MethodPost {
		t.Errorf("method = %q, want POST", captured.Method)
	}
	if captured.URL.Path != "/run" {
		t.Errorf("path = %q, want /run", captured.URL.Path)
	}
	if got := captured.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if got := captured.Header.Get("User-Agent"); got != "skid-engine-test/0.1" {
		t.Errorf("User-Agent = %q, want skid-engine-test/0.1", got)
	}
	if got := captured.Header.Get("x-api-key"); got != "sk_test_123" {
		t.Errorf("x-api-key = %q, want sk_test_123", got)
	}
	if body.GasFlowRate != types.DefaultGasFlowRate {
		t.Errorf("gas_flow_rate = %v, want %v", body.GasFlowRate, types.DefaultGasFlowRate)
	}
	if body.GasComposition.CH4 != 100 {
		t.Errorf("gas_composition.ch4 = %v, want 100", body.GasComposition.CH4)
	}
}

func TestClientRunOmitsEmptyAPIKey(t *testing.T) {
	var captured *http.Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, bridgeResultJSON)
	}))
	defer ts.Close()

	_, err := testClient(ts).Run(context.Background(), types.DefaultSimulationRequest())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := captured.Header.Get("x-api-key"); got != "" {
		t.Errorf("x-api-key header should be absent, got %q", got)
	}
}

// --- Response handling ---

func TestClientRunDecodesResult(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, bridgeResultJSON)
	}))
	defer ts.Close()

	got, err := testClient(ts).Run(context.Background(), types.DefaultSimulationRequest())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got.PowerOutput != -66.53419 {
		t.Errorf("PowerOutput = %v, want -66.53419", got.PowerOutput)
	}
	if got.Inlet.Pressure != 0.8 || got.Outlet.Temperature != -43.2 {
		t.Errorf("conditions = %+v / %+v, want inlet 0.8 MPaA and outlet -43.2 C", got.Inlet, got.Outlet)
	}
	if got.Performance.Efficiency != 85 {
		t.Errorf("Performance.Efficiency = %v, want 85", got.Performance.Efficiency)
	}
	if got.Duration != 12.4 {
		t.Errorf("Duration = %v, want 12.4", got.Duration)
	}
}

func TestClientRunRetriesBusyBridge(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, bridgeResultJSON)
	}))
	defer ts.Close()

	got, err := testClient(ts).Run(context.Background(), types.DefaultSimulationRequest())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got.PowerOutput != -66.53419 {
		t.Errorf("PowerOutput = %v, want -66.53419", got.PowerOutput)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Errorf("bridge calls = %d, want 2", n)
	}
}

func TestClientRunHTTPErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    string
	}{
		{"400 bad request", http.StatusBadRequest, "HTTP 400"},
		{"500 solver crash", http.StatusInternalServerError, "HTTP 500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer ts.Close()

			_, err := testClient(ts).Run(context.Background(), types.DefaultSimulationRequest())
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestClientRunMalformedJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{not json`)
	}))
	defer ts.Close()

	_, err := testClient(ts).Run(context.Background(), types.DefaultSimulationRequest())
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	if !strings.Contains(err.Error(), "parsing") {
		t.Errorf("error = %q, want substring 'parsing'", err.Error())
	}
}

func TestClientRunValidatesRequest(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer ts.Close()

	bad := types.DefaultSimulationRequest()
	bad.OutletPressure = bad.InletPressure // no pressure drop to expand across

	_, err := testClient(ts).Run(context.Background(), bad)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("Run error = %v, want ErrInvalidInput", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("bridge calls = %d, want 0 for an invalid request", n)
	}
}

func TestClientRunContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := testClient(ts).Run(ctx, types.DefaultSimulationRequest())
	if err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

// --- Power resolution ---

func TestEstimatePower(t *testing.T) {
	tests := []struct {
		name string
		req  types.SimulationRequest
		want float64
	}{
		{"default request", types.DefaultSimulationRequest(), 14.1666666665},
		{
			"floored at the minimum",
			types.SimulationRequest{GasFlowRate: 100, InletPressure: 0.5, OutletPressure: 0.4, Efficiency: 85},
			10,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimatePower(tt.req)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Fatalf("EstimatePower = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	req := types.DefaultSimulationRequest()
	tests := []struct {
		name       string
		power      float64
		wantPower  float64
		wantSource string
	}{
		{"delivered power is negative", -66.53419, 66.53419, SourceSimulated},
		{"positive power taken as-is", 120.5, 120.5, SourceSimulated},
		{"zero falls back to estimate", 0, 14.1666666665, SourceEstimated},
		{"nan falls back to estimate", math.NaN(), 14.1666666665, SourceEstimated},
		{"inf falls back to estimate", math.Inf(-1), 14.1666666665, SourceEstimated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(types.SimulationResult{PowerOutput: tt.power}, req)
			if math.Abs(got.MainPower-tt.wantPower) > 1e-6 {
				t.Errorf("MainPower = %v, want %v", got.MainPower, tt.wantPower)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
		})
	}
}
