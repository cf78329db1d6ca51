// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package simulator talks to the process-simulator bridge that models the
// expander train and hands back the shaft power the pipeline starts from.
// When the bridge cannot produce a usable power, a pressure-drop estimate
// stands in so a design run always has a number to work with.
package simulator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/skid-engine/internal/httputil"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// Runner produces a simulation result for a request. Client is the
// production implementation; tests substitute fakes.
type Runner interface {
	Run(ctx context.Context, req types.SimulationRequest) (types.SimulationResult, error)
}

// Client calls the simulator bridge over HTTP.
type Client struct {
	HTTP       *http.Client
	BaseURL    string
	APIKey     string
	UserAgent  string
	MaxRetries int
}

// NewClient builds a bridge client from cfg.
func NewClient(cfg types.SimulatorConfig) *Client {
	return &Client{
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		UserAgent:  cfg.UserAgent,
		MaxRetries: cfg.MaxRetries,
	}
}

// Run posts the simulation request to the bridge and decodes the result.
// Busy bridge responses are retried; any other non-200 status is an error.
func (c *Client) Run(ctx context.Context, simReq types.SimulationRequest) (types.SimulationResult, error) {
	if err := simReq.Validate(); err != nil {
		return types.SimulationResult{}, fmt.Errorf("simulation request: %w", err)
	}

	payload, err := json.Marshal(simReq)
	if err != nil {
		return types.SimulationResult{}, fmt.Errorf("encoding simulation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/run", bytes.NewReader(payload))
	if err != nil {
		return types.SimulationResult{}, fmt.Errorf("creating bridge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTP, req, c.MaxRetries)
	if err != nil {
		return types.SimulationResult{}, fmt.Errorf("bridge request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.SimulationResult{}, fmt.Errorf("bridge returned HTTP %d", resp.StatusCode)
	}

	var result types.SimulationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return types.SimulationResult{}, fmt.Errorf("parsing bridge response: %w", err)
	}
	return result, nil
}
