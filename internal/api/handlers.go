// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/pdiddy/skid-engine/internal/pipeline"
	"github.com/pdiddy/skid-engine/internal/simulator"
	"github.com/pdiddy/skid-engine/internal/snapshot"
	"github.com/pdiddy/skid-engine/pkg/types"
)

// calculateRequest runs the pipeline for one main power. Absent parameter
// blocks fall back to the reference defaults; a non-zero main_power always
// sets the main-engine input power.
type calculateRequest struct {
	MainPower  float64                    `json:"main_power"`
	MainEngine *types.MainEngineParams    `json:"main_engine,omitempty"`
	Utility    *types.UtilityParams       `json:"utility,omitempty"`
	Economics  *types.EconomicParams      `json:"economics,omitempty"`
	Selection  *types.UnitSelectionParams `json:"selection,omitempty"`
	Design     *types.DesignParams        `json:"design,omitempty"`
	Snapshot   bool                       `json:"snapshot,omitempty"`
}

type calculateResponse struct {
	Result     types.CombinedResult `json:"result"`
	Design     types.DesignReport   `json:"design"`
	SnapshotID string               `json:"snapshot_id,omitempty"`
}

// simulationRequest drives the bridge (or the pressure-drop estimate) and
// feeds the resolved power through the pipeline. A nil simulation block
// means the reference letdown case.
type simulationRequest struct {
	Simulation   *types.SimulationRequest `json:"simulation,omitempty"`
	EstimateOnly bool                     `json:"estimate_only,omitempty"`
}

type simulationResponse struct {
	simulator.Resolution

	Result     types.CombinedResult `json:"result"`
	Design     types.DesignReport   `json:"design"`
	SnapshotID string               `json:"snapshot_id"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	mp := types.DefaultMainEngineParams(req.MainPower)
	if req.MainEngine != nil {
		mp = *req.MainEngine
		if req.MainPower != 0 {
			mp.MainPower = req.MainPower
		}
	}
	up := types.DefaultUtilityParams()
	if req.Utility != nil {
		up = *req.Utility
	}
	ep := types.DefaultEconomicParams()
	if req.Economics != nil {
		ep = *req.Economics
	}
	sp := types.DefaultUnitSelectionParams()
	if req.Selection != nil {
		sp = *req.Selection
	}
	dp := s.cfg.Design
	if req.Design != nil {
		dp = *req.Design
	}

	res, err := pipeline.Run(mp, up, ep, sp)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	report, err := pipeline.Evaluate(res, mp, up, sp, dp)
	if err != nil {
		s.writeFailure(w, err)
		return
	}

	resp := calculateResponse{Result: res, Design: report}
	if req.Snapshot {
		saved, err := s.store.Save(r.Context(), snapshot.Record{Source: "manual", Result: res, Design: report})
		if err != nil {
			s.writeFailure(w, err)
			return
		}
		resp.SnapshotID = saved.ID
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	sim := types.DefaultSimulationRequest()
	if req.Simulation != nil {
		sim = *req.Simulation
	}
	if err := sim.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var resolution simulator.Resolution
	if req.EstimateOnly || s.runner == nil {
		resolution = simulator.Resolution{
			MainPower: simulator.EstimatePower(sim),
			Source:    simulator.SourceEstimated,
		}
	} else {
		simRes, err := s.runner.Run(r.Context(), sim)
		if err != nil {
			if errors.Is(err, types.ErrInvalidInput) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			s.log.Error("bridge run failed", "err", err)
			writeError(w, http.StatusBadGateway, "simulation bridge: "+err.Error())
			return
		}
		resolution = simulator.Resolve(simRes, sim)
	}

	mp := types.DefaultMainEngineParams(resolution.MainPower)
	up := types.DefaultUtilityParams()
	ep := types.DefaultEconomicParams()
	sp := types.DefaultUnitSelectionParams()

	res, err := pipeline.Run(mp, up, ep, sp)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	report, err := pipeline.Evaluate(res, mp, up, sp, s.cfg.Design)
	if err != nil {
		s.writeFailure(w, err)
		return
	}

	saved, err := s.store.Save(r.Context(), snapshot.Record{Source: resolution.Source, Result: res, Design: report})
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, simulationResponse{
		Resolution: resolution,
		Result:     res,
		Design:     report,
		SnapshotID: saved.ID,
	})
}

func (s *Server) handleListSnapshots(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": len(recs), "snapshots": recs})
}

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// writeFailure maps pipeline and store errors onto HTTP statuses.
func (s *Server) writeFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrInvalidInput), errors.Is(err, types.ErrParameterRange):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, snapshot.ErrNotFound):
		writeError(w, http.StatusNotFound, "snapshot not found")
	default:
		s.log.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
