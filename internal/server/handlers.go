package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/carbonscope/carbonscope/internal/engine"
	"github.com/carbonscope/carbonscope/internal/factors"
)

type errorResponse struct {
	Error string `json:"error"`
}

// aggregateRequest is the batch body: sources plus the facility records
// used for equity-share weighting.
type aggregateRequest struct {
	Sources    []engine.Source            `json:"sources"`
	Facilities map[string]engine.Facility `json:"facilities,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("encoding response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCalculate evaluates one emission source. Data problems inside the
// source come back as warnings on a 200 response; only an undecodable body
// is a client error.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var src engine.Source
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&src); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	res := s.calc.Calculate(src)
	calculationDuration.Observe(time.Since(start).Seconds())

	outcome := "ok"
	if len(res.Warnings) > 0 {
		outcome = string(res.Warnings[0].Kind)
	}
	calculationsTotal.WithLabelValues(string(src.Category), outcome).Inc()
	for _, warning := range res.Warnings {
		warningsTotal.WithLabelValues(string(warning.Kind)).Inc()
	}

	s.writeJSON(w, http.StatusOK, res)
}

// handleAggregate evaluates a batch of sources into scope and category
// totals. A bad row degrades to warnings, never a failed request.
func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req aggregateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	totals := s.calc.Aggregate(req.Sources, req.Facilities)
	calculationDuration.Observe(time.Since(start).Seconds())

	// Per-source outcomes mirror handleCalculate: the first warning carried
	// against a source id wins over "ok".
	degraded := make(map[string]engine.WarningKind, len(totals.Warnings))
	for _, warning := range totals.Warnings {
		if _, seen := degraded[warning.SourceID]; !seen {
			degraded[warning.SourceID] = warning.Kind
		}
		warningsTotal.WithLabelValues(string(warning.Kind)).Inc()
	}
	for _, src := range req.Sources {
		outcome := "ok"
		if kind, ok := degraded[src.ID]; ok {
			outcome = string(kind)
		}
		calculationsTotal.WithLabelValues(string(src.Category), outcome).Inc()
	}

	s.writeJSON(w, http.StatusOK, totals)
}

func (s *Server) handleFactorTables(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string][]string{"tables": factors.TableNames()})
}

func (s *Server) handleFactorTable(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "table")
	table, ok := factors.Default().Table(name)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown factor table " + name})
		return
	}

	// Flatten to a wire-friendly shape: key -> {name, unit -> factor}.
	type entry struct {
		Name    string             `json:"name"`
		PerUnit map[string]float64 `json:"perUnit"`
	}
	out := make(map[string]entry, len(table))
	for key, f := range table {
		out[key] = entry{Name: f.Name, PerUnit: f.PerUnit}
	}
	s.writeJSON(w, http.StatusOK, out)
}
