package httpapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/chrisschwer/league-simulator/pkg/leaguesim"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const version = "1.0.0"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: version, IterationsSupported: true})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	resp, err := s.runOne(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSimulateBatch(w http.ResponseWriter, r *http.Request) {
	var reqs map[string]simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	results := make(map[string]simulateResponse, len(reqs))
	var g errgroup.Group
	var mu sync.Mutex

	for label, req := range reqs {
		label, req := label, req
		g.Go(func() error {
			resp, err := s.runOne(req)
			if err != nil {
				return err
			}
			mu.Lock()
			results[label] = resp
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (s *Server) runOne(req simulateRequest) (simulateResponse, error) {
	season, params, teamNames := toSeasonAndParams(req)

	start := time.Now()
	result, err := leaguesim.RunMonteCarlo(season, params, teamNames)
	if err != nil {
		return simulateResponse{}, err
	}
	elapsed := time.Since(start)

	ordered := leaguesim.OrderByExpectedPosition(result)

	return simulateResponse{
		ProbabilityMatrix:    ordered.ProbabilityMatrix,
		TeamNames:            ordered.TeamNames,
		SimulationsPerformed: params.Iterations,
		TimeMs:               elapsed.Milliseconds(),
	}, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("encoding response body")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
