package server

import (
	"net/http"

	"aidmatch/internal/matching"

	"github.com/alexedwards/flow"
)

type batchQuery struct {
	DryRun bool `form:"dry_run"`
}

type fraudQuery struct {
	Suspicious bool `form:"suspicious"`
}

type matchResponse struct {
	BeneficiaryID string          `json:"beneficiaryId"`
	Matched       bool            `json:"matched"`
	Match         *matching.Match `json:"match"`
}

func (s *Service) handleRunBatch(w http.ResponseWriter, r *http.Request) {
	var query = new(batchQuery)
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		s.badRequest(w, "invalid query parameters")
		return
	}

	outcome, err := s.backend.RunBatch(r.Context(), !query.DryRun)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, outcome)
}

func (s *Service) handleMatchBeneficiary(w http.ResponseWriter, r *http.Request) {
	id := flow.Param(r.Context(), "id")

	match, err := s.backend.MatchBeneficiary(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, matchResponse{
		BeneficiaryID: id,
		Matched:       match != nil,
		Match:         match,
	})
}

func (s *Service) handleScreenBeneficiary(w http.ResponseWriter, r *http.Request) {
	report, err := s.backend.ScreenBeneficiary(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

func (s *Service) handleScanFraud(w http.ResponseWriter, r *http.Request) {
	var query = new(fraudQuery)
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		s.badRequest(w, "invalid query parameters")
		return
	}

	reports, err := s.backend.ScanFraud(r.Context(), query.Suspicious)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, reports)
}

func (s *Service) handleRefreshTrustScore(w http.ResponseWriter, r *http.Request) {
	result, err := s.backend.RefreshTrustScore(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}
