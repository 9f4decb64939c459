package server

import (
	"net/http"

	"aidmatch/internal/matching"
	"aidmatch/internal/service"
	"aidmatch/pkg/types"

	"github.com/alexedwards/flow"
)

type allocateRequest struct {
	ProviderID string `json:"providerId"`
}

func (s *Service) handleCreateDonation(w http.ResponseWriter, r *http.Request) {
	var req = new(service.CreateDonationRequest)
	if err := decodeBody(r, req); err != nil {
		s.writeError(w, r, err)
		return
	}

	donation, err := s.backend.CreateDonation(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, donation)
}

func (s *Service) handleSuggestProviders(w http.ResponseWriter, r *http.Request) {
	var opts matching.SuggestOptions
	if err := decoder.Decode(&opts, r.URL.Query()); err != nil {
		s.badRequest(w, "invalid query parameters")
		return
	}

	if opts.Limit < 0 || opts.MinTrustScore < 0 || opts.MinTrustScore > 100 {
		s.badRequest(w, "limit must be positive and min_trust between 0 and 100")
		return
	}

	suggestions, err := s.backend.SuggestProviders(r.Context(), flow.Param(r.Context(), "id"), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, suggestions)
}

func (s *Service) handleAllocateDonation(w http.ResponseWriter, r *http.Request) {
	var req = new(allocateRequest)
	if err := decodeBody(r, req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if req.ProviderID == "" {
		s.badRequest(w, "providerId is required")
		return
	}

	donation, err := s.backend.AllocateDonation(r.Context(), flow.Param(r.Context(), "id"), req.ProviderID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, donation)
}

func (s *Service) handleMarkDistributed(w http.ResponseWriter, r *http.Request) {
	allocation, err := s.backend.MarkDistributed(r.Context(), flow.Param(r.Context(), "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, allocation)
}

func (s *Service) handleSubmitProof(w http.ResponseWriter, r *http.Request) {
	var proof = new(types.DistributionProof)
	if err := decodeBody(r, proof); err != nil {
		s.writeError(w, r, err)
		return
	}

	outcome, err := s.backend.SubmitProof(r.Context(), flow.Param(r.Context(), "id"), proof)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, outcome)
}
