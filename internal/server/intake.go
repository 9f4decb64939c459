package server

import (
	"net/http"

	"aidmatch/internal/service"
)

func (s *Service) handleSubmitApplication(w http.ResponseWriter, r *http.Request) {
	var req = new(service.ApplicationRequest)
	if err := decodeBody(r, req); err != nil {
		s.writeError(w, r, err)
		return
	}

	outcome, err := s.backend.SubmitApplication(r.Context(), req)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, outcome)
}

func (s *Service) handleActiveCrises(w http.ResponseWriter, r *http.Request) {
	crises, err := s.backend.ActiveCrises(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, crises)
}
