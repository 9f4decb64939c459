package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"aidmatch/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

func (s *Service) badRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func (s *Service) internalServerError(w http.ResponseWriter) {
	s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// writeError maps domain errors onto status codes. Anything unrecognised is
// logged and reported as a 500.
func (s *Service) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		s.internalServerError(w)
		return
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, types.ErrBeneficiaryNotFound),
		errors.Is(err, types.ErrProviderNotFound),
		errors.Is(err, types.ErrDonationNotFound),
		errors.Is(err, types.ErrCrisisNotFound),
		errors.Is(err, types.ErrAllocationNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrInvalidStatusTransition),
		errors.Is(err, types.ErrCrisisOverfunded):
		return http.StatusConflict
	case errors.Is(err, types.ErrProviderIneligible):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %w", types.ErrInvalidRequest, err)
	}
	return nil
}
