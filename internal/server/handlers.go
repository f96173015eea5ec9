package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
)

// ResolveRequest represents the request body for /v1/resolve
type ResolveRequest struct {
	Input string `json:"input" validate:"required"`
}

// ResolveResponse represents the response for /v1/resolve
type ResolveResponse struct {
	RequestID       string            `json:"request_id"`
	Input           string            `json:"input"`
	OfficialWebsite string            `json:"official_website,omitempty"`
	CareersURL      string            `json:"careers_url,omitempty"`
	Trace           map[string]string `json:"trace"`
}

// handleResolve runs the cascade for a single input.
func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	var req ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "input is required")
		return
	}

	requestID := uuid.New().String()
	log.Printf("resolving %q (request %s)", req.Input, requestID)

	result := s.resolver.Resolve(r.Context(), req.Input)

	s.jsonResponse(w, http.StatusOK, ResolveResponse{
		RequestID:       requestID,
		Input:           req.Input,
		OfficialWebsite: result.OfficialWebsite,
		CareersURL:      result.CareersURL,
		Trace:           result.Trace,
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
