package server

import (
	"encoding/json"
	"net/http"
)

// NewHTTPHandler returns an http.Handler with all routes registered.
func (s *Server) NewHTTPHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /v1/health", s.handleHealth)
	mux.HandleFunc("POST /trigger-email", s.handleTriggerEmail)
	mux.HandleFunc("GET /v1/countdown", s.handleGetCountdown)
	mux.HandleFunc("GET /v1/quote", s.handleGetQuote)
	mux.HandleFunc("GET /v1/wishlist", s.handleGetWishlist)
	mux.HandleFunc("GET /v1/gallery", s.handleGetGallery)
	mux.HandleFunc("POST /v1/secret/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /v1/secret/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("POST /v1/secret/sessions/{id}/password", s.handleSubmitPassword)
	mux.HandleFunc("POST /v1/secret/sessions/{id}/begin", s.handleBegin)
	mux.HandleFunc("POST /v1/secret/sessions/{id}/answers", s.handleSubmitAnswer)
	mux.HandleFunc("POST /v1/secret/sessions/{id}/reset", s.handleReset)
	mux.HandleFunc("GET /v1/secret/sessions/{id}/gallery", s.handleSecretGallery)
	return mux
}

// handleRoot handles GET /, the original health-check payload.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Birthday countdown server is running!",
	})
}

// handleHealth handles GET /v1/health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
