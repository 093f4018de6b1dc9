package http

import (
	"encoding/json"
	"net/http"

	"github.com/umslabs/umsqa-core/internal/core/domain"
)

// Fixed response strings for user-level outcomes. Both are served with
// status 200.
const (
	msgNoQuestion = "❌ No question provided."
	msgNoAnswer   = "Sorry, no relevant answer found."
)

// serverStatus is the status string reported by the health endpoint.
const serverStatus = "umsqa-core server is running"

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// HealthResponse reports service and index state
type HealthResponse struct {
	Status           string `json:"status" example:"umsqa-core server is running"`
	VectorstoreReady bool   `json:"vectorstore_ready" example:"true"`
	TotalDocuments   int    `json:"total_documents" example:"42"`
}

// VersionResponse represents the API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// QueryRequest is the query endpoint request body
type QueryRequest struct {
	Question string `json:"question" example:"How do I reset my password?"`
}

// QueryResponse is the query endpoint response body
type QueryResponse struct {
	Answer string `json:"answer"`
}

// handleHealth godoc
// @Summary      Health check
// @Description  Returns service status, index readiness and corpus size
// @Tags         Health
// @Produce      json
// @Success      200  {object}  HealthResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.queryService.Stats()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:           serverStatus,
		VectorstoreReady: stats.Ready,
		TotalDocuments:   stats.TotalDocuments,
	})
}

// handleVersion godoc
// @Summary      Get API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, VersionResponse{Version: s.version})
}

// handleQuery godoc
// @Summary      Answer a question
// @Description  Embeds the question and returns the text of the most similar
// @Description  indexed chunk
// @Tags         Query
// @Accept       json
// @Produce      json
// @Param        request  body      QueryRequest  true  "The question"
// @Success      200      {object}  QueryResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /api/query [post]
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	answer, err := s.queryService.Answer(r.Context(), req.Question)
	if err != nil {
		switch err {
		case domain.ErrEmptyQuestion:
			writeJSON(w, http.StatusOK, QueryResponse{Answer: msgNoQuestion})
		case domain.ErrNoAnswer:
			writeJSON(w, http.StatusOK, QueryResponse{Answer: msgNoAnswer})
		default:
			s.logger.Error("query failed", "error", err)
			writeError(w, http.StatusInternalServerError, "query failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, QueryResponse{Answer: answer.Text})
}

// Response helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
