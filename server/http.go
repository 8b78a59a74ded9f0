package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spetersoncode/nutriagent/a2a"
)

// AgentIDParam is the route parameter naming the target agent.
const AgentIDParam = "agentID"

// ServeHTTP handles a task request routed with an {agentID} parameter.
// The response body is always a JSON-RPC envelope.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		status, resp := h.fail(h.logger, nil, &a2a.ValidationError{Reason: "read body: " + err.Error()})
		writeJSON(w, status, resp)
		return
	}

	status, resp := h.Handle(r.Context(), chi.URLParam(r, AgentIDParam), body)
	writeJSON(w, status, resp)
}

// NewRouter routes task requests to h.
//
//	POST /agents/{agentID}
//	POST /agents/{agentID}/tasks/send
//	GET  /health
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/agents/{"+AgentIDParam+"}", h.ServeHTTP)
	r.Post("/agents/{"+AgentIDParam+"}/tasks/send", h.ServeHTTP)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
