package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"futureyou/internal/agent"
)

const maxBodyBytes = 1 << 20

func (s *Server) handleCreateAgent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req agent.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("agent request body rejected", "error", err)
		writeJSON(w, http.StatusBadRequest, agent.Response{Error: agent.MsgRequiredFields})
		return
	}

	resp, status := s.service.Provision(r.Context(), &req)
	writeJSON(w, status, resp)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
