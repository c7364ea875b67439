// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-json-experiment/json"

	"github.com/go-a2a/a2ui-echo/a2a"
	"github.com/go-a2a/a2ui-echo/agent"
)

// handleAgentCard serves the agent card, signed when a signer is
// configured. The card is rebuilt per request from the immutable
// configuration, so there is nothing to synchronize.
func (s *Server) handleAgentCard(w http.ResponseWriter, r *http.Request) {
	card := a2a.NewAgentCard(s.cfg.PublicBaseURL)
	if s.signer != nil {
		signed, err := s.signer.Sign(card)
		if err != nil {
			s.logger.ErrorContext(r.Context(), "sign agent card", slog.Any("error", err))
			http.Error(w, "failed to sign agent card", http.StatusInternalServerError)
			return
		}
		card = signed
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, card); err != nil {
		s.logger.ErrorContext(r.Context(), "write agent card", slog.Any("error", err))
	}
}

// handleJSONRPC answers message/send requests. Every JSON-RPC outcome,
// error or result, rides on a 200 response; non-200 is reserved for
// transport failures.
func (s *Server) handleJSONRPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	env, rpcErr := agent.ValidateEnvelope(body)
	if rpcErr != nil {
		s.logger.InfoContext(r.Context(), "rejecting request",
			slog.Int("code", rpcErr.Code),
			slog.String("reason", rpcErr.Message),
		)
		s.writeResponse(w, r, a2a.NewErrorResponse(env.ID, rpcErr))
		return
	}

	task := agent.Respond(env.Message)
	s.logger.InfoContext(r.Context(), "message answered",
		slog.String("taskId", task.ID),
		slog.Int("parts", len(env.Message.Parts)),
	)
	s.writeResponse(w, r, a2a.NewSuccessResponse(env.ID, task))
}

// healthzResponse is the health check payload.
type healthzResponse struct {
	OK            bool   `json:"ok"`
	Time          string `json:"time"`
	PublicBaseURL string `json:"publicBaseUrl"`
}

// handleHealthz reports liveness with the current time and the
// advertised base URL.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.MarshalWrite(w, healthzResponse{
		OK:            true,
		Time:          time.Now().UTC().Format(time.RFC3339),
		PublicBaseURL: s.cfg.PublicBaseURL,
	}); err != nil {
		s.logger.ErrorContext(r.Context(), "write healthz", slog.Any("error", err))
	}
}

// writeResponse writes a JSON-RPC response envelope.
func (s *Server) writeResponse(w http.ResponseWriter, r *http.Request, resp *a2a.JSONRPCResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors still use 200 OK
	if err := json.MarshalWrite(w, resp); err != nil {
		s.logger.ErrorContext(r.Context(), "write response", slog.Any("error", err))
	}
}
