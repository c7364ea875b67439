// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package server exposes the agent over HTTP: the JSON-RPC endpoint, the
// well-known agent card, and a health check, wrapped in panic recovery,
// request logging, and permissive CORS.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"github.com/go-a2a/a2ui-echo/a2a"
	"github.com/go-a2a/a2ui-echo/cardsign"
	"github.com/go-a2a/a2ui-echo/internal/config"
)

// Server is the HTTP front of the agent. All of its state is read-only
// after New, so requests can be served concurrently without locking.
type Server struct {
	cfg     *config.Config
	logger  *slog.Logger
	signer  *cardsign.Signer
	handler http.Handler
	httpSrv *http.Server
}

// New creates a new [Server] for the given configuration.
//
// Args:
//   - cfg: the validated process configuration.
//   - opts: optional settings such as [WithLogger] and [WithSigner].
//
// Returns:
//   - A server ready to ListenAndServe.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		cfg:    cfg,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+a2a.AgentCardWellKnownPath, s.handleAgentCard)
	mux.HandleFunc("POST "+a2a.JSONRPCPath, s.handleJSONRPC)
	mux.HandleFunc("GET "+a2a.HealthzPath, s.handleHealthz)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	s.handler = c.Handler(s.logging(s.recovery(mux)))

	s.httpSrv = &http.Server{
		Addr:    cfg.Addr(),
		Handler: s.handler,
	}
	return s
}

// ServeHTTP implements the [http.Handler] interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// ListenAndServe binds the configured port and serves until Shutdown or
// a listener error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening",
		slog.String("addr", s.httpSrv.Addr),
		slog.String("publicBaseUrl", s.cfg.PublicBaseURL),
		slog.Bool("cardSigning", s.signer != nil),
	)
	return s.httpSrv.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpSrv.Shutdown(ctx)
}
