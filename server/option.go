// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"log/slog"

	"github.com/go-a2a/a2ui-echo/cardsign"
)

// Option represents an option for configuring the [Server].
type Option func(*Server)

// WithLogger sets the [*slog.Logger] for the [Server].
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithSigner sets the agent card [*cardsign.Signer] for the [Server].
// Without one the card is served unsigned.
func WithSigner(signer *cardsign.Signer) Option {
	return func(s *Server) {
		s.signer = signer
	}
}
