// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package config carries the process configuration. It is built once at
// startup and passed by parameter, never read from ambient globals.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultPort is the port served when none is configured.
const DefaultPort = 10002

// Config is the immutable process configuration.
type Config struct {
	// Port is the TCP port the HTTP server binds.
	Port int
	// PublicBaseURL is the externally reachable base URL advertised in
	// the agent card.
	PublicBaseURL string
	// SigningKeyPath optionally locates the Ed25519 JWK used to sign
	// the agent card. Empty serves the card unsigned.
	SigningKeyPath string
}

// New builds a validated Config.
//
// Args:
//   - port: TCP port to serve on, 1 through 65535.
//   - publicBaseURL: advertised base URL; when empty it is derived as
//     http://localhost:<port>.
//   - signingKeyPath: optional path to a private JWK file.
//
// Returns:
//   - The configuration.
//   - An error when port is out of range.
func New(port int, publicBaseURL, signingKeyPath string) (*Config, error) {
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("port %d out of range 1-65535", port)
	}
	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("http://localhost:%d", port)
	}

	return &Config{
		Port:           port,
		PublicBaseURL:  publicBaseURL,
		SigningKeyPath: signingKeyPath,
	}, nil
}

// FromEnv builds a Config from the PORT, PUBLIC_BASE_URL, and
// CARD_SIGNING_KEY environment variables. A non-numeric PORT is an
// error rather than a silent fallback.
func FromEnv() (*Config, error) {
	port := DefaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("parse PORT: %w", err)
		}
		port = p
	}

	return New(port, os.Getenv("PUBLIC_BASE_URL"), os.Getenv("CARD_SIGNING_KEY"))
}

// Addr is the listen address derived from Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
