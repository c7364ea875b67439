// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
)

func TestNew(t *testing.T) {
	tests := map[string]struct {
		port          int
		publicBaseURL string
		want          string
		wantErr       bool
	}{
		"derives base url": {
			port: 10002,
			want: "http://localhost:10002",
		},
		"keeps explicit base url": {
			port:          10002,
			publicBaseURL: "https://agent.example.com",
			want:          "https://agent.example.com",
		},
		"port zero": {
			port:    0,
			wantErr: true,
		},
		"port negative": {
			port:    -1,
			wantErr: true,
		},
		"port too large": {
			port:    65536,
			wantErr: true,
		},
		"port upper bound": {
			port: 65535,
			want: "http://localhost:65535",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := New(tt.port, tt.publicBaseURL, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.PublicBaseURL != tt.want {
				t.Errorf("PublicBaseURL = %q, want %q", cfg.PublicBaseURL, tt.want)
			}
			if cfg.Port != tt.port {
				t.Errorf("Port = %d, want %d", cfg.Port, tt.port)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("PUBLIC_BASE_URL", "")
		t.Setenv("CARD_SIGNING_KEY", "")

		cfg, err := FromEnv()
		if err != nil {
			t.Fatalf("FromEnv() error = %v", err)
		}
		if cfg.Port != DefaultPort {
			t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
		}
		if got, want := cfg.PublicBaseURL, "http://localhost:10002"; got != want {
			t.Errorf("PublicBaseURL = %q, want %q", got, want)
		}
		if cfg.SigningKeyPath != "" {
			t.Errorf("SigningKeyPath = %q, want empty", cfg.SigningKeyPath)
		}
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("PUBLIC_BASE_URL", "https://agent.example.com")
		t.Setenv("CARD_SIGNING_KEY", "/keys/private.jwk")

		cfg, err := FromEnv()
		if err != nil {
			t.Fatalf("FromEnv() error = %v", err)
		}
		if cfg.Port != 8080 {
			t.Errorf("Port = %d, want 8080", cfg.Port)
		}
		if got, want := cfg.PublicBaseURL, "https://agent.example.com"; got != want {
			t.Errorf("PublicBaseURL = %q, want %q", got, want)
		}
		if got, want := cfg.SigningKeyPath, "/keys/private.jwk"; got != want {
			t.Errorf("SigningKeyPath = %q, want %q", got, want)
		}
	})

	t.Run("non-numeric port", func(t *testing.T) {
		t.Setenv("PORT", "http")

		if _, err := FromEnv(); err == nil {
			t.Fatal("FromEnv() error is nil, want parse error")
		}
	})
}

func TestAddr(t *testing.T) {
	cfg, err := New(10002, "", "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got, want := cfg.Addr(), ":10002"; got != want {
		t.Errorf("Addr() = %q, want %q", got, want)
	}
}
