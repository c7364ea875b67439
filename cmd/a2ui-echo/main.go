// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// a2ui-echo serves an A2A JSON-RPC agent that answers every message/send
// with a completed task carrying an A2UI v0.8 confirmation surface.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/go-a2a/a2ui-echo/a2a"
	"github.com/go-a2a/a2ui-echo/cardsign"
	"github.com/go-a2a/a2ui-echo/internal/config"
	"github.com/go-a2a/a2ui-echo/server"
)

func main() {
	app := &cli.App{
		Name:    "a2ui-echo",
		Usage:   "A2A agent answering every message with an A2UI confirmation surface",
		Version: a2a.AgentVersion,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "TCP port to serve on",
				Value:   config.DefaultPort,
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "public-base-url",
				Usage:   "externally reachable base URL advertised in the agent card",
				EnvVars: []string{"PUBLIC_BASE_URL"},
			},
			&cli.StringFlag{
				Name:    "signing-key",
				Usage:   "path to an Ed25519 private JWK used to sign the agent card",
				EnvVars: []string{"CARD_SIGNING_KEY"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.New(c.Int("port"), c.String("public-base-url"), c.String("signing-key"))
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	opts := []server.Option{server.WithLogger(logger)}
	if cfg.SigningKeyPath != "" {
		signer, err := cardsign.Load(cfg.SigningKeyPath)
		if err != nil {
			return fmt.Errorf("load signing key: %w", err)
		}
		logger.Info("agent card signing enabled", slog.String("kid", signer.KeyID()))
		opts = append(opts, server.WithSigner(signer))
	}

	srv := server.New(cfg, opts...)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case sig := <-sigCh:
		logger.Info("signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
