// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package cardsign adds detached JWS signatures to agent cards so
// clients can verify card provenance. Keys are Ed25519, carried in JWK
// files.
package cardsign

import (
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/go-jose/go-jose/v4"
	"github.com/go-json-experiment/json"

	"github.com/go-a2a/a2ui-echo/a2a"
)

// Signer signs agent cards with a fixed Ed25519 key. It is immutable and
// safe for concurrent use.
type Signer struct {
	key   ed25519.PrivateKey
	keyID string
}

// Load reads an Ed25519 private key in JWK format from path.
//
// Args:
//   - path: file holding a JWK with kty "OKP", crv "Ed25519", and the
//     private seed in "d". A "kid" member, when present, is carried into
//     the protected header of every signature.
//
// Returns:
//   - A signer holding the key.
//   - An error if the file cannot be read or does not hold an Ed25519
//     private key.
func Load(path string) (*Signer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read signing key: %w", err)
	}

	var jwk jose.JSONWebKey
	if err := jwk.UnmarshalJSON(data); err != nil {
		return nil, fmt.Errorf("parse signing key: %w", err)
	}
	key, ok := jwk.Key.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("signing key in %s is not an Ed25519 private key", path)
	}

	return &Signer{key: key, keyID: jwk.KeyID}, nil
}

// KeyID reports the kid of the loaded key, or "" when the JWK had none.
func (s *Signer) KeyID() string {
	return s.keyID
}

// Sign returns a copy of card carrying a detached JWS signature over the
// card's canonical JSON. The input card is not modified. Ed25519 is
// deterministic, so signing the same card twice yields the same
// signature.
func (s *Signer) Sign(card *a2a.AgentCard) (*a2a.AgentCard, error) {
	payload, err := canonicalJSON(card)
	if err != nil {
		return nil, err
	}

	opts := &jose.SignerOptions{}
	if s.keyID != "" {
		opts.WithHeader(jose.HeaderKey("kid"), s.keyID)
	}
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.EdDSA, Key: s.key}, opts)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}

	jws, err := signer.Sign(payload)
	if err != nil {
		return nil, fmt.Errorf("sign agent card: %w", err)
	}
	compact, err := jws.CompactSerialize()
	if err != nil {
		return nil, fmt.Errorf("serialize signature: %w", err)
	}

	// Compact form is header.payload.signature; the payload is dropped
	// because the card itself is the payload.
	parts := strings.Split(compact, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed compact JWS: %d segments", len(parts))
	}

	signed := *card
	signed.Signatures = []a2a.AgentCardSignature{{
		Protected: parts[0],
		Signature: parts[2],
	}}
	return &signed, nil
}

// Verify checks a detached card signature against pub. The compact JWS
// is reassembled from the signature parts and the card's canonical JSON,
// so the card passed in may already carry signatures.
func Verify(card *a2a.AgentCard, sig a2a.AgentCardSignature, pub ed25519.PublicKey) error {
	payload, err := canonicalJSON(card)
	if err != nil {
		return err
	}

	compact := fmt.Sprintf("%s.%s.%s", sig.Protected, base64.RawURLEncoding.EncodeToString(payload), sig.Signature)
	jws, err := jose.ParseSigned(compact, []jose.SignatureAlgorithm{jose.EdDSA})
	if err != nil {
		return fmt.Errorf("parse signature: %w", err)
	}
	if _, err := jws.Verify(pub); err != nil {
		return fmt.Errorf("verify signature: %w", err)
	}
	return nil
}

// canonicalJSON renders the card without its signatures member and with
// object keys sorted, so signer and verifier agree on the payload bytes.
func canonicalJSON(card *a2a.AgentCard) ([]byte, error) {
	data, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("marshal agent card: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode agent card: %w", err)
	}
	delete(raw, "signatures")

	canonical, err := json.Marshal(raw, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("canonicalize agent card: %w", err)
	}
	return canonical, nil
}
