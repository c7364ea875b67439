// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package agent implements the message/send behavior of the A2UI echo
// agent: validating JSON-RPC envelopes and answering every valid message
// with a completed task carrying an A2UI confirmation surface.
package agent

import (
	"github.com/go-json-experiment/json"

	"github.com/go-a2a/a2ui-echo/a2a"
)

// Envelope is the decoded portion of a JSON-RPC request needed to answer
// it. ID is best-effort: it is recovered even from envelopes rejected
// later in validation so error responses can echo it.
type Envelope struct {
	// ID is the request id, or nil when absent or unrecoverable.
	ID any
	// Method is the requested method, or "" when absent.
	Method string
	// Message is the validated inbound message. Nil unless validation
	// succeeded.
	Message *a2a.Message
}

// ValidateEnvelope parses raw as a JSON-RPC message/send request.
//
// The returned envelope is always non-nil and carries whatever id could
// be recovered. The error, when non-nil, is the JSON-RPC error the
// caller must answer with; validation stops at the first failure.
//
// Args:
//   - raw: the request body as received on the wire.
//
// Returns:
//   - The decoded envelope.
//   - The JSON-RPC error to respond with, or nil when raw is a valid
//     message/send request.
func ValidateEnvelope(raw []byte) (*Envelope, *a2a.JSONRPCError) {
	env := &Envelope{}

	// The probe decode separates malformed JSON from well-formed JSON
	// that is not a valid envelope, and recovers the id for the latter.
	var probe any
	if err := json.Unmarshal(raw, &probe); err != nil {
		return env, a2a.NewJSONParseError()
	}
	if obj, ok := probe.(map[string]any); ok {
		env.ID = obj["id"]
	}

	var req a2a.JSONRPCRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return env, a2a.NewInvalidRequestError()
	}
	env.ID = req.ID
	env.Method = req.Method

	if req.JSONRPC != a2a.JSONRPCVersion || req.Method == "" {
		return env, a2a.NewInvalidRequestError()
	}
	if req.Method != a2a.MethodMessageSend {
		return env, a2a.NewMethodNotFoundError()
	}

	if len(req.Params) == 0 {
		return env, a2a.NewInvalidParamsError()
	}
	var params a2a.MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return env, a2a.NewInvalidParamsError()
	}
	if params.Message == nil || params.Message.Parts == nil {
		return env, a2a.NewInvalidParamsError()
	}

	env.Message = params.Message
	return env, nil
}
