// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"strings"
	"testing"

	"github.com/go-json-experiment/json"
)

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		got         *JSONRPCError
		wantCode    int
		wantMessage string
	}{
		"parse error": {
			got:         NewJSONParseError(),
			wantCode:    -32700,
			wantMessage: "Invalid JSON payload",
		},
		"invalid request": {
			got:         NewInvalidRequestError(),
			wantCode:    -32600,
			wantMessage: "Request payload validation error",
		},
		"method not found": {
			got:         NewMethodNotFoundError(),
			wantCode:    -32601,
			wantMessage: "Method not found",
		},
		"invalid params": {
			got:         NewInvalidParamsError(),
			wantCode:    -32602,
			wantMessage: "Invalid parameters",
		},
		"internal error": {
			got:         NewInternalError(),
			wantCode:    -32603,
			wantMessage: "Internal error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if tt.got.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.got.Code, tt.wantCode)
			}
			if tt.got.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", tt.got.Message, tt.wantMessage)
			}
		})
	}
}

func TestJSONRPCResponseMarshal(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		resp *JSONRPCResponse
		want []string
	}{
		"error envelope with nil id carries explicit null": {
			resp: NewErrorResponse(nil, NewJSONParseError()),
			want: []string{`"id":null`, `"code":-32700`, `"jsonrpc":"2.0"`},
		},
		"error envelope echoes string id": {
			resp: NewErrorResponse("req-1", NewMethodNotFoundError()),
			want: []string{`"id":"req-1"`, `"code":-32601`},
		},
		"success envelope echoes numeric id": {
			resp: NewSuccessResponse(float64(7), map[string]any{"ok": true}),
			want: []string{`"id":7`, `"result":{"ok":true}`},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			data, err := json.Marshal(tt.resp)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(data), want) {
					t.Errorf("marshaled response = %s, want containing %s", data, want)
				}
			}
		})
	}
}

func TestJSONRPCRequestUnmarshal(t *testing.T) {
	t.Parallel()

	body := `{"jsonrpc":"2.0","id":"abc","method":"message/send","params":{"message":{"parts":[]}}}`

	var req JSONRPCRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}

	if req.JSONRPC != JSONRPCVersion {
		t.Errorf("JSONRPC = %q, want %q", req.JSONRPC, JSONRPCVersion)
	}
	if req.ID != "abc" {
		t.Errorf("ID = %v, want abc", req.ID)
	}
	if req.Method != MethodMessageSend {
		t.Errorf("Method = %q, want %q", req.Method, MethodMessageSend)
	}
	if len(req.Params) == 0 {
		t.Error("Params is empty, want raw params preserved")
	}

	var params MessageSendParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		t.Fatalf("json.Unmarshal(params) error = %v", err)
	}
	if params.Message == nil {
		t.Fatal("params.Message = nil, want message")
	}
	if params.Message.Parts == nil {
		t.Error("params.Message.Parts = nil, want empty slice")
	}
}
