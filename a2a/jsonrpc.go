// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"github.com/go-json-experiment/json/jsontext"
)

// JSONRPCVersion is the only protocol version accepted in request envelopes.
const JSONRPCVersion = "2.0"

// MethodMessageSend is the only RPC method this agent serves.
const MethodMessageSend = "message/send"

// JSONRPCRequest represents a JSON-RPC 2.0 request.
// Params is kept raw so the method handler can decode it in a second stage.
type JSONRPCRequest struct {
	// JSONRPC version, always "2.0".
	JSONRPC string `json:"jsonrpc"`
	// ID is a unique identifier for the request/response correlation.
	ID any `json:"id,omitzero"` // string, number, or null
	// Method identifies the operation to perform.
	Method string `json:"method"`
	// Params contains the raw parameters for the method.
	Params jsontext.Value `json:"params,omitzero"`
}

// JSONRPCError represents a JSON-RPC 2.0 error.
type JSONRPCError struct {
	// Code is the error code.
	Code int `json:"code"`
	// Message is a short description of the error.
	Message string `json:"message"`
	// Data contains optional additional error details.
	Data any `json:"data,omitempty"`
}

// JSONRPCResponse represents a JSON-RPC 2.0 response.
// ID is emitted even when nil so that error envelopes for undecodable
// requests carry an explicit null id.
type JSONRPCResponse struct {
	// JSONRPC version, always "2.0".
	JSONRPC string `json:"jsonrpc"`
	// ID echoes the request identifier, or null when it could not be recovered.
	ID any `json:"id"`
	// Result contains the successful result data (can be null).
	// Mutually exclusive with Error.
	Result any `json:"result,omitempty"`
	// Error contains an error object if the request failed.
	// Mutually exclusive with Result.
	Error *JSONRPCError `json:"error,omitempty"`
}

// NewSuccessResponse creates a success envelope carrying result.
func NewSuccessResponse(id, result any) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  result,
	}
}

// NewErrorResponse creates an error envelope carrying rpcErr.
func NewErrorResponse(id any, rpcErr *JSONRPCError) *JSONRPCResponse {
	return &JSONRPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error:   rpcErr,
	}
}

// Standard JSON-RPC 2.0 error codes
const (
	// JSONParseErrorCode indicates invalid JSON payload.
	JSONParseErrorCode = -32700
	// InvalidRequestErrorCode indicates request payload validation error.
	InvalidRequestErrorCode = -32600
	// MethodNotFoundErrorCode indicates the method does not exist.
	MethodNotFoundErrorCode = -32601
	// InvalidParamsErrorCode indicates invalid method parameters.
	InvalidParamsErrorCode = -32602
	// InternalErrorCode indicates an internal server error.
	InternalErrorCode = -32603
)

// errorMessages is the static code-to-message table backing the error
// constructors below.
var errorMessages = map[int]string{
	JSONParseErrorCode:      "Invalid JSON payload",
	InvalidRequestErrorCode: "Request payload validation error",
	MethodNotFoundErrorCode: "Method not found",
	InvalidParamsErrorCode:  "Invalid parameters",
	InternalErrorCode:       "Internal error",
}

// NewJSONParseError creates a new JSONParseError.
func NewJSONParseError() *JSONRPCError {
	return &JSONRPCError{
		Code:    JSONParseErrorCode,
		Message: errorMessages[JSONParseErrorCode],
		Data:    nil,
	}
}

// NewInvalidRequestError creates a new InvalidRequestError.
func NewInvalidRequestError() *JSONRPCError {
	return &JSONRPCError{
		Code:    InvalidRequestErrorCode,
		Message: errorMessages[InvalidRequestErrorCode],
		Data:    nil,
	}
}

// NewMethodNotFoundError creates a new MethodNotFoundError.
func NewMethodNotFoundError() *JSONRPCError {
	return &JSONRPCError{
		Code:    MethodNotFoundErrorCode,
		Message: errorMessages[MethodNotFoundErrorCode],
		Data:    nil,
	}
}

// NewInvalidParamsError creates a new InvalidParamsError.
func NewInvalidParamsError() *JSONRPCError {
	return &JSONRPCError{
		Code:    InvalidParamsErrorCode,
		Message: errorMessages[InvalidParamsErrorCode],
		Data:    nil,
	}
}

// NewInternalError creates a new InternalError.
func NewInternalError() *JSONRPCError {
	return &JSONRPCError{
		Code:    InternalErrorCode,
		Message: errorMessages[InternalErrorCode],
		Data:    nil,
	}
}
