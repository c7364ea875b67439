// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"github.com/google/uuid"
)

// Role represents the author of a message.
type Role string

const (
	// RoleUser indicates the message is from the user.
	RoleUser Role = "user"

	// RoleAgent indicates the message is from the agent.
	RoleAgent Role = "agent"
)

// Message represents a single turn exchanged between a user and an agent.
type Message struct {
	// Kind is always "message".
	Kind string `json:"kind"`
	// Role identifies the author of the message.
	Role Role `json:"role"`
	// Parts is the ordered content of the message.
	Parts []*PartWrapper `json:"parts"`
	// MessageID is the unique identifier of the message.
	MessageID string `json:"messageId"`
	// ContextID optionally groups related messages.
	ContextID string `json:"contextId,omitzero"`
	// TaskID optionally links the message to a task.
	TaskID string `json:"taskId,omitzero"`
	// Metadata is optional metadata associated with the message.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// MessageSendParams represents the params object of a message/send request.
type MessageSendParams struct {
	// Message is the message being sent to the agent.
	Message *Message `json:"message"`
	// Metadata is optional metadata associated with the request.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// NewAgentMessage creates an agent-authored message from the given parts.
//
// Args:
//   - parts: the content of the message, in order.
//
// Returns:
//   - *Message: a message with role "agent" and a freshly generated id.
func NewAgentMessage(parts ...Part) *Message {
	wrappers := make([]*PartWrapper, 0, len(parts))
	for _, part := range parts {
		wrappers = append(wrappers, NewPartWrapper(part))
	}

	return &Message{
		Kind:      KindMessage,
		Role:      RoleAgent,
		Parts:     wrappers,
		MessageID: uuid.NewString(),
	}
}

// NewAgentDataMessage creates an agent-authored message carrying a single
// data part with the given MIME type and payload.
func NewAgentDataMessage(mimeType string, data any) *Message {
	return NewAgentMessage(NewDataPart(mimeType, data))
}

// GetTextParts returns the text content of all text parts in order.
func (m *Message) GetTextParts() []string {
	var texts []string
	for _, wrapper := range m.Parts {
		if part, ok := wrapper.GetPart().(*TextPart); ok {
			texts = append(texts, part.Text)
		}
	}
	return texts
}
