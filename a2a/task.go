// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskState represents the lifecycle state of a task.
type TaskState string

const (
	// TaskStateSubmitted indicates the task has been received.
	TaskStateSubmitted TaskState = "submitted"
	// TaskStateWorking indicates the task is being processed.
	TaskStateWorking TaskState = "working"
	// TaskStateInputRequired indicates the task is waiting for user input.
	TaskStateInputRequired TaskState = "input-required"
	// TaskStateCompleted indicates the task finished successfully.
	TaskStateCompleted TaskState = "completed"
	// TaskStateCanceled indicates the task was canceled.
	TaskStateCanceled TaskState = "canceled"
	// TaskStateFailed indicates the task failed.
	TaskStateFailed TaskState = "failed"
	// TaskStateRejected indicates the task was rejected by the agent.
	TaskStateRejected TaskState = "rejected"
	// TaskStateAuthRequired indicates the task requires authentication.
	TaskStateAuthRequired TaskState = "auth-required"
	// TaskStateUnknown indicates the task state cannot be determined.
	TaskStateUnknown TaskState = "unknown"
)

// TaskStatus represents the current state of a task together with the
// agent turn that produced it.
type TaskStatus struct {
	// State is the lifecycle state of the task.
	State TaskState `json:"state"`
	// Timestamp records when the state was reached, in RFC 3339 UTC.
	Timestamp string `json:"timestamp,omitzero"`
	// Message is the agent turn accompanying the state, if any.
	Message *Message `json:"message,omitzero"`
}

// Task represents the unit of work returned for a message/send call.
type Task struct {
	// Kind is always "task".
	Kind string `json:"kind"`
	// ID is the unique identifier of the task.
	ID string `json:"id"`
	// ContextID groups the task with its conversation context.
	ContextID string `json:"contextId"`
	// Status is the current status of the task.
	Status *TaskStatus `json:"status"`
	// Artifacts holds outputs attached to the task. Always present,
	// empty when the task produced none.
	Artifacts []*Artifact `json:"artifacts"`
	// History holds prior turns. Always present, empty when untracked.
	History []*Message `json:"history"`
	// Metadata is optional metadata associated with the task.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// Artifact represents a named output attached to a task.
type Artifact struct {
	// ArtifactID is the unique identifier of the artifact.
	ArtifactID string `json:"artifactId"`
	// Name is an optional display name.
	Name string `json:"name,omitzero"`
	// Description is an optional description.
	Description string `json:"description,omitzero"`
	// Parts is the content of the artifact.
	Parts []*PartWrapper `json:"parts"`
	// Metadata is optional metadata associated with the artifact.
	Metadata map[string]any `json:"metadata,omitzero"`
}

// NewArtifact creates an artifact from the given parts.
//
// Args:
//   - name: display name of the artifact.
//   - description: description of the artifact, may be empty.
//   - parts: the content of the artifact, at least one part.
//
// Returns:
//   - *Artifact: the artifact with a freshly generated id.
//   - error: if no parts are given or any part is invalid.
func NewArtifact(name, description string, parts ...Part) (*Artifact, error) {
	if len(parts) == 0 {
		return nil, errors.New("artifact requires at least one part")
	}

	wrappers := make([]*PartWrapper, 0, len(parts))
	for _, part := range parts {
		wrapper := NewPartWrapper(part)
		if err := wrapper.Validate(); err != nil {
			return nil, fmt.Errorf("invalid artifact part: %w", err)
		}
		wrappers = append(wrappers, wrapper)
	}

	return &Artifact{
		ArtifactID:  uuid.NewString(),
		Name:        name,
		Description: description,
		Parts:       wrappers,
	}, nil
}

// CompletedTask wraps an agent message in an immediately completed task
// with freshly generated task and context ids.
func CompletedTask(message *Message) *Task {
	return &Task{
		Kind:      KindTask,
		ID:        uuid.NewString(),
		ContextID: uuid.NewString(),
		Status: &TaskStatus{
			State:     TaskStateCompleted,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Message:   message,
		},
		Artifacts: []*Artifact{},
		History:   []*Message{},
	}
}
