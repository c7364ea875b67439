// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"strings"
	"testing"
	"time"

	"github.com/go-json-experiment/json"
)

func TestCompletedTask(t *testing.T) {
	msg := NewAgentDataMessage("application/json+a2ui", map[string]any{"key": "value"})
	task := CompletedTask(msg)

	if task.Kind != KindTask {
		t.Errorf("Kind = %q, want %q", task.Kind, KindTask)
	}
	if task.ID == "" {
		t.Error("ID is empty")
	}
	if task.ContextID == "" {
		t.Error("ContextID is empty")
	}
	if task.ID == task.ContextID {
		t.Error("ID and ContextID are identical, want distinct ids")
	}

	if task.Status == nil {
		t.Fatal("Status is nil")
	}
	if task.Status.State != TaskStateCompleted {
		t.Errorf("Status.State = %q, want %q", task.Status.State, TaskStateCompleted)
	}
	if task.Status.Message != msg {
		t.Error("Status.Message does not carry the agent message")
	}

	parsed, err := time.Parse(time.RFC3339, task.Status.Timestamp)
	if err != nil {
		t.Errorf("Status.Timestamp %q is not RFC 3339: %v", task.Status.Timestamp, err)
	}
	if loc := parsed.Location(); loc != time.UTC {
		t.Errorf("Status.Timestamp location = %v, want UTC", loc)
	}

	if task.Artifacts == nil {
		t.Error("Artifacts is nil, want empty slice")
	}
	if len(task.Artifacts) != 0 {
		t.Errorf("len(Artifacts) = %d, want 0", len(task.Artifacts))
	}
	if task.History == nil {
		t.Error("History is nil, want empty slice")
	}
}

func TestCompletedTaskFreshIDs(t *testing.T) {
	msg := NewAgentDataMessage("application/json+a2ui", map[string]any{})

	first := CompletedTask(msg)
	second := CompletedTask(msg)

	if first.ID == second.ID {
		t.Errorf("tasks share id %q, want distinct ids", first.ID)
	}
	if first.ContextID == second.ContextID {
		t.Errorf("tasks share context id %q, want distinct ids", first.ContextID)
	}
}

func TestCompletedTaskJSON(t *testing.T) {
	msg := NewAgentDataMessage("application/json+a2ui", map[string]any{"key": "value"})
	task := CompletedTask(msg)

	data, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	// Empty collections must serialize as [] rather than null so clients
	// can iterate without nil checks.
	for _, want := range []string{`"kind":"task"`, `"state":"completed"`, `"artifacts":[]`, `"history":[]`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("marshaled task = %s, want containing %s", data, want)
		}
	}
}

func TestNewArtifact(t *testing.T) {
	textPart := NewTextPart("Hello, World!")
	invalidPart := &TextPart{Kind: "invalid", Text: "Hello"}

	tests := map[string]struct {
		artifactName string
		description  string
		parts        []Part
		wantErr      bool
	}{
		"valid artifact": {
			artifactName: "greeting",
			description:  "a greeting",
			parts:        []Part{textPart},
			wantErr:      false,
		},
		"valid artifact with empty description": {
			artifactName: "greeting",
			parts:        []Part{textPart},
			wantErr:      false,
		},
		"no parts": {
			artifactName: "empty",
			parts:        nil,
			wantErr:      true,
		},
		"invalid part": {
			artifactName: "broken",
			parts:        []Part{invalidPart},
			wantErr:      true,
		},
		"nil part": {
			artifactName: "broken",
			parts:        []Part{textPart, nil},
			wantErr:      true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			artifact, err := NewArtifact(tt.artifactName, tt.description, tt.parts...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewArtifact() error = %v, wantErr %v", err, tt.wantErr)
			}

			if !tt.wantErr {
				if artifact.ArtifactID == "" {
					t.Error("ArtifactID is empty")
				}
				if artifact.Name != tt.artifactName {
					t.Errorf("Name = %q, want %q", artifact.Name, tt.artifactName)
				}
				if len(artifact.Parts) != len(tt.parts) {
					t.Errorf("len(Parts) = %d, want %d", len(artifact.Parts), len(tt.parts))
				}
			}
		})
	}
}
