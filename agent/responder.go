// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"time"

	"github.com/go-a2a/a2ui-echo/a2a"
	"github.com/go-a2a/a2ui-echo/a2ui"
)

// DefaultTitle is the confirmation heading used when the inbound message
// carries no usable title.
const DefaultTitle = "Confirm"

// Respond answers an inbound message with a completed task whose status
// message carries an A2UI confirmation surface.
//
// The surface title echoes back the first A2UI data part of msg when one
// with a usable title field exists; otherwise it falls back to
// [DefaultTitle]. Respond never fails: a malformed document downgrades
// to the default title, never to an error.
//
// Args:
//   - msg: the validated inbound message.
//
// Returns:
//   - A fresh completed task answering msg.
func Respond(msg *a2a.Message) *a2a.Task {
	doc := a2ui.NewDocumentBuilder().
		WithTitle(eventTitle(msg)).
		AddButton("btn_ok", "OK", "clicked_ok").
		AddButton("btn_cancel", "Cancel", "clicked_cancel").
		AddDataString("now", time.Now().UTC().Format(time.RFC3339)).
		Build()

	reply := a2a.NewAgentDataMessage(a2ui.MIMEType, doc)
	return a2a.CompletedTask(reply)
}

// eventTitle extracts the confirmation title from the first A2UI data
// part of msg. The first qualifying part decides the outcome even when
// its document yields no title.
func eventTitle(msg *a2a.Message) string {
	if msg == nil {
		return DefaultTitle
	}
	for _, wrapper := range msg.Parts {
		switch part := wrapper.GetPart().(type) {
		case *a2a.TextPart:
			// Text parts never carry a document.
		case *a2a.FilePart:
			// File parts never carry a document.
		case *a2a.DataPart:
			if part.MimeType != a2ui.MIMEType {
				continue
			}
			if title, ok := titleFromDocument(part.Data); ok {
				return title
			}
			return DefaultTitle
		}
	}
	return DefaultTitle
}

// titleFromDocument digs a human-readable title out of an A2UI document
// payload. Inbound documents are free-form, so candidate fields are
// probed in order of specificity: the name of a userAction, then
// top-level name, label, and title fields.
func titleFromDocument(data any) (string, bool) {
	doc, ok := data.(map[string]any)
	if !ok {
		return "", false
	}
	if action, ok := doc["userAction"].(map[string]any); ok {
		if name, ok := action["name"].(string); ok && name != "" {
			return name, true
		}
	}
	for _, key := range []string{"name", "label", "title"} {
		if value, ok := doc[key].(string); ok && value != "" {
			return value, true
		}
	}
	return "", false
}
