// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
)

// Part kind discriminators.
const (
	// KindText marks a text part.
	KindText = "text"

	// KindData marks a structured data part.
	KindData = "data"

	// KindFile marks a file part.
	KindFile = "file"
)

// Part represents a unit of content within a message.
// The concrete types are [TextPart], [DataPart], and [FilePart],
// discriminated on the wire by their kind field.
type Part interface {
	// GetKind returns the kind of the part.
	GetKind() string

	// GetMetadata returns the metadata associated with the part.
	GetMetadata() map[string]any

	// Validate checks if the part is structurally valid.
	Validate() error
}

// TextPart represents a text segment within a message.
type TextPart struct {
	// Kind is always "text".
	Kind string `json:"kind"`
	// Text is the text content.
	Text string `json:"text"`
	// Metadata is optional metadata associated with the part.
	Metadata map[string]any `json:"metadata,omitzero"`
}

var _ Part = (*TextPart)(nil)

// NewTextPart creates a new [TextPart] with the given text.
func NewTextPart(text string) *TextPart {
	return &TextPart{
		Kind: KindText,
		Text: text,
	}
}

// GetKind returns the kind of the part.
func (p *TextPart) GetKind() string { return p.Kind }

// GetMetadata returns the metadata associated with the part.
func (p *TextPart) GetMetadata() map[string]any { return p.Metadata }

// Validate checks if the text part is structurally valid.
func (p *TextPart) Validate() error {
	if p.Kind != KindText {
		return fmt.Errorf("text part kind must be %q, got %q", KindText, p.Kind)
	}
	if p.Text == "" {
		return errors.New("text part text must not be empty")
	}
	return nil
}

// DataPart represents a structured data segment within a message.
// A DataPart carrying a recognized MIME type embeds a typed payload,
// such as a UI event or a UI document.
type DataPart struct {
	// Kind is always "data".
	Kind string `json:"kind"`
	// MimeType identifies the payload format, if any.
	MimeType string `json:"mimeType,omitzero"`
	// Data is the structured content. Inbound payloads decode to
	// map[string]any; outbound payloads may be any marshalable value.
	Data any `json:"data"`
	// Metadata is optional metadata associated with the part.
	Metadata map[string]any `json:"metadata,omitzero"`
}

var _ Part = (*DataPart)(nil)

// NewDataPart creates a new [DataPart] with the given MIME type and payload.
func NewDataPart(mimeType string, data any) *DataPart {
	return &DataPart{
		Kind:     KindData,
		MimeType: mimeType,
		Data:     data,
	}
}

// GetKind returns the kind of the part.
func (p *DataPart) GetKind() string { return p.Kind }

// GetMetadata returns the metadata associated with the part.
func (p *DataPart) GetMetadata() map[string]any { return p.Metadata }

// Validate checks if the data part is structurally valid.
func (p *DataPart) Validate() error {
	if p.Kind != KindData {
		return fmt.Errorf("data part kind must be %q, got %q", KindData, p.Kind)
	}
	if p.Data == nil {
		return errors.New("data part data must not be nil")
	}
	return nil
}

// FilePart represents a file segment within a message.
type FilePart struct {
	// Kind is always "file".
	Kind string `json:"kind"`
	// File is the file content, inline or by reference.
	File File `json:"file"`
	// Metadata is optional metadata associated with the part.
	Metadata map[string]any `json:"metadata,omitzero"`
}

var _ Part = (*FilePart)(nil)

// NewFilePart creates a new [FilePart] with the given file content.
func NewFilePart(file File) *FilePart {
	return &FilePart{
		Kind: KindFile,
		File: file,
	}
}

// GetKind returns the kind of the part.
func (p *FilePart) GetKind() string { return p.Kind }

// GetMetadata returns the metadata associated with the part.
func (p *FilePart) GetMetadata() map[string]any { return p.Metadata }

// Validate checks if the file part is structurally valid.
func (p *FilePart) Validate() error {
	if p.Kind != KindFile {
		return fmt.Errorf("file part kind must be %q, got %q", KindFile, p.Kind)
	}
	if p.File == nil {
		return errors.New("file part file must not be nil")
	}
	return p.File.Validate()
}

// UnmarshalJSON implements [json.Unmarshaler].
// The file content decodes to [FileWithBytes] when a bytes member is
// present and to [FileWithURI] otherwise.
func (p *FilePart) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
		File struct {
			MimeType string `json:"mimeType"`
			Name     string `json:"name"`
			Bytes    string `json:"bytes"`
			URI      string `json:"uri"`
		} `json:"file"`
		Metadata map[string]any `json:"metadata"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("unmarshal file part: %w", err)
	}

	p.Kind = probe.Kind
	p.Metadata = probe.Metadata

	base := FileBase{
		MimeType: probe.File.MimeType,
		Name:     probe.File.Name,
	}
	if probe.File.Bytes != "" {
		p.File = &FileWithBytes{FileBase: base, Bytes: probe.File.Bytes}
		return nil
	}
	p.File = &FileWithURI{FileBase: base, URI: probe.File.URI}
	return nil
}

// PartWrapper wraps a [Part] to provide kind-discriminated JSON
// marshaling and unmarshaling.
type PartWrapper struct {
	part Part
}

// NewPartWrapper creates a new [PartWrapper] around part.
func NewPartWrapper(part Part) *PartWrapper {
	return &PartWrapper{part: part}
}

// GetPart returns the wrapped part.
func (w *PartWrapper) GetPart() Part { return w.part }

// Validate checks if the wrapped part is structurally valid.
func (w *PartWrapper) Validate() error {
	if w.part == nil {
		return errors.New("part must not be nil")
	}
	return w.part.Validate()
}

// MarshalJSON implements [json.Marshaler].
func (w *PartWrapper) MarshalJSON() ([]byte, error) {
	if w.part == nil {
		return nil, errors.New("cannot marshal nil part")
	}
	return json.Marshal(w.part)
}

// UnmarshalJSON implements [json.Unmarshaler].
// The concrete part type is selected by the kind discriminator; a part
// missing its kind, or carrying one outside the protocol's variant set,
// is a structural error.
func (w *PartWrapper) UnmarshalJSON(data []byte) error {
	var probe struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("probe part kind: %w", err)
	}

	switch probe.Kind {
	case KindText:
		var part TextPart
		if err := json.Unmarshal(data, &part); err != nil {
			return fmt.Errorf("unmarshal text part: %w", err)
		}
		w.part = &part

	case KindData:
		var part DataPart
		if err := json.Unmarshal(data, &part); err != nil {
			return fmt.Errorf("unmarshal data part: %w", err)
		}
		w.part = &part

	case KindFile:
		var part FilePart
		if err := json.Unmarshal(data, &part); err != nil {
			return fmt.Errorf("unmarshal file part: %w", err)
		}
		w.part = &part

	case "":
		return errors.New("part missing kind")

	default:
		return fmt.Errorf("unknown part kind: %q", probe.Kind)
	}

	return nil
}
