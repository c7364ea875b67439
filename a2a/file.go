// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2a

import (
	"errors"
)

// FileBase holds the metadata shared by both file representations.
type FileBase struct {
	// MimeType is the media type of the file content.
	MimeType string `json:"mimeType,omitzero"`
	// Name is the file name.
	Name string `json:"name,omitzero"`
}

// File represents file content carried by a [FilePart], either inline
// as base64 bytes or by URI reference.
type File interface {
	// Validate checks if the file content is structurally valid.
	Validate() error
}

// FileWithBytes represents a file transported inline as base64 content.
type FileWithBytes struct {
	FileBase

	// Bytes is the base64-encoded file content.
	Bytes string `json:"bytes"`
}

var _ File = (*FileWithBytes)(nil)

// Validate checks if the file content is structurally valid.
func (f *FileWithBytes) Validate() error {
	if f.Bytes == "" {
		return errors.New("file bytes must not be empty")
	}
	return nil
}

// FileWithURI represents a file referenced by URI.
type FileWithURI struct {
	FileBase

	// URI locates the file content.
	URI string `json:"uri"`
}

var _ File = (*FileWithURI)(nil)

// Validate checks if the file content is structurally valid.
func (f *FileWithURI) Validate() error {
	if f.URI == "" {
		return errors.New("file uri must not be empty")
	}
	return nil
}
