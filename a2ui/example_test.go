// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

package a2ui_test

import (
	"fmt"

	"github.com/go-a2a/a2ui-echo/a2ui"
)

func ExampleDocumentBuilder() {
	// Build a confirmation surface with two action buttons.
	doc := a2ui.NewDocumentBuilder().
		WithTitle("Proceed?").
		AddButton("btn_ok", "OK", "clicked_ok").
		AddButton("btn_cancel", "Cancel", "clicked_cancel").
		AddDataString("now", "2025-01-02T03:04:05Z").
		Build()

	fmt.Printf("surface: %s\n", doc.SurfaceUpdate.SurfaceID)
	for _, c := range doc.SurfaceUpdate.Components {
		fmt.Println(c.ID)
	}
	fmt.Printf("root: %s\n", doc.BeginRendering.Root)
	for _, entry := range doc.DataModelUpdate.Contents {
		fmt.Printf("%s=%s\n", entry.Key, entry.ValueString)
	}

	// Output:
	// surface: main
	// root
	// title_text
	// row_buttons
	// btn_ok_text
	// btn_ok
	// btn_cancel_text
	// btn_cancel
	// root: root
	// now=2025-01-02T03:04:05Z
}
