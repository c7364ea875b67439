// Copyright 2025 The Go A2A Authors
// SPDX-License-Identifier: Apache-2.0

// Package a2ui models A2UI v0.8 documents: the surface, data model, and
// rendering messages an agent embeds in a message data part to describe a
// user interface declaratively.
package a2ui

// MIMEType identifies A2UI payloads inside message data parts.
const MIMEType = "application/json+a2ui"

// StandardCatalogID is the v0.8 standard component catalog. Optional in
// beginRendering but recommended so renderers resolve components
// consistently.
const StandardCatalogID = "https://a2ui.org/specification/v0_8/standard_catalog_definition.json"

const (
	// DefaultSurfaceID is the surface addressed when none is chosen.
	DefaultSurfaceID = "main"

	// RootComponentID is the component the renderer starts from.
	RootComponentID = "root"
)

// Component is one entry in a surface's adjacency list: an id plus a
// single-key map from the catalog component name to its properties.
type Component struct {
	// ID is the identifier other components reference as a child.
	ID string `json:"id"`
	// Component maps the catalog component name to its properties.
	Component map[string]any `json:"component"`
}

// SurfaceUpdate declares the full component adjacency list of a surface.
type SurfaceUpdate struct {
	// SurfaceID addresses the surface being updated.
	SurfaceID string `json:"surfaceId"`
	// Components is the adjacency list of the surface.
	Components []Component `json:"components"`
}

// DataEntry is one keyed value in a data model update. The root of the
// data model is a map, so every entry carries an explicit key.
type DataEntry struct {
	// Key names the entry.
	Key string `json:"key"`
	// ValueString is the string value of the entry.
	ValueString string `json:"valueString"`
}

// DataModelUpdate writes keyed entries at a path in the surface's data model.
type DataModelUpdate struct {
	// SurfaceID addresses the surface whose data model is updated.
	SurfaceID string `json:"surfaceId"`
	// Path locates the map being updated; "/" is the root.
	Path string `json:"path"`
	// Contents holds the entries written at Path.
	Contents []DataEntry `json:"contents"`
}

// BeginRendering signals the renderer to start drawing a surface.
type BeginRendering struct {
	// SurfaceID addresses the surface to render.
	SurfaceID string `json:"surfaceId"`
	// Root is the id of the component to render first.
	Root string `json:"root"`
	// CatalogID optionally pins the component catalog.
	CatalogID string `json:"catalogId,omitzero"`
}

// Document bundles the three v0.8 messages describing one renderable
// surface. It is carried as the data of a single message part.
type Document struct {
	// SurfaceUpdate declares the components of the surface.
	SurfaceUpdate *SurfaceUpdate `json:"surfaceUpdate"`
	// DataModelUpdate seeds the surface's data model.
	DataModelUpdate *DataModelUpdate `json:"dataModelUpdate"`
	// BeginRendering starts the renderer.
	BeginRendering *BeginRendering `json:"beginRendering"`
}

// DocumentBuilder assembles a titled surface with action buttons. The
// zero builder is not usable; create one with [NewDocumentBuilder].
type DocumentBuilder struct {
	surfaceID string
	title     string
	buttons   []buttonSpec
	data      []DataEntry
}

type buttonSpec struct {
	id     string
	label  string
	action string
}

// NewDocumentBuilder creates a new [DocumentBuilder] targeting the
// default surface.
func NewDocumentBuilder() *DocumentBuilder {
	return &DocumentBuilder{
		surfaceID: DefaultSurfaceID,
	}
}

// WithSurfaceID sets the surface the document addresses.
func (b *DocumentBuilder) WithSurfaceID(id string) *DocumentBuilder {
	b.surfaceID = id
	return b
}

// WithTitle sets the heading text of the surface.
func (b *DocumentBuilder) WithTitle(title string) *DocumentBuilder {
	b.title = title
	return b
}

// AddButton appends a button with the given component id, label, and
// action name. Buttons render in a centered row in insertion order.
func (b *DocumentBuilder) AddButton(id, label, action string) *DocumentBuilder {
	b.buttons = append(b.buttons, buttonSpec{id: id, label: label, action: action})
	return b
}

// AddDataString appends a keyed string entry to the surface's data model.
func (b *DocumentBuilder) AddDataString(key, value string) *DocumentBuilder {
	b.data = append(b.data, DataEntry{Key: key, ValueString: value})
	return b
}

// Build assembles the document. The surface is a column holding the
// title heading and a centered button row; each button is a Button
// component wrapping its own Text child.
func (b *DocumentBuilder) Build() *Document {
	buttonIDs := make([]string, 0, len(b.buttons))
	for _, button := range b.buttons {
		buttonIDs = append(buttonIDs, button.id)
	}

	components := []Component{
		{ID: RootComponentID, Component: columnComponent("title_text", "row_buttons")},
		{ID: "title_text", Component: headingComponent(b.title)},
		{ID: "row_buttons", Component: rowComponent(buttonIDs)},
	}
	for _, button := range b.buttons {
		components = append(components,
			Component{ID: button.id + "_text", Component: textComponent(button.label)},
			Component{ID: button.id, Component: buttonComponent(button.id+"_text", button.action)},
		)
	}

	contents := b.data
	if contents == nil {
		contents = []DataEntry{}
	}

	return &Document{
		SurfaceUpdate: &SurfaceUpdate{
			SurfaceID:  b.surfaceID,
			Components: components,
		},
		DataModelUpdate: &DataModelUpdate{
			SurfaceID: b.surfaceID,
			Path:      "/",
			Contents:  contents,
		},
		BeginRendering: &BeginRendering{
			SurfaceID: b.surfaceID,
			Root:      RootComponentID,
			CatalogID: StandardCatalogID,
		},
	}
}

func columnComponent(children ...string) map[string]any {
	return map[string]any{
		"Column": map[string]any{
			"children": map[string]any{"explicitList": children},
		},
	}
}

func rowComponent(children []string) map[string]any {
	return map[string]any{
		"Row": map[string]any{
			"alignment": "center",
			"children":  map[string]any{"explicitList": children},
		},
	}
}

func headingComponent(text string) map[string]any {
	return map[string]any{
		"Text": map[string]any{
			"usageHint": "h3",
			"text":      map[string]any{"literalString": text},
		},
	}
}

func textComponent(text string) map[string]any {
	return map[string]any{
		"Text": map[string]any{
			"text": map[string]any{"literalString": text},
		},
	}
}

func buttonComponent(childID, action string) map[string]any {
	return map[string]any{
		"Button": map[string]any{
			"child":  childID,
			"action": map[string]any{"name": action},
		},
	}
}
