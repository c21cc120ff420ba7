package models

import "fmt"

// ResourceType tags the variant of a Resource
type ResourceType string

const (
	ResourceFile ResourceType = "file"
	ResourceLink ResourceType = "link"
)

// Resource is an attachment on a task: either an uploaded file or an external link
type Resource struct {
	Type ResourceType `json:"type"`
	Name string       `json:"name"`
	URL  string       `json:"url"`
}

// ResourceStyle is the presentation of one resource variant
type ResourceStyle struct {
	Glyph string
	Label string
}

// StyleFor maps every resource variant to its glyph and label.
// Adding a ResourceType without a case here is caught by TestStyleFor_Total.
func StyleFor(t ResourceType) (ResourceStyle, error) {
	switch t {
	case ResourceFile:
		return ResourceStyle{Glyph: "📄", Label: "file"}, nil
	case ResourceLink:
		return ResourceStyle{Glyph: "🔗", Label: "link"}, nil
	}
	return ResourceStyle{}, fmt.Errorf("%w: %q", ErrUnknownResourceType, t)
}

// ResourceTypes lists every known resource variant
func ResourceTypes() []ResourceType {
	return []ResourceType{ResourceFile, ResourceLink}
}

// DisplayName returns the resource name, falling back to its URL
func (r Resource) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.URL
}

// Style returns the resource's glyph and label. Variants this client does
// not know yet render as "?" with their raw type as the label.
func (r Resource) Style() ResourceStyle {
	if style, err := StyleFor(r.Type); err == nil {
		return style
	}
	label := string(r.Type)
	if label == "" {
		label = "unknown"
	}
	return ResourceStyle{Glyph: "?", Label: label}
}
