package biodata

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed messages.yaml
var messagesYAML []byte

// FieldText is the user-facing text attached to a single field.
type FieldText struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
	Required    string `yaml:"required"`
	Invalid     string `yaml:"invalid"`
}

// Messages is the message catalog of the form.
type Messages struct {
	FallbackRequired string              `yaml:"fallback_required"`
	Submitted        string              `yaml:"submitted"`
	InvalidImage     string              `yaml:"invalid_image"`
	Fields           map[Field]FieldText `yaml:"fields"`
}

// catalog is decoded once at package init; a broken embedded file is a build defect.
var catalog = mustLoadMessages(messagesYAML)

// DefaultMessages returns a copy of the embedded catalog.
func DefaultMessages() Messages {
	m := catalog
	m.Fields = make(map[Field]FieldText, len(catalog.Fields))
	for k, v := range catalog.Fields {
		m.Fields[k] = v
	}
	return m
}

// ParseMessages decodes a catalog and checks that every field has a label,
// a required message and an invalid message.
func ParseMessages(data []byte) (Messages, error) {
	var m Messages
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Messages{}, fmt.Errorf("%w: %w", ErrInvalidMessages, err)
	}
	if m.FallbackRequired == "" || m.Submitted == "" || m.InvalidImage == "" {
		return Messages{}, fmt.Errorf("%w: missing form level message", ErrInvalidMessages)
	}
	for _, f := range Fields {
		t, ok := m.Fields[f]
		if !ok || t.Label == "" || t.Required == "" || t.Invalid == "" {
			return Messages{}, fmt.Errorf("%w: incomplete entry for %q", ErrInvalidMessages, f)
		}
	}
	return m, nil
}

func mustLoadMessages(data []byte) Messages {
	m, err := ParseMessages(data)
	if err != nil {
		panic(err)
	}
	return m
}

// Label returns the display label of f, falling back to its id.
func (m Messages) Label(f Field) string {
	if t, ok := m.Fields[f]; ok && t.Label != "" {
		return t.Label
	}
	return string(f)
}

// Placeholder returns the placeholder text of f, if any.
func (m Messages) Placeholder(f Field) string {
	return m.Fields[f].Placeholder
}

// RequiredMessage returns the message shown when a required field is empty.
// Fields without their own entry get the fallback message.
func (m Messages) RequiredMessage(f Field) string {
	if t, ok := m.Fields[f]; ok && t.Required != "" {
		return t.Required
	}
	return m.FallbackRequired
}

// InvalidMessage returns the message shown when the field's rule fails.
func (m Messages) InvalidMessage(f Field) string {
	return m.Fields[f].Invalid
}
