// Package ai formats plant-care requests for a generative model and parses
// and validates its answers.
package ai

import "context"

// FieldType is the JSON type of a structured response field.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldInteger FieldType = "integer"
)

// Field describes one property of a structured (JSON) response.
type Field struct {
	Name        string
	Type        FieldType
	Description string
	Enum        []string
	Required    bool
}

// Image is inline image data sent along with a prompt.
type Image struct {
	MIMEType string
	Data     []byte
}

// Turn is one prior message of a conversation. Role is "user" or "model".
type Turn struct {
	Role string
	Text string
}

// Request is a single model call. When Fields is non-empty the model is
// asked for a JSON object with exactly those properties.
type Request struct {
	System  string
	History []Turn
	Prompt  string
	Image   *Image
	Fields  []Field
}

// Generator produces the model's text answer for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}
