// Define the named-entity recognition capability
// Implementations are chosen at composition time (see cmd/collector)

package ner

import "errors"

// ErrUnavailable is returned by the Disabled recognizer. Callers that can
// degrade (the relevance scorer) substitute a neutral sub-score instead of
// failing.
var ErrUnavailable = errors.New("ner: recognition capability disabled")

// EntityType classifies a recognized span.
type EntityType string

const (
	Organization EntityType = "ORG"
	Person       EntityType = "PERSON"
	Location     EntityType = "GPE"
	Other        EntityType = "OTHER"
)

// Entity is one recognized span of text.
type Entity struct {
	Text string
	Type EntityType
}

// Recognizer extracts named entities from a snippet of text.
type Recognizer interface {
	Recognize(text string) ([]Entity, error)

	// Name is the backend name (prose, groq, ...)
	Name() string
}

// Disabled is the constant-fallback implementation used when no NER backend
// is configured. Recognize always reports ErrUnavailable.
type Disabled struct{}

func (Disabled) Recognize(string) ([]Entity, error) {
	return nil, ErrUnavailable
}

func (Disabled) Name() string {
	return "disabled"
}
