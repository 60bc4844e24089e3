package ner

import (
	"fmt"

	"github.com/jdkato/prose/v2"
)

// ProseRecognizer runs prose's bundled NER model locally. No network, no
// API key, synchronous CPU work.
type ProseRecognizer struct{}

func NewProseRecognizer() *ProseRecognizer {
	return &ProseRecognizer{}
}

func (r *ProseRecognizer) Name() string {
	return "prose"
}

func (r *ProseRecognizer) Recognize(text string) ([]Entity, error) {
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose document failed: %w", err)
	}

	var entities []Entity
	for _, ent := range doc.Entities() {
		entities = append(entities, Entity{
			Text: ent.Text,
			Type: mapProseLabel(ent.Label),
		})
	}
	return entities, nil
}

// mapProseLabel converts prose labels to our entity types.
// prose's default model folds most non-person proper nouns (companies
// included) into GPE, so GPE spans are treated as organization-like here.
func mapProseLabel(label string) EntityType {
	switch label {
	case "ORG", "ORGANIZATION":
		return Organization
	case "GPE":
		return Organization
	case "PERSON":
		return Person
	default:
		return Other
	}
}
