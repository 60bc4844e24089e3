// Manual harness: score a text file against one configured company.
// Usage: go run ./cmd/score <company> <textfile>

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-newspulse-automation/internal/config"
	"go-newspulse-automation/internal/extract"
	"go-newspulse-automation/internal/ner"
	"go-newspulse-automation/internal/relevance"
)

func main() {
	if len(os.Args) != 3 {
		log.Fatal("Usage: score <company> <textfile>")
	}
	company, path := os.Args[1], os.Args[2]

	cfg := config.Load()
	store := relevance.NewContextStore(cfg.EntityProfiles())

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}
	text := extract.FoldDiacritics(extract.CollapseWhitespace(string(raw)))

	var recognizer ner.Recognizer
	switch cfg.NERMode {
	case "groq":
		recognizer = ner.NewGroqRecognizer(cfg.GroqAPIKey)
	case "off":
		recognizer = ner.Disabled{}
	default:
		recognizer = ner.NewProseRecognizer()
	}

	scorer := relevance.NewScorer(recognizer)
	breakdown := scorer.Score(text, store.ProfileFor(company))

	out, err := json.MarshalIndent(breakdown, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal breakdown: %v", err)
	}
	fmt.Println(string(out))
}
