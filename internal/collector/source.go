// Define an interface for all article sources
// Ensure consistency

package collector

import (
	"context"
)

type Article struct {
	Title     string
	URL       string
	Source    string
	Published string
	Summary   string
	Content   string
	//filled in by the pipeline
	Company        string
	Confidence     float64
	Mentions       int
	Sentiment      string
	SentimentScore float64
	CollectedAt    string
}

//Source defines the interface that all article sources must implement
type Source interface {
	//Collect candidate articles from the source
	Collect(ctx context.Context) ([]Article, error)

	//Name is the source name (Google News, RSS, ...)
	Name() string
}
