// VADER sentiment over retained article text.

package analysis

import "github.com/jonreiter/govader"

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// compound-score cutoffs for the three-way classification
const sentimentThreshold = 0.05

type SentimentAnalyzer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{vader: govader.NewSentimentIntensityAnalyzer()}
}

// Classify returns the sentiment label and the compound score in [-1, 1].
func (a *SentimentAnalyzer) Classify(text string) (SentimentLabel, float64) {
	if text == "" {
		return SentimentNeutral, 0
	}

	scores := a.vader.PolarityScores(text)
	switch {
	case scores.Compound > sentimentThreshold:
		return SentimentPositive, scores.Compound
	case scores.Compound < -sentimentThreshold:
		return SentimentNegative, scores.Compound
	default:
		return SentimentNeutral, scores.Compound
	}
}
