package models

import (
	"time"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Article is one retained (relevant) article row.
type Article struct {
	ID             string    `json:"id"`
	Source         string    `json:"source"`
	URL            string    `json:"url"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Published      string    `json:"published"`
	BodyText       string    `json:"body_text"`
	Confidence     float64   `json:"confidence"`
	Mentions       int       `json:"mentions"`
	Sentiment      Sentiment `json:"sentiment"`
	SentimentScore float64   `json:"sentiment_score"`
	CreatedAt      time.Time `json:"created_at"`
}
