// Aggregate retained articles into per-company statistics for the report.

package analysis

import (
	"sort"

	"go-newspulse-automation/internal/collector"
)

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type CompanyStats struct {
	Company       string      `json:"company"`
	Articles      int         `json:"articles"`
	AvgConfidence float64     `json:"avg_confidence"`
	MaxConfidence float64     `json:"max_confidence"`
	Positive      int         `json:"positive"`
	Negative      int         `json:"negative"`
	Neutral       int         `json:"neutral"`
	AvgSentiment  float64     `json:"avg_sentiment"`
	DailyVolume   []DayCount  `json:"daily_volume"`
	TopTerms      []TermCount `json:"top_terms"`
}

const topTermsPerCompany = 10

// Summarize groups scored articles by company and computes the aggregates
// the report renders. Companies are ordered by article count, then name.
func Summarize(articles []collector.Article) []CompanyStats {
	byCompany := make(map[string][]collector.Article)
	for _, a := range articles {
		byCompany[a.Company] = append(byCompany[a.Company], a)
	}

	stats := make([]CompanyStats, 0, len(byCompany))
	for company, group := range byCompany {
		s := CompanyStats{Company: company, Articles: len(group)}

		daily := make(map[string]int)
		var texts []string
		var confidenceSum, sentimentSum float64
		for _, a := range group {
			confidenceSum += a.Confidence
			if a.Confidence > s.MaxConfidence {
				s.MaxConfidence = a.Confidence
			}

			sentimentSum += a.SentimentScore
			switch SentimentLabel(a.Sentiment) {
			case SentimentPositive:
				s.Positive++
			case SentimentNegative:
				s.Negative++
			default:
				s.Neutral++
			}

			if a.Published != "" {
				daily[a.Published]++
			}
			texts = append(texts, a.Title+" "+a.Content)
		}

		s.AvgConfidence = confidenceSum / float64(len(group))
		s.AvgSentiment = sentimentSum / float64(len(group))
		s.TopTerms = TopTerms(texts, topTermsPerCompany)

		for day, count := range daily {
			s.DailyVolume = append(s.DailyVolume, DayCount{Day: day, Count: count})
		}
		sort.Slice(s.DailyVolume, func(i, j int) bool {
			return s.DailyVolume[i].Day < s.DailyVolume[j].Day
		})

		stats = append(stats, s)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Articles != stats[j].Articles {
			return stats[i].Articles > stats[j].Articles
		}
		return stats[i].Company < stats[j].Company
	})
	return stats
}
