package filter

import (
	"go-newspulse-automation/internal/collector"
	"go-newspulse-automation/internal/relevance"
)

// MentionedCompanies returns the configured companies named anywhere in the
// article. A cheap whole-word gate that runs before the full scoring pass,
// so articles about nobody we track never reach NER.
func MentionedCompanies(article collector.Article, store *relevance.ContextStore) []string {
	text := article.Title + " " + article.Summary + " " + article.Content

	var matched []string
	for _, name := range store.Names() {
		if relevance.MentionCount(text, name) > 0 {
			matched = append(matched, name)
		}
	}
	return matched
}

// ShouldIncludeArticle is the pre-scoring keep/drop decision.
func ShouldIncludeArticle(article collector.Article, store *relevance.ContextStore) bool {
	//must name at least one tracked company
	if len(MentionedCompanies(article, store)) == 0 {
		return false
	}

	//must be recent (<= 60 days)
	if !IsRecentArticle(article.Published) {
		return false
	}

	return true
}
