package filter

import (
	"testing"
	"time"

	"go-newspulse-automation/internal/collector"
	"go-newspulse-automation/internal/relevance"
)

func testStore() *relevance.ContextStore {
	return relevance.NewContextStore([]relevance.EntityProfile{
		{Name: "Traba"},
		{Name: "Acme"},
	})
}

func TestShouldIncludeArticle(t *testing.T) {
	tests := []struct {
		name     string
		article  collector.Article
		expected bool
	}{
		{
			name: "Tracked company in title",
			article: collector.Article{
				Title:     "Traba raises Series B",
				Published: time.Now().Format("2006-01-02"),
			},
			expected: true,
		},
		{
			name: "No tracked company",
			article: collector.Article{
				Title:   "Gig economy trends for 2026",
				Content: "Nothing about anyone we follow.",
			},
			expected: false,
		},
		{
			name: "Company name only as substring",
			article: collector.Article{
				Title: "The Trabant is back",
			},
			expected: false,
		},
		{
			name: "Too old",
			article: collector.Article{
				Title:     "Acme in the news",
				Published: time.Now().AddDate(0, 0, -90).Format("2006-01-02"),
			},
			expected: false,
		},
		{
			name: "Unparseable date is kept",
			article: collector.Article{
				Title:     "Acme in the news",
				Published: "sometime recently",
			},
			expected: true,
		},
	}

	store := testStore()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShouldIncludeArticle(tt.article, store)
			if got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMentionedCompanies(t *testing.T) {
	article := collector.Article{
		Title:   "Traba and Acme partner up",
		Content: "traba will use acme tooling.",
	}

	matched := MentionedCompanies(article, testStore())
	if len(matched) != 2 {
		t.Errorf("got %d companies, want 2: %v", len(matched), matched)
	}
}
