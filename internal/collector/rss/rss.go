package rss

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"go-newspulse-automation/internal/collector"
	"go-newspulse-automation/internal/config"
	"go-newspulse-automation/internal/extract"

	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"
)

const googleNewsFormat = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

type RSSCollector struct {
	cfg     *config.Config
	parser  *gofeed.Parser
	limiter *rate.Limiter
}

func NewRSSCollector(cfg *config.Config) *RSSCollector {
	return &RSSCollector{
		cfg:    cfg,
		parser: gofeed.NewParser(),
		//one feed fetch every 2s keeps Google News happy
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (c *RSSCollector) Name() string {
	return "RSS"
}

func (c *RSSCollector) Collect(ctx context.Context) ([]collector.Article, error) {
	var articles []collector.Article

	//configured feeds plus one generated Google News query per company
	feeds := make([]config.Feed, 0, len(c.cfg.Feeds)+len(c.cfg.Companies))
	feeds = append(feeds, c.cfg.Feeds...)
	for _, company := range c.cfg.Companies {
		query := url.QueryEscape(fmt.Sprintf("%q", company.Name))
		feeds = append(feeds, config.Feed{
			Name: "Google News: " + company.Name,
			URL:  fmt.Sprintf(googleNewsFormat, query),
		})
	}

	for _, feed := range feeds {
		//check context cancellation
		if ctx.Err() != nil {
			return articles, ctx.Err()
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return articles, err
		}

		log.Printf("  🔍 Fetching feed: %s", feed.Name)
		parsed, err := c.parser.ParseURLWithContext(feed.URL, ctx)
		if err != nil {
			log.Printf("    ⚠️ Feed fetch failed: %v", err)
			continue
		}

		count := 0
		for _, item := range parsed.Items {
			if count >= c.cfg.MaxArticlesPerSource {
				break
			}
			if item.Link == "" {
				continue
			}

			//descriptions are usually HTML fragments
			articles = append(articles, collector.Article{
				Title:     item.Title,
				URL:       item.Link,
				Source:    feed.Name,
				Published: publishedDate(item),
				Summary:   extract.FromHTML(item.Description),
				Content:   extract.FromHTML(item.Content),
			})
			count++
		}
		log.Printf("    📦 Found %d items", count)
	}

	return articles, nil
}

func publishedDate(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.Format("2006-01-02")
	}
	return item.Published
}
