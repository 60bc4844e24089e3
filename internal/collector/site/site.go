package site

import (
	"context"
	"log"
	"time"

	"go-newspulse-automation/internal/collector"
	"go-newspulse-automation/internal/config"
	"go-newspulse-automation/internal/extract"
	"go-newspulse-automation/utils"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gocolly/colly/v2"
)

// SiteCollector crawls configured news sites: the front page yields article
// links, then each article page is fetched for its body text.
type SiteCollector struct {
	cfg *config.Config
}

func NewSiteCollector(cfg *config.Config) *SiteCollector {
	return &SiteCollector{cfg: cfg}
}

func (s *SiteCollector) Name() string {
	return "Sites"
}

func (s *SiteCollector) Collect(ctx context.Context) ([]collector.Article, error) {
	var articles []collector.Article

	for _, site := range s.cfg.Sites {
		//check context cancellation
		if ctx.Err() != nil {
			return articles, ctx.Err()
		}

		log.Printf("  🔍 Crawling site: %s", site.Name)
		found, err := s.collectSite(ctx, site)
		if err != nil {
			log.Printf("    ⚠️ Crawl failed: %v", err)
			continue
		}
		log.Printf("    📦 Found %d articles", len(found))
		articles = append(articles, found...)
	}

	return articles, nil
}

func (s *SiteCollector) collectSite(ctx context.Context, site config.Site) ([]collector.Article, error) {
	linkSelector := site.LinkSelector
	if linkSelector == "" {
		linkSelector = "a[href]"
	}
	articleSelector := site.ArticleSelector
	if articleSelector == "" {
		articleSelector = "article"
	}

	links := mapset.NewSet[string]()

	front := s.newCollector(ctx)
	front.OnHTML(linkSelector, func(e *colly.HTMLElement) {
		if links.Cardinality() >= s.cfg.MaxArticlesPerSource {
			return
		}
		link := e.Request.AbsoluteURL(e.Attr("href"))
		if link != "" {
			links.Add(link)
		}
	})

	if err := front.Visit(site.URL); err != nil {
		return nil, err
	}

	//fetch each article page and pull out its body text
	var articles []collector.Article
	pages := s.newCollector(ctx)
	pages.OnHTML("html", func(e *colly.HTMLElement) {
		title := extract.CollapseWhitespace(e.DOM.Find("title").First().Text())
		body := e.DOM.Find(articleSelector).Text()
		if body == "" {
			body = e.DOM.Find("body").Text()
		}

		articles = append(articles, collector.Article{
			Title:   title,
			URL:     e.Request.URL.String(),
			Source:  site.Name,
			Content: extract.CollapseWhitespace(body),
		})
	})

	for _, link := range links.ToSlice() {
		if ctx.Err() != nil {
			return articles, ctx.Err()
		}
		if err := pages.Visit(link); err != nil {
			log.Printf("    ⚠️ Skipping %s: %v", link, err)
		}
	}

	return articles, nil
}

func (s *SiteCollector) newCollector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.UserAgent(utils.RandomUserAgent()),
		colly.MaxDepth(1),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(15 * time.Second)

	//randomized delay keeps the crawl polite
	_ = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 1,
		RandomDelay: 3 * time.Second,
	})

	return c
}
