package rss

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-newspulse-automation/internal/config"

	"github.com/stretchr/testify/assert"
)

const feedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
  <title>Test Feed</title>
  <item>
    <title>Traba raises Series B</title>
    <link>https://example.com/traba-series-b</link>
    <description>&lt;p&gt;Staffing startup &lt;b&gt;Traba&lt;/b&gt; raised new funding.&lt;/p&gt;</description>
    <pubDate>Mon, 17 Aug 2026 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Gig economy trends</title>
    <link>https://example.com/gig-trends</link>
    <description>Industry overview.</description>
  </item>
</channel>
</rss>`

func TestRSSCollectorCollect(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(feedXML))
	}))
	defer srv.Close()

	cfg := &config.Config{
		Feeds:                []config.Feed{{Name: "Test", URL: srv.URL}},
		MaxArticlesPerSource: 10,
	}
	c := NewRSSCollector(cfg)

	articles, err := c.Collect(context.Background())

	assert.NoError(t, err)
	assert.Len(t, articles, 2)
	assert.Equal(t, "Traba raises Series B", articles[0].Title)
	assert.Equal(t, "https://example.com/traba-series-b", articles[0].URL)
	assert.Equal(t, "2026-08-17", articles[0].Published)
	assert.Equal(t, "Test", articles[0].Source)
	//HTML descriptions are reduced to plain text
	assert.Equal(t, "Staffing startup Traba raised new funding.", articles[0].Summary)
}

func TestRSSCollectorRespectsLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedXML))
	}))
	defer srv.Close()

	cfg := &config.Config{
		Feeds:                []config.Feed{{Name: "Test", URL: srv.URL}},
		MaxArticlesPerSource: 1,
	}
	c := NewRSSCollector(cfg)

	articles, err := c.Collect(context.Background())

	assert.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestRSSCollectorBadFeedContinues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &config.Config{
		Feeds:                []config.Feed{{Name: "Broken", URL: srv.URL}},
		MaxArticlesPerSource: 10,
	}
	c := NewRSSCollector(cfg)

	articles, err := c.Collect(context.Background())

	//a broken feed is logged and skipped, not fatal
	assert.NoError(t, err)
	assert.Empty(t, articles)
}
