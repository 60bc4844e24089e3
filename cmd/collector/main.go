package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"go-newspulse-automation/internal/analysis"
	"go-newspulse-automation/internal/collector"
	"go-newspulse-automation/internal/collector/rss"
	"go-newspulse-automation/internal/collector/site"
	"go-newspulse-automation/internal/config"
	"go-newspulse-automation/internal/database"
	"go-newspulse-automation/internal/dedup"
	"go-newspulse-automation/internal/extract"
	"go-newspulse-automation/internal/filter"
	"go-newspulse-automation/internal/models"
	"go-newspulse-automation/internal/ner"
	"go-newspulse-automation/internal/relevance"
	"go-newspulse-automation/internal/report"
	"go-newspulse-automation/internal/telegram"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. Tracking %d companies, NER mode: %s", len(cfg.Companies), cfg.NERMode)

	//company context store + scorer with the configured NER backend
	store := relevance.NewContextStore(cfg.EntityProfiles())
	scorer := relevance.NewScorer(buildRecognizer(cfg))

	//init telegram bot (optional: skip digest when not configured)
	var bot *telegram.Bot
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		var err error
		bot, err = telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram Bot: %v", err)
		}
		log.Println("🤖 Telegram Bot initialized.")
	} else {
		log.Println("ℹ️ Telegram not configured, digest disabled.")
	}

	//setup context with timeout = 10 mins
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	log.Println("🚀 Starting NewsPulse collection...")

	//initialize sources
	sources := []collector.Source{
		rss.NewRSSCollector(cfg),
		site.NewSiteCollector(cfg),
	}

	//run sources concurrently, one goroutine per source
	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		allArticles []collector.Article
	)
	for _, s := range sources {
		wg.Add(1)
		go func(s collector.Source) {
			defer wg.Done()
			log.Printf("▶️ Starting source: %s", s.Name())
			articles, err := s.Collect(ctx)
			if err != nil {
				log.Printf("❌ Error running source %s: %v", s.Name(), err)
			}
			log.Printf("✅ Source %s finished. Found %d articles.", s.Name(), len(articles))
			mu.Lock()
			allArticles = append(allArticles, articles...)
			mu.Unlock()
		}(s)
	}
	wg.Wait()

	log.Printf("\n📦 Total candidates collected: %d", len(allArticles))

	//prefilter: recent + names a tracked company at all
	var candidates []collector.Article
	for _, article := range allArticles {
		if filter.ShouldIncludeArticle(article, store) {
			candidates = append(candidates, article)
		}
	}
	log.Printf("🔍 Prefilter: %d/%d candidates kept", len(candidates), len(allArticles))

	//score relevance per mentioned company, keep the best relevant match
	sentiment := analysis.NewSentimentAnalyzer()
	var relevant []collector.Article
	for _, article := range candidates {
		scored, ok := scoreArticle(scorer, store, article)
		if !ok {
			continue
		}

		//sentiment on the full text of retained articles
		label, compound := sentiment.Classify(articleText(scored))
		scored.Sentiment = string(label)
		scored.SentimentScore = compound
		scored.CollectedAt = time.Now().Format("2006-01-02")

		relevant = append(relevant, scored)
	}

	//sort by relevance confidence
	sort.Slice(relevant, func(i, j int) bool {
		return relevant[i].Confidence > relevant[j].Confidence
	})
	log.Printf("🎯 Relevance gate: %d/%d articles retained", len(relevant), len(candidates))

	//dedup against previous runs
	cache := dedup.NewArticleCache(cfg.CachePath)
	var unseen []collector.Article
	for _, article := range relevant {
		if !cache.IsSeen(article.URL) {
			unseen = append(unseen, article)
		}
	}
	log.Printf("🔍 Deduplication: %d total -> %d unseen articles", len(relevant), len(unseen))

	var unseenURLs []string
	for _, article := range unseen {
		unseenURLs = append(unseenURLs, article.URL)
	}
	cache.Add(unseenURLs)

	//save results
	saveArticles(unseen)

	//persist to Postgres if configured
	if cfg.DatabaseURL != "" {
		persistArticles(ctx, cfg.DatabaseURL, unseen)
	}

	//send digest to telegram
	if bot != nil && len(unseen) > 0 {
		log.Printf("📊 Sending %d new articles to Telegram", len(unseen))
		for _, article := range unseen {
			log.Printf("  [%.2f] %s (%s)", article.Confidence, article.Title, article.Company)
			if err := bot.SendArticle(article); err != nil {
				log.Printf("⚠️ Failed to send article to Telegram: %v", err)
			}
			//1 second delay to avoid 429
			time.Sleep(1 * time.Second)
		}
		statusMsg := fmt.Sprintf("✅ Found %d new relevant articles.", len(unseen))
		if err := bot.SendStatus(statusMsg); err != nil {
			log.Printf("⚠️ Failed to send status to Telegram: %v", err)
		}
	}

	//charts + PDF report over everything retained this run
	if len(relevant) > 0 {
		generateReport(cfg, relevant)
	}

	log.Println("🏁 Execution finished.")
}

func buildRecognizer(cfg *config.Config) ner.Recognizer {
	switch cfg.NERMode {
	case "groq":
		return ner.NewGroqRecognizer(cfg.GroqAPIKey)
	case "off":
		return ner.Disabled{}
	default:
		return ner.NewProseRecognizer()
	}
}

func articleText(article collector.Article) string {
	return extract.FoldDiacritics(
		extract.CollapseWhitespace(article.Title + " " + article.Summary + " " + article.Content))
}

// scoreArticle runs the relevance scorer against every company the article
// mentions and keeps the highest-confidence relevant hit.
func scoreArticle(scorer *relevance.Scorer, store *relevance.ContextStore, article collector.Article) (collector.Article, bool) {
	text := articleText(article)

	best := relevance.Breakdown{}
	for _, name := range filter.MentionedCompanies(article, store) {
		b := scorer.Score(text, store.ProfileFor(name))
		if b.Relevant && b.Confidence > best.Confidence {
			best = b
			article.Company = name
		}
	}
	if !best.Relevant {
		return article, false
	}

	article.Confidence = best.Confidence
	article.Mentions = best.Mentions
	return article, true
}

func persistArticles(ctx context.Context, dbURL string, articles []collector.Article) {
	repo, err := database.ConnectDB(ctx, dbURL)
	if err != nil {
		log.Printf("⚠️ Database connection failed, skipping persistence: %v", err)
		return
	}
	defer repo.Close()

	saved := 0
	for _, a := range articles {
		row := &models.Article{
			Source:         a.Source,
			URL:            a.URL,
			Title:          a.Title,
			Company:        a.Company,
			Published:      a.Published,
			BodyText:       a.Content,
			Confidence:     a.Confidence,
			Mentions:       a.Mentions,
			Sentiment:      models.Sentiment(a.Sentiment),
			SentimentScore: a.SentimentScore,
		}
		if _, err := repo.SaveArticle(ctx, row); err != nil {
			log.Printf("⚠️ Failed to save article %s: %v", a.URL, err)
			continue
		}
		saved++
	}
	log.Printf("💾 Persisted %d articles to Postgres", saved)
}

func generateReport(cfg *config.Config, articles []collector.Article) {
	stats := analysis.Summarize(articles)

	charts, err := report.RenderCharts(stats, filepath.Join(cfg.OutputDir, "visualizations"))
	if err != nil {
		log.Printf("⚠️ Chart rendering failed: %v", err)
	}
	log.Printf("📈 Rendered %d charts", len(charts))

	generator := report.NewGenerator(cfg.TemplatePath)
	pdfBytes, err := generator.Generate(report.NewData(articles, stats, charts))
	if err != nil {
		log.Printf("⚠️ PDF generation failed: %v", err)
		return
	}

	pdfPath := filepath.Join(cfg.OutputDir, "news_pulse_report.pdf")
	if err := report.SaveToFile(pdfBytes, pdfPath); err != nil {
		log.Printf("⚠️ Failed to save PDF: %v", err)
		return
	}
	log.Printf("📄 Report generated: %s", pdfPath)
}

func saveArticles(articles []collector.Article) {
	if len(articles) == 0 {
		log.Println("ℹ️ No articles to save.")
		return
	}

	//create logs directory if not exists
	logDir := "logs"
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create logs directory: %v", err)
		return
	}

	//gen filename: news-pulse-YYYY-MM-DD.json
	filename := fmt.Sprintf("news-pulse-%s.json", time.Now().Format("2006-01-02"))
	filePath := filepath.Join(logDir, filename)

	//marshal
	data, err := json.MarshalIndent(articles, "", " ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal articles to JSON: %v", err)
		return
	}

	//write file
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write logs file: %v", err)
		return
	}

	log.Printf("📁 Results saved to %s", filePath)
}
