// Regenerate charts and the PDF report from the newest saved results file,
// without re-collecting anything.

package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"

	"go-newspulse-automation/internal/analysis"
	"go-newspulse-automation/internal/collector"
	"go-newspulse-automation/internal/config"
	"go-newspulse-automation/internal/report"
)

func main() {
	cfg := config.Load()

	articles, path, err := loadLatestResults("logs")
	if err != nil {
		log.Fatalf("❌ Could not load saved results: %v", err)
	}
	log.Printf("📁 Loaded %d articles from %s", len(articles), path)

	stats := analysis.Summarize(articles)

	charts, err := report.RenderCharts(stats, filepath.Join(cfg.OutputDir, "visualizations"))
	if err != nil {
		log.Printf("⚠️ Chart rendering failed: %v", err)
	}

	generator := report.NewGenerator(cfg.TemplatePath)
	pdfBytes, err := generator.Generate(report.NewData(articles, stats, charts))
	if err != nil {
		log.Fatalf("❌ PDF generation failed: %v", err)
	}

	pdfPath := filepath.Join(cfg.OutputDir, "news_pulse_report.pdf")
	if err := report.SaveToFile(pdfBytes, pdfPath); err != nil {
		log.Fatalf("❌ Failed to save PDF: %v", err)
	}
	log.Printf("📄 Report generated: %s", pdfPath)
}

func loadLatestResults(dir string) ([]collector.Article, string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "news-pulse-*.json"))
	if err != nil || len(matches) == 0 {
		return nil, "", os.ErrNotExist
	}
	sort.Strings(matches)
	path := matches[len(matches)-1] //filenames are dated, last one is newest

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}

	var articles []collector.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, "", err
	}
	return articles, path, nil
}
