package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"go-newspulse-automation/internal/analysis"
	"go-newspulse-automation/internal/collector"

	"github.com/playwright-community/playwright-go"
)

// Data is everything the report template renders.
type Data struct {
	GeneratedAt   string
	TotalArticles int
	Companies     []analysis.CompanyStats
	Articles      []collector.Article
	Charts        []ChartRef
}

// NewData assembles report data from retained articles.
func NewData(articles []collector.Article, stats []analysis.CompanyStats, charts []ChartRef) *Data {
	return &Data{
		GeneratedAt:   time.Now().Format("2006-01-02 15:04"),
		TotalArticles: len(articles),
		Companies:     stats,
		Articles:      articles,
		Charts:        charts,
	}
}

// Generator is responsible for converting report data into PDF files
type Generator struct {
	templatePath string
}

// NewGenerator creates a new PDF generator with the given HTML template path
func NewGenerator(templatePath string) *Generator {
	return &Generator{
		templatePath: templatePath,
	}
}

// Generate parses the report data through the HTML template and uses
// Playwright to render it as a PDF byte array.
func (g *Generator) Generate(data *Data) ([]byte, error) {
	// Parse the layout template
	tmpl, err := template.ParseFiles(g.templatePath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	// Execute template to a buffer
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	htmlContent := buf.String()

	// Use Playwright to render HTML to PDF
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start playwright: %w", err)
	}
	defer pw.Stop()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("could not launch chromium browser: %w", err)
	}
	defer browser.Close()

	page, err := browser.NewPage()
	if err != nil {
		return nil, fmt.Errorf("could not create new page: %w", err)
	}
	defer page.Close()

	// Set the generated HTML content into the browser page
	if err := page.SetContent(htmlContent, playwright.PageSetContentOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return nil, fmt.Errorf("could not set page content: %w", err)
	}

	// Generate the PDF
	pdfBytes, err := page.PDF(playwright.PagePdfOptions{
		Format:          playwright.String("A4"),
		PrintBackground: playwright.Bool(true),
		Margin: &playwright.Margin{
			Top:    playwright.String("1cm"),
			Bottom: playwright.String("1cm"),
			Left:   playwright.String("1cm"),
			Right:  playwright.String("1cm"),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not generate PDF: %w", err)
	}

	return pdfBytes, nil
}

// SaveToFile is a helper function to directly save generated PDF to disk
func SaveToFile(pdfBytes []byte, outputPath string) error {
	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory: %w", err)
	}

	return os.WriteFile(outputPath, pdfBytes, 0644)
}
