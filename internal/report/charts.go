// Standalone HTML charts, one file per chart, written next to the PDF
// report so they stay browsable on their own.

package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go-newspulse-automation/internal/analysis"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type ChartRef struct {
	Title string
	File  string
}

// RenderCharts writes the volume, sentiment and daily-trend charts into
// outDir and returns references for the report page.
func RenderCharts(stats []analysis.CompanyStats, outDir string) ([]ChartRef, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("could not create charts directory: %w", err)
	}

	var refs []ChartRef

	ref, err := renderVolumeBar(stats, outDir)
	if err != nil {
		return refs, err
	}
	refs = append(refs, ref)

	ref, err = renderSentimentPie(stats, outDir)
	if err != nil {
		return refs, err
	}
	refs = append(refs, ref)

	ref, err = renderDailyLine(stats, outDir)
	if err != nil {
		return refs, err
	}
	refs = append(refs, ref)

	return refs, nil
}

func renderVolumeBar(stats []analysis.CompanyStats, outDir string) (ChartRef, error) {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Articles per company"}))

	names := make([]string, 0, len(stats))
	values := make([]opts.BarData, 0, len(stats))
	for _, s := range stats {
		names = append(names, s.Company)
		values = append(values, opts.BarData{Value: s.Articles})
	}
	bar.SetXAxis(names).AddSeries("Articles", values)

	return writeChart(bar, "Articles per company", outDir, "volume_chart.html")
}

func renderSentimentPie(stats []analysis.CompanyStats, outDir string) (ChartRef, error) {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Sentiment split"}))

	var positive, negative, neutral int
	for _, s := range stats {
		positive += s.Positive
		negative += s.Negative
		neutral += s.Neutral
	}
	pie.AddSeries("Sentiment", []opts.PieData{
		{Name: "positive", Value: positive},
		{Name: "negative", Value: negative},
		{Name: "neutral", Value: neutral},
	})

	return writeChart(pie, "Sentiment split", outDir, "sentiment_chart.html")
}

func renderDailyLine(stats []analysis.CompanyStats, outDir string) (ChartRef, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Daily article volume"}))

	//union of all days, sorted, as the shared x axis
	daySet := make(map[string]struct{})
	for _, s := range stats {
		for _, d := range s.DailyVolume {
			daySet[d.Day] = struct{}{}
		}
	}
	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)

	line.SetXAxis(days)
	for _, s := range stats {
		byDay := make(map[string]int, len(s.DailyVolume))
		for _, d := range s.DailyVolume {
			byDay[d.Day] = d.Count
		}
		values := make([]opts.LineData, 0, len(days))
		for _, d := range days {
			values = append(values, opts.LineData{Value: byDay[d]})
		}
		line.AddSeries(s.Company, values)
	}

	return writeChart(line, "Daily article volume", outDir, "daily_chart.html")
}

type renderer interface {
	Render(w io.Writer) error
}

func writeChart(chart renderer, title, outDir, filename string) (ChartRef, error) {
	path := filepath.Join(outDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return ChartRef{}, fmt.Errorf("could not create chart file: %w", err)
	}
	defer f.Close()

	if err := chart.Render(f); err != nil {
		return ChartRef{}, fmt.Errorf("could not render chart: %w", err)
	}
	return ChartRef{Title: title, File: filename}, nil
}
