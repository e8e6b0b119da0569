package dashboard

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/sync/errgroup"

	"webpilot/internal/analytics"
	"webpilot/pkg/logging"
)

// Generator renders an analytics report into static HTML/CSS
// artifacts. Rendering is a pure function of the report: the same
// report always yields the same bytes apart from the generated-at
// stamp it carries.
type Generator struct {
	outDir string
	index  *template.Template
	metric *template.Template
}

// NewGenerator creates a generator writing into outDir.
func NewGenerator(outDir string) (*Generator, error) {
	index, err := template.New("index").Funcs(sprig.HtmlFuncMap()).Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index template: %w", err)
	}
	metric, err := template.New("metric").Funcs(sprig.HtmlFuncMap()).Parse(metricPageTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metric template: %w", err)
	}
	return &Generator{outDir: outDir, index: index, metric: metric}, nil
}

// OutDir returns the dashboard output directory.
func (g *Generator) OutDir() string {
	return g.outDir
}

type indexData struct {
	Report    *analytics.Report
	TrendJSON template.JS
}

type metricCard struct {
	Value string
	Label string
}

type metricPageData struct {
	Title      string
	Report     *analytics.Report
	Cards      []metricCard
	ChartLabel string
	ChartField string
	TrendJSON  template.JS
}

// Generate writes the dashboard and its supplementary pages. Unlike
// history ingestion, a write failure here is fatal: producing no
// dashboard is a regression the caller must see immediately.
func (g *Generator) Generate(report *analytics.Report) error {
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create dashboard directory %s: %w", g.outDir, err)
	}

	trendJSON, err := json.Marshal(report.Trends)
	if err != nil {
		return fmt.Errorf("failed to encode trend data: %w", err)
	}
	inline := template.JS(trendJSON)

	pages := map[string]func() ([]byte, error){
		"styles.css": func() ([]byte, error) { return []byte(stylesCSS), nil },
		"index.html": func() ([]byte, error) {
			return g.render(g.index, indexData{Report: report, TrendJSON: inline})
		},
		"performance.html": func() ([]byte, error) {
			return g.render(g.metric, metricPageData{
				Title:  "Performance Report",
				Report: report,
				Cards: []metricCard{
					{fmt.Sprintf("%.0f ms", report.Performance.AverageLoadTime), "Avg load time"},
					{fmt.Sprintf("%.0f ms", report.Performance.AverageLCP), "Avg LCP"},
					{fmt.Sprintf("%.3f", report.Performance.AverageCLS), "Avg CLS"},
					{fmt.Sprintf("%d", report.Performance.SampleCount), "Samples"},
				},
				ChartLabel: "Performance score",
				ChartField: "performanceScore",
				TrendJSON:  inline,
			})
		},
		"accessibility.html": func() ([]byte, error) {
			return g.render(g.metric, metricPageData{
				Title:  "Accessibility Report",
				Report: report,
				Cards: []metricCard{
					{fmt.Sprintf("%.1f", latestScore(report, func(p analytics.TrendPoint) float64 { return p.AccessibilityScore })), "Latest score"},
					{fmt.Sprintf("%d", report.Summary.TotalRuns), "Runs recorded"},
				},
				ChartLabel: "Accessibility score",
				ChartField: "accessibilityScore",
				TrendJSON:  inline,
			})
		},
		"mobile.html": func() ([]byte, error) {
			return g.render(g.metric, metricPageData{
				Title:  "Mobile Report",
				Report: report,
				Cards: []metricCard{
					{fmt.Sprintf("%d", report.Summary.TotalRuns), "Runs recorded"},
					{fmt.Sprintf("%.1f%%", report.Summary.AveragePassRate), "Average pass rate"},
				},
				ChartLabel: "Pass rate",
				ChartField: "passRate",
				TrendJSON:  inline,
			})
		},
	}

	// The pages are independent files; the first write failure wins
	// and aborts the generation.
	var eg errgroup.Group
	for name, build := range pages {
		name, build := name, build
		eg.Go(func() error {
			data, err := build()
			if err != nil {
				return err
			}
			path := filepath.Join(g.outDir, name)
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	logging.Info("Dashboard", "Generated dashboard (%d pages) in %s", len(pages), g.outDir)
	return nil
}

func (g *Generator) render(tmpl *template.Template, data interface{}) ([]byte, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", tmpl.Name(), err)
	}
	return []byte(sb.String()), nil
}

func latestScore(report *analytics.Report, pick func(analytics.TrendPoint) float64) float64 {
	if len(report.Trends) == 0 {
		return 0
	}
	return pick(report.Trends[len(report.Trends)-1])
}
