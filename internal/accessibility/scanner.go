package accessibility

import (
	"context"
	"encoding/json"
	"fmt"

	"webpilot/internal/browser"
	"webpilot/pkg/logging"
)

// scanExpression invokes the accessibility-scanning library that the
// page under test loads by reference; the library itself is an
// external collaborator, this helper only consumes its JSON output.
const scanExpression = `(async () => { const r = await axe.run(); return { violations: r.violations.map(v => ({ id: v.id, impact: v.impact, description: v.description, nodes: v.nodes.map(n => n.target.join(" ")) })) }; })()`

// Violation is one accessibility rule failure.
type Violation struct {
	ID          string   `json:"id"`
	Impact      string   `json:"impact"`
	Description string   `json:"description"`
	Nodes       []string `json:"nodes"`
}

// Report aggregates one scan.
type Report struct {
	Violations    []Violation    `json:"violations"`
	CountByImpact map[string]int `json:"countByImpact"`
	// Score is 0-100, starting from 100 with per-violation penalties
	// weighted by impact.
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}

// impactPenalty weights violations by severity when scoring.
var impactPenalty = map[string]float64{
	"critical": 15,
	"serious":  10,
	"moderate": 5,
	"minor":    2,
}

// Scanner runs accessibility scans through the browser seam.
type Scanner struct {
	driver   browser.Driver
	minScore float64
}

// NewScanner creates a scanner; scans scoring below minScore fail.
func NewScanner(driver browser.Driver, minScore float64) *Scanner {
	return &Scanner{driver: driver, minScore: minScore}
}

// Scan runs the injected scan on the current page and aggregates the
// violations into a scored report.
func (s *Scanner) Scan(ctx context.Context) (*Report, error) {
	raw, err := s.driver.Evaluate(ctx, scanExpression)
	if err != nil {
		return nil, fmt.Errorf("accessibility scan failed: %w", err)
	}

	var decoded struct {
		Violations []Violation `json:"violations"`
	}
	// The driver returns loosely typed JSON; round-trip it into the
	// typed shape so malformed scanner output fails here, not in
	// arithmetic downstream.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("accessibility scan returned unencodable result: %w", err)
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("accessibility scan returned unexpected shape: %w", err)
	}

	report := &Report{
		Violations:    decoded.Violations,
		CountByImpact: map[string]int{},
		Score:         100,
	}
	for _, v := range decoded.Violations {
		report.CountByImpact[v.Impact]++
		penalty, ok := impactPenalty[v.Impact]
		if !ok {
			penalty = impactPenalty["minor"]
		}
		report.Score -= penalty
	}
	if report.Score < 0 {
		report.Score = 0
	}
	report.Passed = report.Score >= s.minScore

	logging.Info("Accessibility", "Scan found %d violations, score %.1f (min %.1f)",
		len(report.Violations), report.Score, s.minScore)
	return report, nil
}
