package results

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"webpilot/pkg/logging"
)

// RunMeta carries the run-level metadata stamped onto a parsed run.
type RunMeta struct {
	Environment string
	Branch      string
	Commit      string
}

// Raw report document as emitted by the browser engine's JSON
// reporter: suites nest specs, specs nest tests, tests carry one
// result per attempt. This shape is an external contract.
type rawReport struct {
	Suites []rawSuite `json:"suites"`
}

type rawSuite struct {
	Title string    `json:"title"`
	Specs []rawSpec `json:"specs"`
}

type rawSpec struct {
	Title string    `json:"title"`
	Tests []rawTest `json:"tests"`
}

type rawTest struct {
	Title   string      `json:"title"`
	Results []rawResult `json:"results"`
}

type rawResult struct {
	Status      string              `json:"status"`
	Duration    float64             `json:"duration"`
	StartTime   string              `json:"startTime"`
	Error       *rawError           `json:"error,omitempty"`
	Attachments []rawAttachment     `json:"attachments,omitempty"`
	Performance *PerformanceMetrics `json:"performance,omitempty"`
}

type rawError struct {
	Message string `json:"message"`
}

type rawAttachment struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
}

// ParseReport reads a raw engine report from path and flattens it
// into a TestRun. An unreadable or non-JSON file is a hard error; a
// readable JSON document without suites yields an empty run.
func ParseReport(path string, meta RunMeta) (*TestRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report %s: %w", path, err)
	}
	run, err := ParseReportData(data, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report %s: %w", path, err)
	}
	return run, nil
}

// ParseReportData flattens a raw engine report document into a
// TestRun with a fresh id and recomputed summary.
func ParseReportData(data []byte, meta RunMeta) (*TestRun, error) {
	run := &TestRun{
		ID:          uuid.NewString(),
		Timestamp:   time.Now().UTC(),
		Environment: meta.Environment,
		Branch:      meta.Branch,
		Commit:      meta.Commit,
		Suites:      []TestSuite{},
	}

	var raw rawReport
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid report document: %w", err)
	}

	if raw.Suites == nil {
		logging.Warn("Results", "Report document has no suites, producing empty run")
		run.Summarize()
		return run, nil
	}

	for _, rs := range raw.Suites {
		suite := TestSuite{Name: rs.Title, Results: []TestResult{}}
		for _, spec := range rs.Specs {
			for _, rt := range spec.Tests {
				suite.Results = append(suite.Results, convertTest(rs.Title, spec.Title, rt))
			}
		}
		run.Suites = append(run.Suites, suite)
	}

	run.Summarize()
	return run, nil
}

// convertTest maps one raw test to the flat model. Only the final
// attempt counts; earlier retries are visible in the flakiness data
// across runs, not within one.
func convertTest(suiteTitle, specTitle string, rt rawTest) TestResult {
	name := rt.Title
	if name == "" {
		name = specTitle
	}
	out := TestResult{
		Suite:  suiteTitle,
		Name:   name,
		Status: StatusSkipped,
	}

	if len(rt.Results) == 0 {
		return out
	}
	attempt := rt.Results[len(rt.Results)-1]

	out.Status = normalizeStatus(attempt.Status)
	if attempt.Duration > 0 {
		out.Duration = attempt.Duration
	}
	if ts, err := time.Parse(time.RFC3339, attempt.StartTime); err == nil {
		out.StartTime = ts
		out.EndTime = ts.Add(time.Duration(out.Duration) * time.Millisecond)
	}
	if attempt.Error != nil {
		out.Error = attempt.Error.Message
	}
	for _, att := range attempt.Attachments {
		switch {
		case att.Name == "screenshot" || strings.HasPrefix(att.ContentType, "image/"):
			out.Screenshot = att.Path
		case att.Name == "video" || strings.HasPrefix(att.ContentType, "video/"):
			out.Video = att.Path
		}
	}
	out.Performance = attempt.Performance

	return out
}

// normalizeStatus maps engine statuses onto the three-valued model.
// Anything unknown (including empty) is treated as skipped; timeouts
// and interruptions count as failures.
func normalizeStatus(s string) Status {
	switch strings.ToLower(s) {
	case "passed", "expected":
		return StatusPassed
	case "failed", "timedout", "interrupted", "unexpected":
		return StatusFailed
	default:
		return StatusSkipped
	}
}
