package allure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"webpilot/internal/results"
	"webpilot/pkg/logging"
)

// result is one test in the allure-results wire format.
type result struct {
	UUID          string        `json:"uuid"`
	HistoryID     string        `json:"historyId"`
	Name          string        `json:"name"`
	FullName      string        `json:"fullName"`
	Status        string        `json:"status"`
	Stage         string        `json:"stage"`
	Start         int64         `json:"start"`
	Stop          int64         `json:"stop"`
	Labels        []label       `json:"labels"`
	StatusDetails *statusDetail `json:"statusDetails,omitempty"`
	Attachments   []attachment  `json:"attachments,omitempty"`
}

type label struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type statusDetail struct {
	Message string `json:"message"`
}

type attachment struct {
	Name   string `json:"name"`
	Source string `json:"source"`
	Type   string `json:"type"`
}

// Writer emits a TestRun as an allure-results directory that the
// external report builder consumes.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write converts every result of the run into a result file, copies
// referenced artifacts alongside and writes environment.properties.
// Output file writes are hard errors; a missing artifact file is
// logged and skipped.
func (w *Writer) Write(run *results.TestRun) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create allure results directory: %w", err)
	}

	for _, suite := range run.Suites {
		for _, r := range suite.Results {
			if err := w.writeResult(suite.Name, r); err != nil {
				return err
			}
		}
	}

	return w.writeEnvironment(run)
}

func (w *Writer) writeResult(suiteName string, r results.TestResult) error {
	id := uuid.NewString()
	out := result{
		UUID:      id,
		HistoryID: r.Identity(),
		Name:      r.Name,
		FullName:  r.Identity(),
		Status:    mapStatus(r.Status),
		Stage:     "finished",
		Start:     r.StartTime.UnixMilli(),
		Stop:      r.EndTime.UnixMilli(),
		Labels: []label{
			{Name: "suite", Value: suiteName},
			{Name: "framework", Value: "webpilot"},
		},
	}
	if r.Error != "" {
		out.StatusDetails = &statusDetail{Message: r.Error}
	}
	if r.Screenshot != "" {
		if a, ok := w.copyArtifact(id, "screenshot", r.Screenshot, "image/png"); ok {
			out.Attachments = append(out.Attachments, a)
		}
	}
	if r.Video != "" {
		if a, ok := w.copyArtifact(id, "video", r.Video, "video/webm"); ok {
			out.Attachments = append(out.Attachments, a)
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode allure result: %w", err)
	}
	path := filepath.Join(w.dir, id+"-result.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write allure result %s: %w", path, err)
	}
	return nil
}

// copyArtifact places the referenced file into the results directory
// under a name unique to this result.
func (w *Writer) copyArtifact(resultID, kind, src, mediaType string) (attachment, bool) {
	source := fmt.Sprintf("%s-%s%s", resultID, kind, filepath.Ext(src))

	in, err := os.Open(src)
	if err != nil {
		logging.Warn("Allure", "Skipping %s attachment %s: %v", kind, src, err)
		return attachment{}, false
	}
	defer in.Close()

	dst, err := os.Create(filepath.Join(w.dir, source))
	if err != nil {
		logging.Warn("Allure", "Skipping %s attachment %s: %v", kind, src, err)
		return attachment{}, false
	}
	defer dst.Close()

	if _, err := io.Copy(dst, in); err != nil {
		logging.Warn("Allure", "Skipping %s attachment %s: %v", kind, src, err)
		return attachment{}, false
	}

	return attachment{Name: kind, Source: source, Type: mediaType}, true
}

// writeEnvironment records run metadata in the key=value format the
// report builder shows on its environment widget.
func (w *Writer) writeEnvironment(run *results.TestRun) error {
	props := map[string]string{
		"Environment": run.Environment,
		"Run.ID":      run.ID,
		"Timestamp":   run.Timestamp.Format(time.RFC3339),
	}
	if run.Branch != "" {
		props["Branch"] = run.Branch
	}
	if run.Commit != "" {
		props["Commit"] = run.Commit
	}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%s\n", k, props[k])
	}

	path := filepath.Join(w.dir, "environment.properties")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// mapStatus translates the internal status to allure's vocabulary.
// Failed maps to failed (assertion) rather than broken (infrastructure)
// since the parsed reports do not distinguish the two.
func mapStatus(s results.Status) string {
	switch s {
	case results.StatusPassed:
		return "passed"
	case results.StatusFailed:
		return "failed"
	default:
		return "skipped"
	}
}
