package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"webpilot/pkg/logging"
)

// Store is the append-only archive of run files: one JSON document
// per run, named by run id. The store never rewrites an existing
// file; aggregation re-reads the directory on every request.
type Store struct {
	dir string
}

// NewStore creates a store over dir. The directory is created lazily
// on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the archive directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the run as pretty-printed JSON. Ids are fresh per run,
// so no overwrite protection is needed. Write failures are hard
// errors: a silently missing archive entry would skew every later
// aggregation.
func (s *Store) Save(run *TestRun) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results directory %s: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal run %s: %w", run.ID, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("run-%s.json", run.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write run file %s: %w", path, err)
	}

	logging.Info("Results", "Archived run %s (%d tests) to %s", run.ID, run.Summary.TotalTests, path)
	return path, nil
}

// Load reads a single archived run file.
func (s *Store) Load(path string) (*TestRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run file %s: %w", path, err)
	}
	var run TestRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, err)
	}
	return &run, nil
}

// LoadAll reads every run file in the archive. Files that cannot be
// read or parsed are skipped with a warning; aggregation favors
// availability over completeness. An absent or empty directory yields
// an empty slice, not an error.
func (s *Store) LoadAll() []*TestRun {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("Results", "Cannot read results directory %s: %v", s.dir, err)
		}
		return nil
	}

	var runs []*TestRun
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		run, err := s.Load(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			logging.Warn("Results", "Skipping unreadable run file %s: %v", entry.Name(), err)
			continue
		}
		runs = append(runs, run)
	}
	return runs
}
