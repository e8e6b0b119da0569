package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"webpilot/pkg/logging"
)

// DefaultDebounceInterval is the quiet period after the last archive
// change before a regeneration is triggered. Run files are written in
// one shot, but CI jobs finishing together can land several files in
// quick succession.
const DefaultDebounceInterval = 500 * time.Millisecond

// Watcher regenerates the dashboard whenever new run files land in
// the results directory.
type Watcher struct {
	resultsDir string
	debounce   time.Duration
	onChange   func() error

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher over resultsDir. onChange is invoked
// after the debounce interval; its error is logged, not fatal, so a
// transient render failure does not stop the watch loop.
func NewWatcher(resultsDir string, onChange func() error) *Watcher {
	return &Watcher{
		resultsDir: resultsDir,
		debounce:   DefaultDebounceInterval,
		onChange:   onChange,
	}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.resultsDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.resultsDir, err)
	}

	logging.Info("Dashboard", "Watching %s for new run files", w.resultsDir)

	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return ctx.Err()

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			logging.Debug("Dashboard", "Archive change detected: %s %s", event.Op, event.Name)
			w.scheduleRegenerate()

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.Warn("Dashboard", "Watcher error: %v", err)
		}
	}
}

func (w *Watcher) scheduleRegenerate() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		if err := w.onChange(); err != nil {
			logging.Error("Dashboard", err, "Regeneration failed")
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
}
