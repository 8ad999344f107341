// internal/app/system/workers/indexwatch.go
package workers

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/eduardgagite/portfolio/internal/app/system/timeouts"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce coalesces the burst of events a single indexer run produces.
const DefaultDebounce = 500 * time.Millisecond

// IndexWatcher is a background worker that calls onChange after the
// generated catalog files in a directory change.
type IndexWatcher struct {
	dir      string
	names    map[string]bool
	onChange func(ctx context.Context)
	log      *zap.Logger
	debounce time.Duration

	watcher  *fsnotify.Watcher
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewIndexWatcher creates a watcher for the given file names inside dir.
// The directory is watched rather than the files so that replacements by
// rename are seen.
//
// Parameters:
//   - dir: directory holding the generated files
//   - names: base names that trigger a reload (e.g. materials-index.json)
//   - onChange: called once per burst of changes
//   - logger: zap logger for logging
//   - debounce: quiet period before onChange runs (0 means DefaultDebounce)
func NewIndexWatcher(dir string, names []string, onChange func(ctx context.Context), logger *zap.Logger, debounce time.Duration) (*IndexWatcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create fsnotify watcher")
	}
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, errors.Wrapf(err, "watch %s", dir)
	}

	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return &IndexWatcher{
		dir:      dir,
		names:    set,
		onChange: onChange,
		log:      logger,
		debounce: debounce,
		watcher:  fw,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start begins the background watch loop.
func (w *IndexWatcher) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("index watcher started",
		zap.String("dir", w.dir),
		zap.Duration("debounce", w.debounce))
}

// Stop signals the worker to stop and waits for it to finish. It is safe to
// call more than once.
func (w *IndexWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		w.wg.Wait()
		_ = w.watcher.Close()
		w.log.Info("index watcher stopped")
	})
}

func (w *IndexWatcher) run() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("catalog file changed",
				zap.String("file", ev.Name),
				zap.String("op", ev.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("index watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *IndexWatcher) relevant(ev fsnotify.Event) bool {
	if !w.names[filepath.Base(ev.Name)] {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove)
}

func (w *IndexWatcher) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Rebuild())
	defer cancel()

	w.log.Info("catalog files changed; reloading")
	w.onChange(ctx)
}
