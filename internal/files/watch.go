package files

import (
	"context"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zhubert/ragchat/internal/logger"
)

// DefaultWatchExtensions are the document types picked up from a drop
// folder when none are configured.
var DefaultWatchExtensions = []string{".pdf", ".txt", ".md"}

// DefaultDebounce is how long a drop folder must be quiet before the
// files that arrived are reported as one batch.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports files dropped into a directory.
type Watcher struct {
	watcher    *fsnotify.Watcher
	extensions []string
	debounce   time.Duration
	log        *slog.Logger
}

// NewWatcher creates a watcher for files with one of the given
// extensions. Matching is case-insensitive.
func NewWatcher(extensions []string, debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if len(extensions) == 0 {
		extensions = DefaultWatchExtensions
	}
	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		watcher:    w,
		extensions: normalized,
		debounce:   debounce,
		log:        logger.ComponentLogger("watch"),
	}, nil
}

// Watch starts monitoring dir. Each value sent on the returned channel is
// a batch of paths created since the previous batch, in arrival order.
// Writes keep a batch open while new files are still being copied. The
// channel closes when ctx is done or the watcher is closed.
func (w *Watcher) Watch(ctx context.Context, dir string) (<-chan []string, error) {
	if err := w.watcher.Add(dir); err != nil {
		return nil, err
	}
	w.log.Info("watching drop folder", "dir", dir, "extensions", w.extensions)

	out := make(chan []string, 1)
	go w.run(ctx, out)
	return out, nil
}

func (w *Watcher) run(ctx context.Context, out chan<- []string) {
	defer close(out)

	var batch []string
	// Paths created since the last batch. A write only counts while the
	// file is still arriving; edits to files already in the folder are
	// ignored.
	created := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.matches(event.Name) {
				continue
			}
			switch {
			case event.Has(fsnotify.Create):
				created[event.Name] = true
				if !slices.Contains(batch, event.Name) {
					batch = append(batch, event.Name)
				}
			case event.Has(fsnotify.Write) && created[event.Name]:
				// copy still in progress
			default:
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)

		case <-timer.C:
			if len(batch) == 0 {
				continue
			}
			w.log.Debug("drop batch ready", "count", len(batch))
			select {
			case out <- batch:
			case <-ctx.Done():
				return
			}
			batch = nil
			clear(created)
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) matches(path string) bool {
	return slices.Contains(w.extensions, strings.ToLower(filepath.Ext(path)))
}
