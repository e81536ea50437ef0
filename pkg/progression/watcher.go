package progression

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the progression file watcher
type WatcherConfig struct {
	// Path is the progression file to follow
	Path string

	// DebounceDelay is how long to wait for more writes before reloading
	DebounceDelay time.Duration

	// Logger for logging events
	Logger *slog.Logger
}

// Update carries a reloaded progression or the error that prevented it
type Update struct {
	Chords []string
	Error  error
}

// Watcher reloads a progression file whenever it changes on disk
type Watcher struct {
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   *slog.Logger
	updates  chan Update
}

// NewWatcher creates a watcher for config.Path
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("watch progression: empty path")
	}
	abs, err := filepath.Abs(config.Path)
	if err != nil {
		return nil, fmt.Errorf("watch progression: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch progression: %w", err)
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	debounce := config.DebounceDelay
	if debounce == 0 {
		debounce = 100 * time.Millisecond
	}

	return &Watcher{
		path:     abs,
		debounce: debounce,
		watcher:  fsw,
		logger:   logger,
		updates:  make(chan Update, 1),
	}, nil
}

// Updates returns the channel of reloaded progressions.
// It is closed when the watcher stops.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Start begins watching. The parent directory is watched rather than the file
// so editors that save by rename keep being followed.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		w.watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go w.run(ctx)

	w.logger.Info("Progression watcher started",
		"path", w.path,
		"debounce", w.debounce)
	return nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.updates)
	defer w.watcher.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("Progression file event", "op", event.Op.String(), "path", event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", "error", err)

		case <-timer.C:
			w.reload(ctx)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) reload(ctx context.Context) {
	chords, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("Failed to reload progression", "path", w.path, "error", err)
	} else {
		w.logger.Debug("Reloaded progression", "path", w.path, "chords", len(chords))
	}

	update := Update{Chords: chords, Error: err}
	// Keep only the newest update if the consumer is behind
	select {
	case <-w.updates:
	default:
	}
	select {
	case w.updates <- update:
	case <-ctx.Done():
	}
}

