package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	pkgerrors "github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/esimports/eis/pkg/errors"
	"github.com/esimports/eis/pkg/utils"
)

// Processor is the slice of the file host the watcher drives.
type Processor interface {
	ProcessFile(filePath string) error
}

// Watcher re-processes source files as they are saved under a directory
// tree. Rapid save bursts for the same file collapse into a single run.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	processor   Processor
	logger      *zap.Logger
	root        string
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// New creates a watcher over root that hands settled files to processor.
func New(root string, processor Processor, logger *zap.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, pkgerrors.Wrap(err, errors.ErrMsgFailedToWatchDirectory)
	}

	return &Watcher{
		watcher:     fsWatcher,
		processor:   processor,
		logger:      logger,
		root:        root,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond, // Debounce rapid saves
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching the directory tree. The method is non-blocking;
// the event loop runs in its own goroutine until Stop or ctx cancellation.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("Watching directory", zap.String("path", w.root))

	go w.run(ctx)

	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("Closing watcher", zap.Error(err))
	}
}

// IsWatching returns true if the event loop is running.
func (w *Watcher) IsWatching() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// addRecursive registers root and every non-excluded subdirectory.
func (w *Watcher) addRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if path != root && utils.ShouldSkipDir(info.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return pkgerrors.Wrap(err, errors.ErrMsgFailedToWatchDirectory)
		}
		return nil
	})
}

// run is the main event loop for the watcher.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	// Flush timer for batching rapid changes
	debounceTicker := time.NewTicker(100 * time.Millisecond)
	defer debounceTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watch error", zap.Error(err))

		case <-debounceTicker.C:
			w.processDebouncedEvents()
		}
	}
}

// handleEvent records a single filesystem event for debounced processing.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	// Newly created directories join the watch set so nested saves keep
	// arriving.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if !utils.ShouldSkipDir(filepath.Base(event.Name)) {
				if err := w.addRecursive(event.Name); err != nil {
					w.logger.Error("Watching new directory", zap.Error(err))
				}
			}
			return
		}
	}

	if !utils.IsSourceFile(event.Name) {
		return
	}

	w.logger.Debug("File event", zap.String("op", event.Op.String()), zap.String("path", event.Name))

	w.mu.Lock()
	w.debounceMap[event.Name] = time.Now()
	w.mu.Unlock()
}

// processDebouncedEvents runs the processor over files whose events have
// settled past the debounce window.
func (w *Watcher) processDebouncedEvents() {
	w.mu.Lock()
	now := time.Now()
	toProcess := make([]string, 0)

	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			toProcess = append(toProcess, path)
			delete(w.debounceMap, path)
		}
	}
	w.mu.Unlock()

	for _, path := range toProcess {
		if _, err := os.Stat(path); err != nil {
			continue // Deleted before the window settled
		}
		if err := w.processor.ProcessFile(path); err != nil {
			w.logger.Error("Processing failed", zap.String("path", path), zap.Error(err))
			continue
		}
		w.logger.Info("Processed", zap.String("path", path))
	}
}
