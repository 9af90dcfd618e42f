package langcfg

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/autopair/internal/log"
)

// Watcher errors.
var (
	// ErrWatcherClosed is returned when operating on a closed watcher.
	ErrWatcherClosed = errors.New("watcher is closed")
	// ErrPathNotExist is returned when a watched path does not exist.
	ErrPathNotExist = errors.New("path does not exist")
)

// Watcher reloads language configuration files into a registry when
// they change on disk.
type Watcher struct {
	mu sync.Mutex

	watcher  *fsnotify.Watcher
	registry *Registry
	logger   *log.Logger

	closed   bool
	closeCh  chan struct{}
	closedWg sync.WaitGroup
}

// NewWatcher creates a watcher feeding the given registry. A nil
// logger disables logging.
func NewWatcher(registry *Registry, logger *log.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NullLogger
	}

	w := &Watcher{
		watcher:  fsw,
		registry: registry,
		logger:   logger.WithComponent("langcfg.watcher"),
		closeCh:  make(chan struct{}),
	}

	w.closedWg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a configuration directory. The directory is
// loaded once up front so the registry is populated before the first
// change event.
func (w *Watcher) Watch(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absDir); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	if err := w.watcher.Add(absDir); err != nil {
		return err
	}
	return w.registry.LoadDir(absDir)
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.closedWg.Wait()
	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.closedWg.Done()

	for {
		select {
		case <-w.closeCh:
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
			w.logger.Error("watch error: %v", err)
		}
	}
}

// handleEvent reloads a configuration file on write or create.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
		return
	}
	switch filepath.Ext(event.Name) {
	case ".toml", ".json":
	default:
		return
	}

	if err := w.registry.LoadFile(event.Name); err != nil {
		w.logger.Warn("reload %s failed: %v", event.Name, err)
		return
	}
	w.logger.Info("reloaded language config %s", event.Name)
}
