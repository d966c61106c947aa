// Package watcher reports DTA dumps dropped into a directory.
//
// A controller export usually arrives as a create event followed by a burst
// of writes. The watcher waits until a file has been quiet for the settle
// delay before handing it to the handler, so each dump is handled once it is
// complete.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arloliu/luxdta/compress"
	"github.com/arloliu/luxdta/errs"
	"github.com/arloliu/luxdta/internal/options"
	"github.com/arloliu/luxdta/log"
)

// DefaultSettle is the quiet period before a changed file is handled.
const DefaultSettle = 500 * time.Millisecond

// Handler processes one settled file. Handlers run one at a time.
type Handler func(ctx context.Context, path string) error

type config struct {
	logger log.Logger
	settle time.Duration
	match  func(path string) bool
}

func defaultConfig() *config {
	return &config{
		logger: log.NewNoopLogger(),
		settle: DefaultSettle,
		match:  IsDumpFile,
	}
}

// Option configures a Watcher.
type Option = options.Option[*config]

// WithLogger sets the logger receiving watch diagnostics.
func WithLogger(logger log.Logger) Option {
	return options.NoError(func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithSettle sets the quiet period before a changed file is handled.
func WithSettle(d time.Duration) Option {
	return options.New(func(c *config) error {
		if d < 0 {
			return fmt.Errorf("%w: negative settle %s", errs.ErrInvalidConfig, d)
		}
		c.settle = d

		return nil
	})
}

// WithMatch replaces the file filter. The default accepts DTA dumps.
func WithMatch(match func(path string) bool) Option {
	return options.NoError(func(c *config) {
		if match != nil {
			c.match = match
		}
	})
}

// IsDumpFile reports whether path names a DTA dump, compressed or not.
func IsDumpFile(path string) bool {
	return strings.EqualFold(filepath.Ext(compress.TrimExtension(path)), ".dta")
}

// Watcher watches one directory for new or rewritten DTA dumps.
type Watcher struct {
	cfg     *config
	dir     string
	handle  Handler
	fsw     *fsnotify.Watcher
	handled sync.Mutex

	mu      sync.Mutex
	pending map[string]*time.Timer
	wg      sync.WaitGroup
}

// New starts watching dir. Events are delivered once Run is called.
//
// Parameters:
//   - dir: Directory to watch; subdirectories are not watched
//   - handle: Called with the path of every settled dump
//   - opts: Watcher options
//
// Returns:
//   - *Watcher: The watcher; Run must be called to process events
//   - error: An option error or the error of the underlying watch
func New(dir string, handle Handler, opts ...Option) (*Watcher, error) {
	cfg, err := options.Build(defaultConfig, opts...)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: nil handler", errs.ErrInvalidConfig)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	return &Watcher{
		cfg:     cfg,
		dir:     dir,
		handle:  handle,
		fsw:     fsw,
		pending: make(map[string]*time.Timer),
	}, nil
}

// Dir returns the watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Run processes events until ctx is done. Pending files are dropped and
// a handler already running is waited for before Run returns.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.shutdown()

	w.cfg.logger.Info("watching directory", log.String("dir", w.dir), log.Duration("settle", w.cfg.settle))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.cfg.match(event.Name) {
				continue
			}
			w.schedule(ctx, event.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				w.cfg.logger.Warn("watch queue overflow, events were lost", log.String("dir", w.dir))
				continue
			}
			w.cfg.logger.Error("watch error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[path]; ok && t.Stop() {
		t.Reset(w.cfg.settle)
		return
	}

	w.wg.Add(1)
	var t *time.Timer
	t = time.AfterFunc(w.cfg.settle, func() {
		defer w.wg.Done()

		w.mu.Lock()
		if w.pending[path] == t {
			delete(w.pending, path)
		}
		w.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.run(ctx, path)
	})
	w.pending[path] = t
}

func (w *Watcher) run(ctx context.Context, path string) {
	w.handled.Lock()
	defer w.handled.Unlock()

	start := time.Now()
	if err := w.handle(ctx, path); err != nil {
		w.cfg.logger.Error("handle dump", log.String("path", path), log.Err(err))
		return
	}
	w.cfg.logger.Debug("handled dump", log.String("path", path), log.Duration("took", time.Since(start)))
}

func (w *Watcher) shutdown() {
	w.mu.Lock()
	for path, t := range w.pending {
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.pending, path)
	}
	w.mu.Unlock()

	w.wg.Wait()
	_ = w.fsw.Close()
}
