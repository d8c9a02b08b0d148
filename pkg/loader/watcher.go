package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/fsnotify.v1"

	"github.com/jamezpolley/publicwhip/pkg/divisions"
)

// Watcher reprocesses transcript files as the scraper writes them,
// watching one <house>_debates directory per configured chamber.
type Watcher struct {
	loader  *Loader
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over the loader's debates directories.
func NewWatcher(l *Loader, houses []divisions.House) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	for _, house := range houses {
		dir := filepath.Dir(l.TranscriptPath(house, ""))
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	return &Watcher{loader: l, watcher: watcher}, nil
}

// Run blocks, reprocessing transcripts on create and write events,
// until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !strings.HasSuffix(event.Name, ".xml") {
				continue
			}

			switch {
			case event.Op&fsnotify.Create == fsnotify.Create,
				event.Op&fsnotify.Write == fsnotify.Write:
				if _, err := w.loader.LoadPath(ctx, event.Name); err != nil {
					fmt.Fprintf(w.loader.out(), "error: %s: %v\n", event.Name, err)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.loader.out(), "watch error: %v\n", err)
		}
	}
}

// Close stops the underlying file system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
