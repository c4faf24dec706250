package assets

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/devgenius/devgenius/internal/pubsub"
)

// TopicChanged carries the path of a changed static asset. Development
// tooling subscribes to it to push live reloads to connected browsers.
const TopicChanged = "assets.changed"

// Watcher publishes a bus event whenever a file under the static asset
// directory changes. It is only run in development.
type Watcher struct {
	dir       string
	publisher pubsub.Publisher
}

// NewWatcher creates a watcher over the given directory.
func NewWatcher(dir string, publisher pubsub.Publisher) *Watcher {
	return &Watcher{dir: dir, publisher: publisher}
}

// Run watches the asset directory tree until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create asset watcher: %w", err)
	}
	defer fw.Close()

	// fsnotify does not recurse, so every subdirectory is added explicitly.
	err = filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("watch asset directory %s: %w", w.dir, err)
	}

	slog.Info("Watching static assets", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("Static asset changed", "file", event.Name, "op", event.Op.String())

			msg := pubsub.Message{Topic: TopicChanged, Payload: []byte(event.Name)}
			if err := w.publisher.Publish(ctx, msg); err != nil {
				slog.Error("Failed to publish asset change", "file", event.Name, "error", err)
			}

			// Newly created directories need watching too.
			if event.Op&fsnotify.Create != 0 {
				if fi, statErr := os.Stat(event.Name); statErr == nil && fi.IsDir() {
					if addErr := fw.Add(event.Name); addErr != nil {
						slog.Warn("Failed to watch new directory", "dir", event.Name, "error", addErr)
					}
				}
			}

		case watchErr, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Asset watcher error", "error", watchErr)
		}
	}
}
