package catalog

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the overlay file whenever it changes and hands each fresh
// catalog to onChange. The catalog values themselves stay immutable; only
// new copies are delivered. Reload failures (partial writes, transient
// syntax errors) keep the previous catalog and are skipped silently.
//
// Watch blocks until ctx is done and then returns ctx.Err().
func Watch(ctx context.Context, path string, onChange func(*Catalog)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory; editors replace files on save, which drops
	// watches added on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			c, err := LoadFile(path)
			if err != nil {
				continue
			}
			onChange(c)

		case _, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			// Watcher errors are usually recoverable; keep going.
		}
	}
}
