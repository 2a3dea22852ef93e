package prefs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// pollInterval is the fallback cadence when fsnotify is unavailable.
const pollInterval = 500 * time.Millisecond

// Watch follows the preference file and sends freshly loaded Preferences on
// the returned channel whenever the file changes. The current contents are
// sent immediately. The channel is closed when ctx is cancelled.
//
// Uses fsnotify for efficient file watching with a polling fallback. Reload
// errors are skipped: the last good preferences stay in effect until the
// file parses again.
func Watch(ctx context.Context, path string) <-chan Preferences {
	ch := make(chan Preferences, 1)

	go func() {
		defer close(ch)

		if p, err := Load(path); err == nil {
			select {
			case ch <- p:
			case <-ctx.Done():
				return
			}
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory: editors and the UI replace the file on
		// save, and a watch on the old inode would go quiet.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watcher.Close()
			watchPolling(ctx, ch, path)
			return
		}

		watchWithWatcher(ctx, ch, watcher, path)
	}()

	return ch
}

func watchWithWatcher(ctx context.Context, ch chan<- Preferences, watcher *fsnotify.Watcher, path string) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			p, err := Load(path)
			if err != nil {
				continue
			}
			select {
			case ch <- p:
			case <-ctx.Done():
				return
			}

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
		}
	}
}

// watchPolling re-reads the file on a timer when fsnotify isn't available.
// Sends only when the modification time advances.
func watchPolling(ctx context.Context, ch chan<- Preferences, path string) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastMod time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil || !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			p, err := Load(path)
			if err != nil {
				continue
			}
			select {
			case ch <- p:
			case <-ctx.Done():
				return
			}
		}
	}
}
