package tui

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces rapid write+rename sequences from the
// store's atomic save into a single reload.
const watchDebounce = 200 * time.Millisecond

// StartWatcher watches the store file for changes and sends
// MsgStoreChanged so edits from another fittrack process show up live.
// The parent directory is watched because the store is replaced by
// rename on every save.
func StartWatcher(storePath string, program *tea.Program) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(filepath.Dir(storePath)); err != nil {
		watcher.Close()
		return nil, err
	}

	done := make(chan struct{})
	base := filepath.Base(storePath)

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(watchDebounce, func() {
					program.Send(MsgStoreChanged{})
				})

			case <-watcher.Errors:
				// Ignore watcher errors silently

			case <-done:
				return
			}
		}
	}()

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}
