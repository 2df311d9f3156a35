package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange whenever one of the files is written or replaced.
// The parent directories are watched rather than the files, so editors that
// save by renaming a temp file over the original keep triggering reloads.
// onChange runs on the watcher goroutine; callers hand the event to their
// UI loop (tea.Program.Send) rather than touching state from it.
func Watch(onChange func(path string), files ...string) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// cleaned name -> name as the caller passed it
	targets := make(map[string]string, len(files))
	dirs := make(map[string]bool)
	for _, f := range files {
		clean := filepath.Clean(f)
		targets[clean] = f
		dir := filepath.Dir(clean)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, tracked := targets[filepath.Clean(event.Name)]
				if tracked && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					onChange(name)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return watcher.Close, nil
}
