package danceload

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// settle is how long a file must stay quiet after a change before it is
// reloaded. Editors often write a file in several steps.
const settle = 100 * time.Millisecond

// Watch loads the dance in path and then again every time the file changes,
// calling onLoad with the outcome. It returns when ctx is done.
//
// The directory is watched rather than the file itself, so that editors which
// save by replacing the file are noticed as well.
func Watch(ctx context.Context, path string, onLoad func(*DanceFile, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	onLoad(LoadDance(path))
	target := filepath.Clean(path)
	timer := time.NewTimer(settle)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				tracer().Debugf("%s: %s", event.Op, event.Name)
				timer.Reset(settle)
			}
		case <-timer.C:
			onLoad(LoadDance(path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			tracer().Errorf("watching %s: %v", path, err)
		}
	}
}
