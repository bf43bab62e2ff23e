// Package watch re-runs a generation callback whenever plugin source
// files change, for a local edit-refresh loop.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounceInterval collapses editor save bursts into one regeneration.
const debounceInterval = 250 * time.Millisecond

// Run watches dir recursively and invokes regenerate after each burst of
// relevant changes, until ctx is cancelled. A failed regeneration is
// reported and the watch continues.
func Run(ctx context.Context, dir string, regenerate func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	dirs, err := watchDirs(dir)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			return fmt.Errorf("watch %s: %w", d, err)
		}
	}
	log.Debug("watching for changes", "dir", dir, "subdirs", len(dirs))

	timer := time.NewTimer(debounceInterval)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			log.Debug("change detected", "path", event.Name, "op", event.Op.String())

			// New directories need their own watch before files
			// inside them produce events.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if sub, err := watchDirs(event.Name); err == nil {
						for _, d := range sub {
							_ = watcher.Add(d)
						}
					}
				}
			}
			timer.Reset(debounceInterval)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)

		case <-timer.C:
			if err := regenerate(); err != nil {
				log.Error("regeneration failed", "error", err)
			}
		}
	}
}

// relevant filters events down to the inputs that feed generation:
// markdown documents, JSON manifests, and directory creation.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".md", ".json":
		return true
	}
	return false
}

// watchDirs lists root and every subdirectory worth watching. Hidden
// directories are skipped except .claude-plugin, which holds the plugin
// manifest.
func watchDirs(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != root && strings.HasPrefix(name, ".") && name != ".claude-plugin" {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dirs, nil
}
