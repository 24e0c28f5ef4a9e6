package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchTick is how often pending changes are checked against the debounce
// delay.
const watchTick = 500 * time.Millisecond

// Watch runs one generation immediately and then regenerates whenever a
// relevant file changes under the input trees. Changes are debounced: a
// burst of writes closer together than delay triggers a single run. The
// initial run failing is fatal; later runs log their error and watching
// continues. Watch blocks until stop is closed.
func (g *Generator) Watch(delay time.Duration, stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range []string{g.cfg.SourceDir, g.cfg.DocsDir} {
		if dir == "" {
			continue
		}
		if err := watchTree(watcher, dir); err != nil {
			return fmt.Errorf("failed to setup watcher: %w", err)
		}
	}

	if _, err := g.Run(); err != nil {
		return err
	}
	g.log.WithField("delay", delay.String()).Info("watching for changes")

	ticker := time.NewTicker(watchTick)
	defer ticker.Stop()

	var pending time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 && g.watchesExt(filepath.Ext(event.Name)) {
				g.log.WithField("file", event.Name).Debug("change detected")
				pending = time.Now()
			}

			// Also watch new directories.
			if event.Op&fsnotify.Create != 0 {
				fi, err := os.Stat(event.Name)
				if err == nil && fi.IsDir() {
					if err := watcher.Add(event.Name); err != nil {
						g.log.WithError(err).Warn("failed to watch new directory")
					}
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			g.log.WithError(err).Warn("watcher error")
		case now := <-ticker.C:
			if pending.IsZero() || now.Sub(pending) < delay {
				continue
			}
			pending = time.Time{}
			if _, err := g.Run(); err != nil {
				g.log.WithError(err).Error("regeneration failed")
			}
		case <-stop:
			return nil
		}
	}
}

// watchesExt reports whether files with the given extension feed the
// pipeline.
func (g *Generator) watchesExt(ext string) bool {
	if ext == g.cfg.SourceExt {
		return true
	}
	return g.cfg.DocsDir != "" && ext == g.cfg.ScriptExt
}

// watchTree recursively adds all directories under root to the watcher.
// Missing roots are skipped, matching Run's tolerance of absent inputs.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
