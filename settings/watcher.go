// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gocolorbar.org/colorbar/base/fsx"
)

// Watcher keeps registries in sync with configuration directories
// on disk: creating or writing a *.yaml or *.yml file in a watched
// directory re-registers it into the owning registry, removing or
// renaming one unregisters the names that came from it.
type Watcher struct {
	mu      sync.Mutex
	watcher *fsnotify.Watcher
	cmaps   *ColormapRegistry
	cbars   *ColorbarRegistry

	// cmapDirs and cbarDirs map cleaned watched directories to the
	// registry kind owning them.
	cmapDirs map[string]bool
	cbarDirs map[string]bool

	done chan struct{}
}

// NewWatcher returns a started [Watcher] updating the given
// registries. Either registry may be nil when only the other kind
// of directory will be watched. Close must be called to release the
// watch and stop the event goroutine.
func NewWatcher(cmaps *ColormapRegistry, cbars *ColorbarRegistry) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		watcher:  fw,
		cmaps:    cmaps,
		cbars:    cbars,
		cmapDirs: map[string]bool{},
		cbarDirs: map[string]bool{},
		done:     make(chan struct{}),
	}
	go w.watchLoop()
	return w, nil
}

// WatchColormaps registers the colormap YAML files in the given
// directory and watches it for changes.
func (w *Watcher) WatchColormaps(dir string) error {
	if err := w.cmaps.RegisterDir(dir); err != nil {
		return err
	}
	w.mu.Lock()
	w.cmapDirs[filepath.Clean(dir)] = true
	w.mu.Unlock()
	return w.watcher.Add(dir)
}

// WatchColorbars registers the colorbar YAML files in the given
// directory and watches it for changes.
func (w *Watcher) WatchColorbars(dir string) error {
	if err := w.cbars.RegisterDir(dir); err != nil {
		return err
	}
	w.mu.Lock()
	w.cbarDirs[filepath.Clean(dir)] = true
	w.mu.Unlock()
	return w.watcher.Add(dir)
}

// Close stops watching and waits for the event goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

// isYAML reports whether the path has a YAML extension.
func isYAML(path string) bool {
	ext := filepath.Ext(path)
	return strings.EqualFold(ext, ".yaml") || strings.EqualFold(ext, ".yml")
}

// owner returns which registry kind owns the directory of the
// given event path.
func (w *Watcher) owner(path string) (isCmap, isCbar bool) {
	dir := filepath.Clean(filepath.Dir(path))
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cmapDirs[dir], w.cbarDirs[dir]
}

func (w *Watcher) watchLoop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("settings watcher error", "err", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !isYAML(event.Name) {
		return
	}
	isCmap, isCbar := w.owner(event.Name)
	if !isCmap && !isCbar {
		return
	}
	slog.Debug("settings watcher event", "op", event.Op.String(), "file", event.Name)
	switch {
	case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
		if isCmap {
			if err := w.cmaps.Register(event.Name); err != nil {
				slog.Error("re-registering colormap failed", "file", event.Name, "err", err)
			}
		}
		if isCbar {
			if err := w.cbars.Register(event.Name); err != nil {
				slog.Error("re-registering colorbars failed", "file", event.Name, "err", err)
			}
		}
	case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
		if isCmap {
			name := fsx.TrimExt(filepath.Base(event.Name))
			if err := w.cmaps.Unregister(name); err != nil {
				slog.Debug("unregistering colormap skipped", "name", name, "err", err)
			}
		}
		if isCbar {
			if removed := w.cbars.UnregisterFile(event.Name); len(removed) > 0 {
				slog.Debug("unregistered colorbar settings", "names", removed)
			}
		}
	}
}
