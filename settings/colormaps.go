// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings manages registries of colormap and colorbar
// configurations defined in YAML files, with validation that reports
// every failing check.
package settings

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"gocolorbar.org/colorbar/base/fsx"
	"gocolorbar.org/colorbar/base/yamlx"
	"gocolorbar.org/colorbar/cmap"
)

// colormapFile locates one registered colormap YAML file, either on
// the OS filesystem or within a bundled [fs.FS].
type colormapFile struct {
	fsys fs.FS // nil means the OS filesystem
	path string
}

// ColormapRegistry maps colormap names to their YAML configuration
// files. The name of a colormap is the name of its file without the
// extension. Files are read and validated on access, not at
// registration, so edits to a registered file take effect on the
// next read. Safe for concurrent use.
type ColormapRegistry struct {
	mu    sync.RWMutex
	files map[string]colormapFile

	// tmpDir holds the YAML files written for specs added directly
	// with AddSpec.
	tmpDir string
}

// NewColormapRegistry returns a new empty [ColormapRegistry].
func NewColormapRegistry() *ColormapRegistry {
	return &ColormapRegistry{files: map[string]colormapFile{}}
}

// Reset removes all registered colormaps.
func (r *ColormapRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = map[string]colormapFile{}
}

// Names returns the sorted names of all registered colormaps.
func (r *ColormapRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.files))
	for name := range r.files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Contains returns whether a colormap with the given name is
// registered.
func (r *ColormapRegistry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.files[name]
	return ok
}

// register adds one name to file mapping, honoring force.
func (r *ColormapRegistry) register(name string, file colormapFile, force bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[name]; ok {
		if !force {
			return fmt.Errorf("a colormap named %q is already registered; overwriting requires force", name)
		}
		slog.Warn("overwriting existing colormap", "name", name)
	}
	r.files[name] = file
	return nil
}

// Register registers the colormap configuration YAML file at the
// given path. The colormap name is the file name without the
// extension. An existing registration of the same name is
// overwritten with a warning, unless force is given as false, which
// makes it an error. The file is not validated at registration.
func (r *ColormapRegistry) Register(path string, force ...bool) error {
	f := true
	if len(force) > 0 {
		f = force[0]
	}
	ex, err := fsx.FileExists(path)
	if err != nil {
		return err
	}
	if !ex {
		return fmt.Errorf("the colormap configuration YAML file %q does not exist", path)
	}
	name := fsx.TrimExt(filepath.Base(path))
	return r.register(name, colormapFile{path: path}, f)
}

// RegisterFS registers the colormap configuration YAML file at the
// given path within the given filesystem, typically an embedded one.
func (r *ColormapRegistry) RegisterFS(fsys fs.FS, path string, force ...bool) error {
	f := true
	if len(force) > 0 {
		f = force[0]
	}
	ex, err := fsx.FileExistsFS(fsys, path)
	if err != nil {
		return err
	}
	if !ex {
		return fmt.Errorf("the colormap configuration YAML file %q does not exist", path)
	}
	name := fsx.TrimExt(filepath.Base(path))
	return r.register(name, colormapFile{fsys: fsys, path: path}, f)
}

// RegisterDir registers every *.yaml and *.yml file in the given
// directory, optionally recursing into subdirectories.
func (r *ColormapRegistry) RegisterDir(dir string, recursive ...bool) error {
	rec := len(recursive) > 0 && recursive[0]
	if !rec {
		for _, fnm := range fsx.ExtFilenames(dir, ".yaml", ".yml") {
			if err := r.Register(filepath.Join(dir, fnm)); err != nil {
				return err
			}
		}
		return nil
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			return r.Register(path)
		}
		return nil
	})
}

// RegisterDirFS registers every *.yaml and *.yml file in the given
// directory of the given filesystem.
func (r *ColormapRegistry) RegisterDirFS(fsys fs.FS, dir string) error {
	for _, fnm := range fsx.ExtFilenamesFS(fsys, dir, ".yaml", ".yml") {
		if err := r.RegisterFS(fsys, filepath.Join(dir, fnm)); err != nil {
			return err
		}
	}
	return nil
}

// AddSpec validates the given spec, writes it as a YAML file in a
// registry-owned temporary directory, and registers it under the
// given name. The spec colors must be in the internal 0-1 range.
func (r *ColormapRegistry) AddSpec(name string, spec *ColormapSpec, force ...bool) error {
	f := true
	if len(force) > 0 {
		f = force[0]
	}
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("colormap %q: %w", name, err)
	}
	r.mu.Lock()
	if r.tmpDir == "" {
		dir, err := os.MkdirTemp("", "colorbar-cmaps-")
		if err != nil {
			r.mu.Unlock()
			return err
		}
		r.tmpDir = dir
	}
	dir := r.tmpDir
	r.mu.Unlock()
	path := filepath.Join(dir, name+".yaml")
	if err := writeColormapSpec(spec, path); err != nil {
		return err
	}
	return r.register(name, colormapFile{path: path}, f)
}

// Unregister removes the colormap with the given name from the
// registry.
func (r *ColormapRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.files[name]; !ok {
		return fmt.Errorf("the colormap %q is not registered", name)
	}
	delete(r.files, name)
	return nil
}

// Filepath returns the YAML configuration file path of the colormap
// with the given name. A _r suffix is stripped first.
func (r *ColormapRegistry) Filepath(name string) (string, error) {
	name = strings.TrimSuffix(name, cmap.ReversedSuffix)
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.files[name]
	if !ok {
		return "", fmt.Errorf("the colormap %q is not registered", name)
	}
	return file.path, nil
}

// file returns the location of the colormap file, stripping a _r
// suffix from the name first.
func (r *ColormapRegistry) file(name string) (colormapFile, error) {
	name = strings.TrimSuffix(name, cmap.ReversedSuffix)
	r.mu.RLock()
	defer r.mu.RUnlock()
	file, ok := r.files[name]
	if !ok {
		return file, fmt.Errorf("the colormap %q is not registered", name)
	}
	return file, nil
}

// Spec reads, decodes and validates the configuration of the
// colormap with the given name. The returned spec colors are in the
// internal 0-1 range.
func (r *ColormapRegistry) Spec(name string) (*ColormapSpec, error) {
	file, err := r.file(name)
	if err != nil {
		return nil, err
	}
	spec := &ColormapSpec{}
	if file.fsys != nil {
		err = yamlx.OpenFS(spec, file.fsys, file.path)
	} else {
		err = yamlx.Open(spec, file.path)
	}
	if err != nil {
		return nil, fmt.Errorf("colormap %q: %w", name, err)
	}
	if err := spec.Validate(false); err != nil {
		return nil, fmt.Errorf("colormap %q: %w", name, err)
	}
	spec.decodeColors()
	return spec, nil
}

// Get builds the colormap with the given name. A _r suffix reverses
// the colormap after building; a lut argument resamples it to that
// many colors after reversing. Names that are not registered fall
// back on the builtin colormaps; a name known to neither is an error
// naming both valid sets.
func (r *ColormapRegistry) Get(name string, lut ...int) (cmap.ColorMap, error) {
	base := strings.TrimSuffix(name, cmap.ReversedSuffix)
	var cm cmap.ColorMap
	if r.Contains(base) {
		spec, err := r.Spec(base)
		if err != nil {
			return nil, err
		}
		cm, err = spec.ColorMap(base)
		if err != nil {
			return nil, err
		}
		if name != base {
			cm = cmap.Reverse(cm)
		}
	} else if cmap.IsBuiltin(base) {
		var err error
		cm, err = cmap.Builtin(name)
		if err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("the colormap %q is neither registered nor builtin; registered colormaps: %v; builtin colormaps: %v",
			name, r.Names(), cmap.BuiltinNames(""))
	}
	if len(lut) > 0 && lut[0] > 0 {
		cm = cmap.Resample(cm, lut[0])
	}
	return cm, nil
}

// Validate validates the given registered colormaps, or all of them
// when no name is given. Every invalid configuration is logged, and
// a single error naming all of them is returned.
func (r *ColormapRegistry) Validate(names ...string) error {
	if len(names) == 0 {
		names = r.Names()
	} else {
		for _, name := range names {
			if !r.Contains(name) {
				return fmt.Errorf("%s is not a registered colormap", name)
			}
		}
	}
	var wrong []string
	for _, name := range names {
		if _, err := r.Spec(name); err != nil {
			wrong = append(wrong, name)
			slog.Error("invalid colormap configuration", "name", name, "err", err)
		}
	}
	if len(wrong) > 0 {
		return fmt.Errorf("the %v colormaps have invalid configurations", wrong)
	}
	return nil
}

// ToYAML writes the validated configuration of the colormap with
// the given name to the given path, with the colors re-encoded to
// the external data range of their color space. An existing file is
// only overwritten when force is given.
func (r *ColormapRegistry) ToYAML(name, path string, force ...bool) error {
	f := len(force) > 0 && force[0]
	if ex, _ := fsx.FileExists(path); ex && !f {
		return fmt.Errorf("the file %q already exists; overwriting requires force", path)
	}
	spec, err := r.Spec(name)
	if err != nil {
		return err
	}
	return writeColormapSpec(spec, path)
}

// writeColormapSpec encodes the spec colors to their external data
// range and writes the spec to the given path atomically.
func writeColormapSpec(spec *ColormapSpec, path string) error {
	out := *spec
	out.Colors = slices.Clone(spec.Colors)
	out.encodeColors()
	return yamlx.Save(&out, path)
}

// Available returns the sorted names of the registered colormaps
// within the given category (compared case-insensitively against
// the auxiliary category metadata), or of all of them when the
// category is empty. With includeReversed, the _r reversed name of
// every colormap is included as well. Colormaps whose configuration
// cannot be read are skipped.
func (r *ColormapRegistry) Available(category string, includeReversed ...bool) []string {
	rev := len(includeReversed) > 0 && includeReversed[0]
	var names []string
	for _, name := range r.Names() {
		if category != "" {
			spec, err := r.Spec(name)
			if err != nil {
				slog.Debug("skipping unreadable colormap", "name", name, "err", err)
				continue
			}
			if !spec.Auxiliary.HasCategory(category) {
				continue
			}
		}
		names = append(names, name)
	}
	if rev {
		for _, name := range slices.Clone(names) {
			names = append(names, name+cmap.ReversedSuffix)
		}
	}
	slices.Sort(names)
	return names
}
