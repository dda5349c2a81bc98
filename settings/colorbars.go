// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
	"gocolorbar.org/colorbar/base/fsx"
	"gocolorbar.org/colorbar/base/yamlx"
	"gocolorbar.org/colorbar/cmap"
	"gocolorbar.org/colorbar/norm"
	"gopkg.in/yaml.v3"
)

// ColorbarRegistry maps colorbar setting names to their
// configurations, held in memory. One YAML file can define several
// colorbar settings, one per top-level key; the file name itself is
// not used. Colormap names within the settings are resolved against
// an associated [ColormapRegistry] plus the builtin colormaps.
// Safe for concurrent use.
type ColorbarRegistry struct {
	mu    sync.RWMutex
	specs map[string]*ColorbarSpec

	// sources maps setting names to the file they came from, so a
	// watcher can unregister everything a removed file defined.
	sources map[string]string

	cmaps *ColormapRegistry
}

// NewColorbarRegistry returns a new empty [ColorbarRegistry]
// resolving colormap names against the given registry. A nil
// registry restricts colormap names to the builtin colormaps.
func NewColorbarRegistry(cmaps *ColormapRegistry) *ColorbarRegistry {
	if cmaps == nil {
		cmaps = NewColormapRegistry()
	}
	return &ColorbarRegistry{
		specs:   map[string]*ColorbarSpec{},
		sources: map[string]string{},
		cmaps:   cmaps,
	}
}

// Colormaps returns the colormap registry the colorbar settings
// resolve their colormap names against.
func (r *ColorbarRegistry) Colormaps() *ColormapRegistry {
	return r.cmaps
}

// Reset removes all registered colorbar settings.
func (r *ColorbarRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.specs = map[string]*ColorbarSpec{}
	r.sources = map[string]string{}
}

// Names returns the sorted names of all registered colorbar
// settings.
func (r *ColorbarRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Contains returns whether a colorbar setting with the given name
// is registered.
func (r *ColorbarRegistry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.specs[name]
	return ok
}

// readSpecs decodes a multi-entry colorbar YAML file.
func readSpecs(fsys fs.FS, path string) (map[string]*ColorbarSpec, error) {
	specs := map[string]*ColorbarSpec{}
	var err error
	if fsys != nil {
		err = yamlx.OpenFS(&specs, fsys, path)
	} else {
		err = yamlx.Open(&specs, path)
	}
	if err != nil {
		return nil, err
	}
	return specs, nil
}

// register adds the given settings, honoring force.
func (r *ColorbarRegistry) register(specs map[string]*ColorbarSpec, source string, force bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, spec := range specs {
		if _, ok := r.specs[name]; ok {
			if !force {
				return fmt.Errorf("a colorbar setting named %q is already registered; overwriting requires force", name)
			}
			slog.Warn("overwriting existing colorbar setting", "name", name)
		}
		r.specs[name] = spec
		r.sources[name] = source
	}
	return nil
}

// Register registers every colorbar setting defined in the YAML
// file at the given path. Existing registrations of the same names
// are overwritten with a warning, unless force is given as false,
// which makes them an error. The settings are not validated at
// registration.
func (r *ColorbarRegistry) Register(path string, force ...bool) error {
	f := true
	if len(force) > 0 {
		f = force[0]
	}
	ex, err := fsx.FileExists(path)
	if err != nil {
		return err
	}
	if !ex {
		return fmt.Errorf("the colorbars configuration YAML file %q does not exist", path)
	}
	specs, err := readSpecs(nil, path)
	if err != nil {
		return err
	}
	return r.register(specs, path, f)
}

// RegisterFS registers every colorbar setting defined in the YAML
// file at the given path within the given filesystem.
func (r *ColorbarRegistry) RegisterFS(fsys fs.FS, path string, force ...bool) error {
	f := true
	if len(force) > 0 {
		f = force[0]
	}
	specs, err := readSpecs(fsys, path)
	if err != nil {
		return err
	}
	return r.register(specs, path, f)
}

// RegisterValidated registers the colorbar settings defined in the
// YAML file at the given path, validating each entry first and
// rejecting the whole file when any is invalid.
func (r *ColorbarRegistry) RegisterValidated(path string, force ...bool) error {
	specs, err := readSpecs(nil, path)
	if err != nil {
		return err
	}
	var errs []error
	for _, name := range sortedKeys(specs) {
		// references may point at entries of this same file
		if specs[name].IsReference() {
			continue
		}
		if err := r.validateSpec(specs[name]); err != nil {
			errs = append(errs, fmt.Errorf("colorbar %q: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	f := true
	if len(force) > 0 {
		f = force[0]
	}
	return r.register(specs, path, f)
}

// RegisterDir registers every *.yaml and *.yml file in the given
// directory.
func (r *ColorbarRegistry) RegisterDir(dir string) error {
	for _, fnm := range fsx.ExtFilenames(dir, ".yaml", ".yml") {
		if err := r.Register(filepath.Join(dir, fnm)); err != nil {
			return err
		}
	}
	return nil
}

// RegisterDirFS registers every *.yaml and *.yml file in the given
// directory of the given filesystem.
func (r *ColorbarRegistry) RegisterDirFS(fsys fs.FS, dir string) error {
	for _, fnm := range fsx.ExtFilenamesFS(fsys, dir, ".yaml", ".yml") {
		if err := r.RegisterFS(fsys, filepath.Join(dir, fnm)); err != nil {
			return err
		}
	}
	return nil
}

// AddSpec validates the given colorbar setting and registers it
// under the given name, overwriting an existing registration with a
// warning.
func (r *ColorbarRegistry) AddSpec(name string, spec *ColorbarSpec) error {
	if err := r.validateSpec(spec); err != nil {
		return fmt.Errorf("colorbar %q: %w", name, err)
	}
	return r.register(map[string]*ColorbarSpec{name: spec}, "", true)
}

// Unregister removes the colorbar setting with the given name from
// the registry.
func (r *ColorbarRegistry) Unregister(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.specs[name]; !ok {
		return fmt.Errorf("the colorbar setting %q is not registered", name)
	}
	delete(r.specs, name)
	delete(r.sources, name)
	return nil
}

// UnregisterFile removes every colorbar setting that was registered
// from the file at the given path, returning the removed names.
func (r *ColorbarRegistry) UnregisterFile(path string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	path = filepath.Clean(path)
	var removed []string
	for name, source := range r.sources {
		if filepath.Clean(source) == path {
			delete(r.specs, name)
			delete(r.sources, name)
			removed = append(removed, name)
		}
	}
	slices.Sort(removed)
	return removed
}

// lookup returns the stored spec without copying.
func (r *ColorbarRegistry) lookup(name string) (*ColorbarSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// Spec returns a deep copy of the colorbar setting with the given
// name; mutating it does not affect the registry. When the stored
// setting is a reference to another setting and resolveReference is
// true, the referenced setting is returned instead.
func (r *ColorbarRegistry) Spec(name string, resolveReference bool) (*ColorbarSpec, error) {
	spec, ok := r.lookup(name)
	if !ok {
		return nil, fmt.Errorf("the colorbar setting %q is not registered", name)
	}
	if resolveReference && spec.IsReference() {
		ref, ok := r.lookup(spec.Reference)
		if !ok {
			return nil, fmt.Errorf("the colorbar setting %q references %q, which is not registered", name, spec.Reference)
		}
		spec = ref
	}
	out := &ColorbarSpec{}
	if err := copier.CopyWithOption(out, spec, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	return out, nil
}

// Standalone returns the sorted names of the settings that carry
// their own configuration rather than referencing another one.
func (r *ColorbarRegistry) Standalone() []string {
	var names []string
	for _, name := range r.Names() {
		if spec, ok := r.lookup(name); ok && !spec.IsReference() {
			names = append(names, name)
		}
	}
	return names
}

// Referenced returns the sorted names of the settings that are
// references to another setting.
func (r *ColorbarRegistry) Referenced() []string {
	var names []string
	for _, name := range r.Names() {
		if spec, ok := r.lookup(name); ok && spec.IsReference() {
			names = append(names, name)
		}
	}
	return names
}

// knownColormap returns whether the given name resolves to a
// registered or builtin colormap, accepting a _r suffix.
func (r *ColorbarRegistry) knownColormap(name string) bool {
	return r.cmaps.Contains(strings.TrimSuffix(name, cmap.ReversedSuffix)) || cmap.IsBuiltin(name)
}

// validateCmapSettings checks the colormap section of a setting.
func (r *ColorbarRegistry) validateCmapSettings(cs *CmapSettings) []error {
	var errs []error
	if len(cs.Name) == 0 {
		errs = append(errs, errors.New("A colormap 'name' is required."))
	}
	for _, name := range cs.Name {
		if !r.knownColormap(name) {
			errs = append(errs, fmt.Errorf("'%s' is not a recognized colormap name.", name))
		}
	}
	if len(cs.N) > 0 {
		if len(cs.Name) > 1 && len(cs.N) != len(cs.Name) {
			errs = append(errs, errors.New("'n' must match the number of colormaps in 'name'."))
		}
		for _, n := range cs.N {
			if n <= 0 {
				errs = append(errs, errors.New("'n' must be a positive integer."))
				break
			}
		}
	}
	for _, c := range []struct {
		field string
		cv    *ColorValue
	}{{"bad_color", cs.BadColor}, {"over_color", cs.OverColor}, {"under_color", cs.UnderColor}} {
		if err := validateColorValue(c.field, c.cv); err != nil {
			errs = append(errs, err)
		}
	}
	for _, a := range []struct {
		field string
		v     *float32
	}{{"bad_alpha", cs.BadAlpha}, {"over_alpha", cs.OverAlpha}, {"under_alpha", cs.UnderAlpha}} {
		if err := validateAlpha(a.field, a.v); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// validateSpec checks a whole colorbar setting, running every
// section validator and joining all failures into one error.
func (r *ColorbarRegistry) validateSpec(spec *ColorbarSpec) error {
	if spec.IsReference() {
		if spec.Cmap != nil || spec.Norm != nil || spec.Cbar != nil || len(spec.Auxiliary) > 0 {
			return errors.New("If 'reference' is specified, no other parameter is accepted.")
		}
		target, ok := r.lookup(spec.Reference)
		if !ok {
			return fmt.Errorf("The referenced colorbar setting '%s' is not registered.", spec.Reference)
		}
		if target.IsReference() {
			return fmt.Errorf("The referenced colorbar setting '%s' points to another reference. This is not allowed.", spec.Reference)
		}
		return nil
	}
	var errs []error
	if spec.Cmap == nil {
		errs = append(errs, errors.New("'cmap' settings are required."))
	} else {
		errs = append(errs, r.validateCmapSettings(spec.Cmap)...)
	}
	if spec.Norm != nil {
		if err := spec.Norm.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if spec.Cbar != nil {
		if err := spec.Cbar.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if spec.Cmap != nil && spec.Norm != nil && spec.Norm.IsDiscrete() && len(spec.Cmap.N) > 0 {
		required := spec.Norm.requiredNColors()
		if len(spec.Cmap.N) == 1 {
			if spec.Cmap.N[0] != required {
				errs = append(errs, fmt.Errorf("'n' must be %d for the specified discrete norm.", required))
			}
		} else if spec.Cmap.N.Sum() != required {
			errs = append(errs, fmt.Errorf("The sum of 'n' must be %d for the specified discrete norm.", required))
		}
	}
	return errors.Join(errs...)
}

// Validate validates the given registered colorbar settings, or all
// of them when no name is given. Every invalid configuration is
// logged, and a single error naming all of them is returned.
func (r *ColorbarRegistry) Validate(names ...string) error {
	if len(names) == 0 {
		names = r.Names()
	} else {
		for _, name := range names {
			if !r.Contains(name) {
				return fmt.Errorf("%s is not a registered colorbar setting", name)
			}
		}
	}
	var wrong []string
	for _, name := range names {
		spec, ok := r.lookup(name)
		if !ok {
			continue
		}
		if err := r.validateSpec(spec); err != nil {
			wrong = append(wrong, name)
			slog.Error("invalid colorbar configuration", "name", name, "err", err)
		}
	}
	if len(wrong) > 0 {
		return fmt.Errorf("the %v colorbars have invalid configurations", wrong)
	}
	return nil
}

// buildColorMap builds the colormap of a cmap section: resolving
// each name, resampling per n, concatenating multiple colormaps,
// and applying the bad, under and over colors.
func (r *ColorbarRegistry) buildColorMap(cs *CmapSettings) (cmap.ColorMap, error) {
	var cm cmap.ColorMap
	switch {
	case len(cs.Name) == 0:
		return nil, errors.New("a colormap name is required")
	case len(cs.Name) == 1:
		var err error
		cm, err = r.cmaps.Get(cs.Name[0], cs.N...)
		if err != nil {
			return nil, err
		}
	default:
		if len(cs.N) > 0 && len(cs.N) != len(cs.Name) {
			return nil, errors.New("'n' must match the number of colormaps in 'name'")
		}
		cms := make([]cmap.ColorMap, len(cs.Name))
		ns := make([]int, len(cs.Name))
		for i, nm := range cs.Name {
			c, err := r.cmaps.Get(nm)
			if err != nil {
				return nil, err
			}
			cms[i] = c
			if len(cs.N) > 0 {
				ns[i] = cs.N[i]
			} else {
				ns[i] = 256 / len(cs.Name)
			}
		}
		var err error
		cm, err = cmap.Concat(strings.Join(cs.Name, "+"), cms, ns)
		if err != nil {
			return nil, err
		}
	}
	b := cm.AsBase()
	if cs.BadColor != nil || cs.BadAlpha != nil {
		c, err := cs.BadColor.Color(cs.BadAlpha)
		if err != nil {
			return nil, err
		}
		b.SetBad(c)
	}
	if cs.UnderColor != nil || cs.UnderAlpha != nil {
		c, err := cs.UnderColor.Color(cs.UnderAlpha)
		if err != nil {
			return nil, err
		}
		b.SetUnder(c)
	}
	if cs.OverColor != nil || cs.OverAlpha != nil {
		c, err := cs.OverColor.Color(cs.OverAlpha)
		if err != nil {
			return nil, err
		}
		b.SetOver(c)
	}
	return cm, nil
}

// ColorMap builds the colormap of the colorbar setting with the
// given name, applying its special colors and resampling.
func (r *ColorbarRegistry) ColorMap(name string) (cmap.ColorMap, error) {
	spec, err := r.Spec(name, true)
	if err != nil {
		return nil, err
	}
	if spec.Cmap == nil {
		return nil, fmt.Errorf("the colorbar setting %q has no cmap settings", name)
	}
	return r.buildColorMap(spec.Cmap)
}

// RenderSpec is the resolved configuration needed to draw one
// colorbar: the built colormap and norm plus the decoration.
type RenderSpec struct {

	// Name is the colorbar setting name.
	Name string

	// ColorMap is the built colormap, with special colors applied.
	ColorMap cmap.ColorMap

	// Norm maps data values to colormap positions.
	Norm norm.Norm

	// Extend states which out-of-range pointers to draw.
	Extend norm.Extend

	// ExtendFrac is the pointer length as a fraction of the axis;
	// empty means the default.
	ExtendFrac []float32

	// ExtendRect draws rectangular instead of triangular pointers.
	ExtendRect bool

	// Label is the colorbar title.
	Label string

	// Ticks are explicit tick values; nil means automatic.
	Ticks []float32

	// TickLabels label the explicit ticks; nil formats the values.
	TickLabels []string
}

// merge applies one override onto the spec. The cmap and cbar
// sections merge field by field, with empty override fields leaving
// the base value; an override norm section replaces the whole base
// norm, since parameters are only meaningful for their own norm.
func (cb *ColorbarSpec) merge(ov *ColorbarSpec) {
	if ov.Cmap != nil {
		if cb.Cmap == nil {
			cb.Cmap = &CmapSettings{}
		}
		cb.Cmap.merge(ov.Cmap)
	}
	if ov.Norm != nil {
		nrm := *ov.Norm
		cb.Norm = &nrm
	}
	if ov.Cbar != nil {
		if cb.Cbar == nil {
			cb.Cbar = &CbarSettings{}
		}
		cb.Cbar.merge(ov.Cbar)
	}
}

func (cs *CmapSettings) merge(ov *CmapSettings) {
	if len(ov.Name) > 0 {
		cs.Name = slices.Clone(ov.Name)
	}
	if len(ov.N) > 0 {
		cs.N = slices.Clone(ov.N)
	}
	if ov.BadColor != nil {
		cs.BadColor = ov.BadColor
	}
	if ov.BadAlpha != nil {
		cs.BadAlpha = ov.BadAlpha
	}
	if ov.OverColor != nil {
		cs.OverColor = ov.OverColor
	}
	if ov.OverAlpha != nil {
		cs.OverAlpha = ov.OverAlpha
	}
	if ov.UnderColor != nil {
		cs.UnderColor = ov.UnderColor
	}
	if ov.UnderAlpha != nil {
		cs.UnderAlpha = ov.UnderAlpha
	}
}

func (cb *CbarSettings) merge(ov *CbarSettings) {
	if ov.Extend != "" {
		cb.Extend = ov.Extend
	}
	if len(ov.Extendfrac) > 0 {
		cb.Extendfrac = slices.Clone(ov.Extendfrac)
	}
	if ov.Extendrect {
		cb.Extendrect = true
	}
	if ov.Label != "" {
		cb.Label = ov.Label
	}
}

// RenderSpec resolves the colorbar setting with the given name into
// a render configuration, with any override settings merged on top
// before building. Later overrides win.
func (r *ColorbarRegistry) RenderSpec(name string, overrides ...*ColorbarSpec) (*RenderSpec, error) {
	spec, err := r.Spec(name, true)
	if err != nil {
		return nil, err
	}
	for _, ov := range overrides {
		if ov == nil {
			continue
		}
		spec.merge(ov)
	}
	if spec.Cmap == nil {
		return nil, fmt.Errorf("the colorbar setting %q has no cmap settings", name)
	}
	cm, err := r.buildColorMap(spec.Cmap)
	if err != nil {
		return nil, err
	}
	nrm, err := spec.Norm.Norm()
	if err != nil {
		return nil, err
	}
	rs := &RenderSpec{Name: name, ColorMap: cm, Norm: nrm}
	if spec.Cbar != nil {
		if spec.Cbar.Extend != "" {
			ex, err := norm.ExtendFromString(spec.Cbar.Extend)
			if err != nil {
				return nil, err
			}
			rs.Extend = ex
		}
		rs.ExtendFrac = spec.Cbar.Extendfrac
		rs.ExtendRect = spec.Cbar.Extendrect
		rs.Label = spec.Cbar.Label
	}
	switch n := nrm.(type) {
	case *norm.Boundary:
		if rs.Extend == norm.ExtendNeither {
			rs.Extend = n.Extend
		}
		rs.Ticks = n.Boundaries
	case *norm.Category:
		rs.Ticks, rs.TickLabels = n.Ticks()
	}
	return rs, nil
}

// ToYAML writes the given colorbar settings, or all of them when no
// name is given, as one multi-entry YAML file at the given path.
// An existing file is only overwritten when force is given.
func (r *ColorbarRegistry) ToYAML(path string, names []string, force ...bool) error {
	f := len(force) > 0 && force[0]
	if ex, _ := fsx.FileExists(path); ex && !f {
		return fmt.Errorf("the file %q already exists; overwriting requires force", path)
	}
	if names == nil {
		names = r.Names()
	}
	doc := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range names {
		spec, ok := r.lookup(name)
		if !ok {
			return fmt.Errorf("the colorbar setting %q is not registered", name)
		}
		var val yaml.Node
		if err := val.Encode(spec); err != nil {
			return err
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		doc.Content = append(doc.Content, key, &val)
	}
	return yamlx.Save(doc, path)
}

// Available returns the sorted names of the registered colorbar
// settings within the given category (compared case-insensitively
// against the auxiliary category metadata, following references),
// or of all of them when the category is empty. With
// excludeReferenced, reference settings are left out.
func (r *ColorbarRegistry) Available(category string, excludeReferenced ...bool) []string {
	excl := len(excludeReferenced) > 0 && excludeReferenced[0]
	names := r.Names()
	if excl {
		names = r.Standalone()
	}
	if category == "" {
		return names
	}
	var cat []string
	for _, name := range names {
		spec, err := r.Spec(name, true)
		if err != nil {
			continue
		}
		if spec.Auxiliary.HasCategory(category) {
			cat = append(cat, name)
		}
	}
	return cat
}

// sortedKeys returns the sorted keys of a spec map.
func sortedKeys(specs map[string]*ColorbarSpec) []string {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
