// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocolorbar.org/colorbar/norm"
)

func fptr(v float32) *float32 { return &v }

func newTestColorbars(t *testing.T) *ColorbarRegistry {
	t.Helper()
	r := NewColorbarRegistry(newTestColormaps(t))
	require.NoError(t, r.Register(filepath.Join("testdata", "colorbars", "precip_bars.yaml")))
	require.NoError(t, r.Register(filepath.Join("testdata", "colorbars", "temp_bars.yaml")))
	return r
}

func TestColorbarRegister(t *testing.T) {
	r := newTestColorbars(t)
	assert.Equal(t, []string{"precip", "precip_probability", "temperature"}, r.Names())
	assert.Equal(t, []string{"precip", "temperature"}, r.Standalone())
	assert.Equal(t, []string{"precip_probability"}, r.Referenced())

	path := filepath.Join("testdata", "colorbars", "precip_bars.yaml")
	assert.Error(t, r.Register(path, false))
	assert.NoError(t, r.Register(path))

	assert.ErrorContains(t, r.Register(filepath.Join("testdata", "colorbars", "missing.yaml")), "does not exist")

	assert.NoError(t, r.Unregister("temperature"))
	assert.ErrorContains(t, r.Unregister("temperature"), "not registered")
}

func TestColorbarUnregisterFile(t *testing.T) {
	r := newTestColorbars(t)
	removed := r.UnregisterFile(filepath.Join("testdata", "colorbars", "precip_bars.yaml"))
	assert.Equal(t, []string{"precip", "precip_probability"}, removed)
	assert.Equal(t, []string{"temperature"}, r.Names())
}

func TestColorbarSpec(t *testing.T) {
	r := newTestColorbars(t)

	spec, err := r.Spec("precip", true)
	require.NoError(t, err)
	require.NotNil(t, spec.Cmap)
	assert.Equal(t, StringList{"precip"}, spec.Cmap.Name)
	assert.Equal(t, "BoundaryNorm", spec.Norm.Name)
	assert.Equal(t, []float32{0, 1, 2, 5, 10, 20}, spec.Norm.Boundaries)
	assert.Equal(t, "Precipitation [mm/hr]", spec.Cbar.Label)

	// a returned spec is a copy: mutating it must not touch the registry
	spec.Cmap.Name[0] = "mutated"
	spec.Norm.Boundaries[0] = -99
	again, err := r.Spec("precip", true)
	require.NoError(t, err)
	assert.Equal(t, StringList{"precip"}, again.Cmap.Name)
	assert.Equal(t, float32(0), again.Norm.Boundaries[0])

	// reference resolution
	ref, err := r.Spec("precip_probability", false)
	require.NoError(t, err)
	assert.True(t, ref.IsReference())
	assert.Equal(t, "precip", ref.Reference)

	res, err := r.Spec("precip_probability", true)
	require.NoError(t, err)
	assert.False(t, res.IsReference())
	assert.Equal(t, StringList{"precip"}, res.Cmap.Name)

	_, err = r.Spec("nope", true)
	assert.ErrorContains(t, err, "not registered")
}

func TestColorbarValidate(t *testing.T) {
	r := newTestColorbars(t)
	assert.NoError(t, r.Validate())

	require.NoError(t, r.Register(filepath.Join("testdata", "colorbars", "bad_bars.yaml")))
	err := r.Validate()
	assert.ErrorContains(t, err, "broken")
	assert.ErrorContains(t, err, "dangling")
	assert.ErrorContains(t, err, "invalid configurations")
	assert.NoError(t, r.Validate("precip", "temperature"))
	assert.ErrorContains(t, r.Validate("nope"), "not a registered colorbar setting")
}

func TestColorbarRegisterValidated(t *testing.T) {
	r := NewColorbarRegistry(newTestColormaps(t))
	assert.ErrorContains(t,
		r.RegisterValidated(filepath.Join("testdata", "colorbars", "bad_bars.yaml")),
		"not a recognized colormap name")
	assert.Empty(t, r.Names())

	assert.NoError(t, r.RegisterValidated(filepath.Join("testdata", "colorbars", "precip_bars.yaml")))
	assert.True(t, r.Contains("precip"))
}

func TestColorbarAddSpec(t *testing.T) {
	r := newTestColorbars(t)

	spec := &ColorbarSpec{
		Cmap: &CmapSettings{Name: StringList{"viridis"}},
		Norm: &NormSettings{Name: "LogNorm", Vmin: fptr(1), Vmax: fptr(100)},
	}
	assert.NoError(t, r.AddSpec("chl", spec))
	assert.True(t, r.Contains("chl"))

	bad := &ColorbarSpec{Cmap: &CmapSettings{Name: StringList{"no_such"}}}
	assert.ErrorContains(t, r.AddSpec("bad", bad), "not a recognized colormap name")

	mixed := &ColorbarSpec{Reference: "precip", Cmap: &CmapSettings{Name: StringList{"viridis"}}}
	assert.ErrorContains(t, r.AddSpec("mixed", mixed), "no other parameter is accepted")
}

func TestColorbarDiscreteConsistency(t *testing.T) {
	r := newTestColorbars(t)

	spec := &ColorbarSpec{
		Cmap: &CmapSettings{Name: StringList{"viridis"}, N: IntList{4}},
		Norm: &NormSettings{Name: "BoundaryNorm", Boundaries: []float32{0, 1, 2, 3}},
	}
	assert.ErrorContains(t, r.AddSpec("disc", spec), "'n' must be 3 for the specified discrete norm")

	spec.Cmap.N = IntList{3}
	assert.NoError(t, r.AddSpec("disc", spec))

	multi := &ColorbarSpec{
		Cmap: &CmapSettings{Name: StringList{"Blues", "Reds"}, N: IntList{2, 2}},
		Norm: &NormSettings{Name: "BoundaryNorm", Boundaries: []float32{0, 1, 2, 3}},
	}
	assert.ErrorContains(t, r.AddSpec("multi", multi), "The sum of 'n' must be 3")

	multi.Cmap.N = IntList{2, 1}
	assert.NoError(t, r.AddSpec("multi", multi))
}

func TestColorbarColorMap(t *testing.T) {
	r := newTestColorbars(t)

	// bad_alpha alone gives a translucent black bad color
	cm, err := r.ColorMap("precip")
	require.NoError(t, err)
	require.NotNil(t, cm.AsBase().Bad)
	assert.Equal(t, color.RGBA{0, 0, 0, 128}, *cm.AsBase().Bad)

	// concatenation of two builtins, 5 colors each
	cm, err = r.ColorMap("temperature")
	require.NoError(t, err)
	assert.Equal(t, 10, cm.Len())
	assert.Equal(t, "Blues_r+Reds", cm.AsBase().Name)

	spec := &ColorbarSpec{
		Cmap: &CmapSettings{
			Name:       StringList{"viridis"},
			UnderColor: &ColorValue{Str: "white"},
			OverColor:  &ColorValue{Values: []float32{1, 0, 0}},
		},
	}
	require.NoError(t, r.AddSpec("special", spec))
	cm, err = r.ColorMap("special")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, *cm.AsBase().Under)
	assert.Equal(t, color.RGBA{255, 0, 0, 255}, *cm.AsBase().Over)
}

func TestColorbarRenderSpec(t *testing.T) {
	r := newTestColorbars(t)

	rs, err := r.RenderSpec("precip")
	require.NoError(t, err)
	assert.Equal(t, "precip", rs.Name)
	assert.Equal(t, norm.ExtendMax, rs.Extend)
	assert.Equal(t, []float32{0, 1, 2, 5, 10, 20}, rs.Ticks)
	assert.Equal(t, "Precipitation [mm/hr]", rs.Label)
	bn, ok := rs.Norm.(*norm.Boundary)
	require.True(t, ok)
	assert.Equal(t, 6, bn.NColors)

	// reference names resolve to their target configuration
	rs, err = r.RenderSpec("precip_probability")
	require.NoError(t, err)
	assert.Equal(t, norm.ExtendMax, rs.Extend)

	// overrides replace only what they set
	rs, err = r.RenderSpec("precip", &ColorbarSpec{Cbar: &CbarSettings{Label: "Rain rate"}})
	require.NoError(t, err)
	assert.Equal(t, "Rain rate", rs.Label)
	assert.Equal(t, norm.ExtendMax, rs.Extend)

	// an override norm replaces the whole norm section
	rs, err = r.RenderSpec("precip", &ColorbarSpec{Norm: &NormSettings{Name: "LogNorm", Vmin: fptr(1), Vmax: fptr(100)}})
	require.NoError(t, err)
	ln, ok := rs.Norm.(*norm.Log)
	require.True(t, ok)
	assert.Equal(t, float32(1), ln.Vmin)
	assert.Nil(t, rs.Ticks)
}

func TestColorbarRenderSpecCategory(t *testing.T) {
	r := newTestColorbars(t)
	spec := &ColorbarSpec{
		Cmap: &CmapSettings{Name: StringList{"tab10"}},
		Norm: &NormSettings{Name: "CategoryNorm", Labels: []string{"clear", "cloudy", "rain"}},
	}
	require.NoError(t, r.AddSpec("weather", spec))

	rs, err := r.RenderSpec("weather")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, 1.5, 2.5}, rs.Ticks)
	assert.Equal(t, []string{"clear", "cloudy", "rain"}, rs.TickLabels)
}

func TestColorbarToYAML(t *testing.T) {
	r := newTestColorbars(t)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, r.ToYAML(path, nil))
	assert.ErrorContains(t, r.ToYAML(path, nil), "already exists")
	require.NoError(t, r.ToYAML(path, []string{"precip"}, true))

	r2 := NewColorbarRegistry(r.Colormaps())
	require.NoError(t, r2.Register(path))
	assert.Equal(t, []string{"precip"}, r2.Names())
	spec, err := r2.Spec("precip", true)
	require.NoError(t, err)
	orig, err := r.Spec("precip", true)
	require.NoError(t, err)
	if diff := cmp.Diff(orig, spec, cmpopts.IgnoreUnexported(NormSettings{})); diff != "" {
		t.Fatalf("round-tripped setting mismatch (-want +got):\n%s", diff)
	}
}

func TestColorbarAvailable(t *testing.T) {
	r := newTestColorbars(t)

	assert.Equal(t, []string{"precip", "precip_probability", "temperature"}, r.Available(""))
	assert.Equal(t, []string{"precip", "temperature"}, r.Available("", true))

	// references inherit the category of their target
	assert.Equal(t, []string{"precip", "precip_probability"}, r.Available("precipitation"))
	assert.Equal(t, []string{"temperature"}, r.Available("temperature"))
	assert.Empty(t, r.Available("nope"))
}
