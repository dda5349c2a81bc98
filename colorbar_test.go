// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocolorbar.org/colorbar/settings"
)

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, ValidateColormaps())
	assert.NoError(t, ValidateColorbars())
}

func TestAvailableDefaults(t *testing.T) {
	maps := AvailableColormaps("")
	assert.Contains(t, maps, "precip_rate")
	assert.Contains(t, maps, "cloud_phase")
	assert.Contains(t, maps, "temp_anomaly")
	assert.Contains(t, maps, "viridis")

	rev := AvailableColormaps("", true)
	assert.Contains(t, rev, "viridis_r")
	assert.Contains(t, rev, "precip_rate_r")

	bars := AvailableColorbars("")
	assert.Contains(t, bars, "precip_rate")
	assert.Contains(t, bars, "cloud_phase")
	assert.Contains(t, bars, "temperature_anomaly")
	assert.Contains(t, bars, "precip_accumulation")

	// references resolve to their target's category
	precip := AvailableColorbars("precipitation")
	assert.Contains(t, precip, "precip_rate")
	assert.Contains(t, precip, "precip_accumulation")
	assert.NotContains(t, precip, "cloud_phase")

	assert.NotContains(t, AvailableColorbars("", true), "precip_accumulation")
}

func TestColormapSpecDefaults(t *testing.T) {
	spec, err := ColormapSpec("precip_rate")
	require.NoError(t, err)
	assert.Equal(t, "ListedColormap", spec.Type)
	assert.Len(t, spec.Colors, 13)
}

func TestColorbarSpecReference(t *testing.T) {
	spec, err := ColorbarSpec("precip_accumulation")
	require.NoError(t, err)
	require.NotNil(t, spec.Cmap)
	assert.Equal(t, settings.StringList{"precip_rate"}, spec.Cmap.Name)

	raw, err := ColorbarSpec("precip_accumulation", false)
	require.NoError(t, err)
	assert.True(t, raw.IsReference())
	assert.Equal(t, "precip_rate", raw.Reference)
}

func TestGetColormap(t *testing.T) {
	cm, err := GetColormap("cloud_phase")
	require.NoError(t, err)
	assert.Equal(t, 5, cm.Len())

	cm, err = GetColormap("viridis", 16)
	require.NoError(t, err)
	assert.Equal(t, 16, cm.Len())

	_, err = GetColormap("no_such_map")
	assert.Error(t, err)
}

func TestRenderColorbar(t *testing.T) {
	img, err := RenderColorbar("precip_rate", 256, 32)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 256)

	_, err = RenderColorbar("no_such_bar", 0, 0)
	assert.Error(t, err)
}

func TestRenderColorbarOverride(t *testing.T) {
	ov := &settings.ColorbarSpec{Cbar: &settings.CbarSettings{Label: "Rain [mm/hr]"}}
	img, err := RenderColorbar("precip_rate", 256, 32, ov)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestRenderGrids(t *testing.T) {
	img := RenderColorbars("temperature", 192, 24)
	assert.NotNil(t, img)
	assert.Positive(t, img.Bounds().Dx())

	img = RenderColormaps("qualitative", 128, 16)
	assert.NotNil(t, img)
}
