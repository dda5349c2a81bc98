// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderNamed(t *testing.T) {
	// a plain colormap name renders as a bare strip
	img, err := renderNamed("viridis", 64, 8)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())

	// a name carried by both registries resolves as a colorbar
	img, err = renderNamed("precip_rate", 256, 32)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 256)

	_, err = renderNamed("no_such_name", 0, 0)
	assert.Error(t, err)
}

func TestRunShowWritesImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bar.png")
	code := runShow([]string{"-o", out, "-width", "128", "-height", "16", "precip_rate"})
	assert.Equal(t, 0, code)
	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestRunShowUsageErrors(t *testing.T) {
	assert.Equal(t, 2, runShow(nil))
	assert.Equal(t, 2, runShow([]string{"a", "b"}))
}

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	code := runExport([]string{"-bars", "-category", "temperature", "-o", dir, "-width", "128", "-height", "16"})
	assert.Equal(t, 0, code)
	_, err := os.Stat(filepath.Join(dir, "colorbars", "temperature_anomaly.png"))
	assert.NoError(t, err)

	assert.Equal(t, 2, runExport([]string{"-bars"}))
}

func TestRunValidate(t *testing.T) {
	assert.Equal(t, 0, runValidate(nil))

	// paths without a kind flag are a usage error
	assert.Equal(t, 2, runValidate([]string{"some.yaml"}))

	// a dangling reference fails validation
	path := filepath.Join(t.TempDir(), "broken.yaml")
	data := "rainfall:\n  reference: nowhere\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	assert.Equal(t, 1, runValidate([]string{"-bars", path}))
}
