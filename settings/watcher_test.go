// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testColormapYAML = `type: ListedColormap
color_space: hex
colors:
  - "#000000"
  - "#FFFFFF"
`

const testColorbarYAML = `storm:
  cmap:
    name: viridis
`

func TestWatcherColormaps(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	cmaps := NewColormapRegistry()
	w, err := NewWatcher(cmaps, nil)
	require.NoError(t, err)
	require.NoError(t, w.WatchColormaps(dir))

	path := filepath.Join(dir, "storm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testColormapYAML), 0o644))
	assert.Eventually(t, func() bool {
		return cmaps.Contains("storm")
	}, time.Second, 10*time.Millisecond, "created colormap file should be registered")

	require.NoError(t, os.Remove(path))
	assert.Eventually(t, func() bool {
		return !cmaps.Contains("storm")
	}, time.Second, 10*time.Millisecond, "removed colormap file should be unregistered")

	assert.NoError(t, w.Close())
}

func TestWatcherColorbars(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	cbars := NewColorbarRegistry(nil)
	w, err := NewWatcher(nil, cbars)
	require.NoError(t, err)
	require.NoError(t, w.WatchColorbars(dir))

	path := filepath.Join(dir, "bars.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testColorbarYAML), 0o644))
	assert.Eventually(t, func() bool {
		return cbars.Contains("storm")
	}, time.Second, 10*time.Millisecond, "created colorbar file should be registered")

	require.NoError(t, os.Remove(path))
	assert.Eventually(t, func() bool {
		return !cbars.Contains("storm")
	}, time.Second, 10*time.Millisecond, "removed colorbar file should be unregistered")

	assert.NoError(t, w.Close())
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	dir := t.TempDir()
	cmaps := NewColormapRegistry()
	w, err := NewWatcher(cmaps, nil)
	require.NoError(t, err)
	require.NoError(t, w.WatchColormaps(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "storm.yaml"), []byte(testColormapYAML), 0o644))
	assert.Eventually(t, func() bool {
		return cmaps.Contains("storm")
	}, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"storm"}, cmaps.Names())

	assert.NoError(t, w.Close())
}
