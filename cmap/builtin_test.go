// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	cm, err := Builtin("viridis")
	require.NoError(t, err)
	assert.Equal(t, "viridis", cm.AsBase().Name)
	assert.Equal(t, BuiltinCategory("viridis"), Perceptual)

	_, err = Builtin("not_a_colormap")
	assert.Error(t, err)
}

func TestBuiltinReversed(t *testing.T) {
	cm, err := Builtin("viridis")
	require.NoError(t, err)
	rv, err := Builtin("viridis_r")
	require.NoError(t, err)
	assert.Equal(t, "viridis_r", rv.AsBase().Name)
	assert.Equal(t, cm.Map(0), rv.Map(1))
	assert.Equal(t, cm.Map(1), rv.Map(0))
	assert.True(t, IsBuiltin("viridis_r"))
	assert.False(t, IsBuiltin("not_a_colormap"))
}

func TestBuiltinListed(t *testing.T) {
	cm, err := Builtin("tab10")
	require.NoError(t, err)
	l, ok := cm.(*Listed)
	require.True(t, ok)
	assert.Equal(t, 10, l.Len())
}

func TestBuiltinNames(t *testing.T) {
	all := BuiltinNames("")
	assert.Contains(t, all, "viridis")
	assert.Contains(t, all, "tab10")
	assert.True(t, sortedStrings(all))

	qual := BuiltinNames(Qualitative)
	assert.Contains(t, qual, "tab10")
	assert.NotContains(t, qual, "viridis")
	assert.Equal(t, qual, BuiltinNames("categorical"))

	perc := BuiltinNames("PERCEPTUAL")
	assert.Contains(t, perc, "viridis")
}

func sortedStrings(ss []string) bool {
	for i := 1; i < len(ss); i++ {
		if ss[i] < ss[i-1] {
			return false
		}
	}
	return true
}
