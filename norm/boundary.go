// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package norm

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
)

// Extend designates which ends of a colorbar get out-of-range
// extensions. For a [Boundary] norm it also reserves colormap
// colors for the extensions.
type Extend int32

const (
	// ExtendNeither has no out-of-range extensions.
	ExtendNeither Extend = iota

	// ExtendBoth has extensions below and above the data range.
	ExtendBoth

	// ExtendMin has an extension below the data range.
	ExtendMin

	// ExtendMax has an extension above the data range.
	ExtendMax

	// ExtendN is the number of extend values.
	ExtendN
)

var extendNames = []string{"neither", "both", "min", "max"}

func (ex Extend) String() string {
	if ex < 0 || ex >= ExtendN {
		return fmt.Sprintf("Extend(%d)", int32(ex))
	}
	return extendNames[ex]
}

// ExtendFromString returns the [Extend] with the given name,
// or an error if the name is not valid.
func ExtendFromString(name string) (Extend, error) {
	ls := strings.ToLower(strings.TrimSpace(name))
	for i, nm := range extendNames {
		if ls == nm {
			return Extend(i), nil
		}
	}
	return ExtendNeither, fmt.Errorf("norm.ExtendFromString: got invalid extend name %q", name)
}

// Lower returns whether the lower extension is present.
func (ex Extend) Lower() bool {
	return ex == ExtendMin || ex == ExtendBoth
}

// Upper returns whether the upper extension is present.
func (ex Extend) Upper() bool {
	return ex == ExtendMax || ex == ExtendBoth
}

// ExtraColors returns the number of extra colormap colors the
// extensions consume for a [Boundary] norm.
func (ex Extend) ExtraColors() int {
	n := 0
	if ex.Lower() {
		n++
	}
	if ex.Upper() {
		n++
	}
	return n
}

// Boundary is a [Norm] that maps data values into discrete regions
// between monotonically increasing boundaries, with each region
// assigned one colormap color bucket.
type Boundary struct {

	// Boundaries are the monotonically increasing region edges.
	Boundaries []float32

	// NColors is the total number of colormap colors the regions
	// select from, including any reserved by Extend. If 0, it is
	// derived from the number of regions and Extend.
	NColors int

	// Extend reserves the first and/or last colormap color for
	// values below and/or above the boundaries.
	Extend Extend

	// Clip maps out-of-range values into the first and last region
	// instead of the under and over colors.
	Clip bool
}

// NewBoundary returns a new [Boundary] norm with the given boundaries,
// deriving the number of colors from the region count.
func NewBoundary(boundaries ...float32) *Boundary {
	return &Boundary{Boundaries: boundaries}
}

// NumRegions returns the number of regions between the boundaries.
func (bn *Boundary) NumRegions() int {
	if len(bn.Boundaries) < 2 {
		return 0
	}
	return len(bn.Boundaries) - 1
}

// numColors returns the effective total color count.
func (bn *Boundary) numColors() int {
	if bn.NColors > 0 {
		return bn.NColors
	}
	return bn.NumRegions() + bn.Extend.ExtraColors()
}

// Map returns the center position of the color bucket assigned to
// the region containing the given value. Values below the first
// boundary map to -1 (the under color), and values above the last
// to 2 (the over color), unless Clip or Extend applies.
func (bn *Boundary) Map(v float32) float32 {
	if math32.IsNaN(v) {
		return v
	}
	nr := bn.NumRegions()
	if nr == 0 {
		return 0
	}
	nc := float32(bn.numColors())
	offset := 0
	if bn.Extend.Lower() {
		offset = 1
	}
	b := bn.Boundaries
	switch {
	case v < b[0]:
		if bn.Clip {
			return (float32(offset) + 0.5) / nc
		}
		if bn.Extend.Lower() {
			return 0.5 / nc
		}
		return -1
	case v > b[nr]:
		if bn.Clip {
			return (float32(offset+nr-1) + 0.5) / nc
		}
		if bn.Extend.Upper() {
			return (nc - 0.5) / nc
		}
		return 2
	case v == b[nr]:
		// the last boundary belongs to the last region
		return (float32(offset+nr-1) + 0.5) / nc
	}
	lo, hi := 0, nr
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if v >= b[mid] {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (float32(offset+lo) + 0.5) / nc
}

// Inverse returns the data value at the given position, treating
// the regions as evenly spaced along 0-1, matching how a colorbar
// lays out boundary regions.
func (bn *Boundary) Inverse(t float32) float32 {
	nr := bn.NumRegions()
	if nr == 0 {
		return 0
	}
	t = clamp01(t)
	x := t * float32(nr)
	i := int(x)
	if i >= nr {
		i = nr - 1
	}
	frac := x - float32(i)
	return bn.Boundaries[i] + frac*(bn.Boundaries[i+1]-bn.Boundaries[i])
}

func (bn *Boundary) Limits() (vmin, vmax float32) {
	if len(bn.Boundaries) == 0 {
		return 0, 1
	}
	return bn.Boundaries[0], bn.Boundaries[len(bn.Boundaries)-1]
}

// Category is a [Norm] for categorical data: integer-valued data
// starting at FirstValue, with one labeled category per colormap
// color.
type Category struct {

	// Labels are the category names, in data value order.
	Labels []string

	// FirstValue is the data value of the first category.
	FirstValue float32
}

// NewCategory returns a new [Category] norm with the given labels.
func NewCategory(labels ...string) *Category {
	return &Category{Labels: labels}
}

// AsBoundary returns the equivalent [Boundary] norm, with one
// unit-width region per category.
func (cn *Category) AsBoundary() *Boundary {
	n := len(cn.Labels)
	b := make([]float32, n+1)
	for i := range b {
		b[i] = cn.FirstValue + float32(i)
	}
	return &Boundary{Boundaries: b, NColors: n}
}

func (cn *Category) Map(v float32) float32 {
	return cn.AsBoundary().Map(v)
}

func (cn *Category) Inverse(t float32) float32 {
	return cn.AsBoundary().Inverse(t)
}

func (cn *Category) Limits() (vmin, vmax float32) {
	return cn.FirstValue, cn.FirstValue + float32(len(cn.Labels))
}

// Ticks returns the tick values at the category centers,
// along with the category labels.
func (cn *Category) Ticks() ([]float32, []string) {
	vals := make([]float32, len(cn.Labels))
	for i := range vals {
		vals[i] = cn.FirstValue + float32(i) + 0.5
	}
	return vals, cn.Labels
}
