// Copyright (c) 2025, The Colorbar Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// StringList is a list of strings that a YAML file may give either
// as a single scalar or as a sequence. A single element marshals
// back to a scalar.
type StringList []string

func (sl *StringList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var s string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*sl = StringList{s}
	case yaml.SequenceNode:
		var s []string
		if err := n.Decode(&s); err != nil {
			return err
		}
		*sl = StringList(s)
	default:
		return fmt.Errorf("expected a string or a list of strings, got %s", n.Tag)
	}
	return nil
}

func (sl StringList) MarshalYAML() (any, error) {
	if len(sl) == 1 {
		return sl[0], nil
	}
	return []string(sl), nil
}

// IntList is a list of ints that a YAML file may give either as a
// single scalar or as a sequence.
type IntList []int

func (il *IntList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var i int
		if err := n.Decode(&i); err != nil {
			return err
		}
		*il = IntList{i}
	case yaml.SequenceNode:
		var is []int
		if err := n.Decode(&is); err != nil {
			return err
		}
		*il = IntList(is)
	default:
		return fmt.Errorf("expected an int or a list of ints, got %s", n.Tag)
	}
	return nil
}

func (il IntList) MarshalYAML() (any, error) {
	if len(il) == 1 {
		return il[0], nil
	}
	return []int(il), nil
}

// Sum returns the sum of the list values.
func (il IntList) Sum() int {
	s := 0
	for _, v := range il {
		s += v
	}
	return s
}

// FloatList is a list of floats that a YAML file may give either as
// a single scalar or as a sequence.
type FloatList []float32

func (fl *FloatList) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		var f float32
		if err := n.Decode(&f); err != nil {
			return err
		}
		*fl = FloatList{f}
	case yaml.SequenceNode:
		var fs []float32
		if err := n.Decode(&fs); err != nil {
			return err
		}
		*fl = FloatList(fs)
	default:
		return fmt.Errorf("expected a float or a list of floats, got %s", n.Tag)
	}
	return nil
}

func (fl FloatList) MarshalYAML() (any, error) {
	if len(fl) == 1 {
		return fl[0], nil
	}
	return []float32(fl), nil
}

// ColorValue is a color that a YAML file may give either as a string
// (a hex code or a named color) or as a list of channel values.
// Exactly one of Str and Values is set.
type ColorValue struct {
	Str    string
	Values []float32
}

func (cv *ColorValue) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Decode(&cv.Str)
	case yaml.SequenceNode:
		return n.Decode(&cv.Values)
	default:
		return fmt.Errorf("expected a color string or a list of channel values, got %s", n.Tag)
	}
}

func (cv ColorValue) MarshalYAML() (any, error) {
	if cv.Values != nil {
		return cv.Values, nil
	}
	return cv.Str, nil
}

// IsList returns whether the color was given as channel values
// instead of a string.
func (cv ColorValue) IsList() bool {
	return cv.Values != nil
}

// Auxiliary is the free-form metadata block of a configuration,
// preserved across reads and writes. Only the category entry is
// interpreted.
type Auxiliary map[string]any

// Categories returns the category entry as a list of strings,
// whether it was given as a single string or as a list.
func (a Auxiliary) Categories() []string {
	v, ok := a["category"]
	if !ok {
		return nil
	}
	switch cat := v.(type) {
	case string:
		return []string{cat}
	case []any:
		cats := make([]string, 0, len(cat))
		for _, c := range cat {
			if s, ok := c.(string); ok {
				cats = append(cats, s)
			}
		}
		return cats
	}
	return nil
}

// HasCategory returns whether the metadata lists the given category,
// compared case-insensitively.
func (a Auxiliary) HasCategory(category string) bool {
	for _, c := range a.Categories() {
		if strings.EqualFold(c, category) {
			return true
		}
	}
	return false
}
