// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/tvrjcf/Demo-sub001/tree"
)

func namesOf[T any](c *Children[T]) []string {
	var res []string
	for kid := range c.All() {
		res = append(res, kid.Name())
	}
	return res
}

func TestChildrenFindName(t *testing.T) {
	names := [...]string{"name0", "name1", "name2", "name3", "name4", "name5"}
	parent := NewRoot("par", 0)
	for i, nm := range names {
		NewChild(parent, nm, i)
	}
	assert.Equal(t, len(names), parent.Children().Count())
	for i, nm := range names {
		kid := parent.Children().ByName(nm)
		if assert.NotNil(t, kid, nm) {
			assert.Equal(t, i, kid.Value())
			assert.Same(t, parent.Children().At(i), kid)
		}
	}
	assert.Equal(t, names[:], parent.Children().Names())
}

func TestChildrenFirstMatch(t *testing.T) {
	parent := NewRoot("par", 0)
	NewChild(parent, "a", 1)
	NewChild(parent, "dup", 2)
	NewChild(parent, "dup", 3)
	kid := parent.Children().ByName("dup")
	if assert.NotNil(t, kid) {
		assert.Equal(t, 2, kid.Value())
	}
	assert.Nil(t, parent.Children().ByName("DUP"))
	assert.Nil(t, parent.Children().ByName("missing"))
}

func TestChildrenAt(t *testing.T) {
	_, a, b, c := spliced()
	r := a.Parent()
	assert.Same(t, a, r.Children().At(0))
	assert.Same(t, b, r.Children().At(1))
	assert.Same(t, c, r.Children().At(2))
	assert.Nil(t, r.Children().At(3))
	assert.Nil(t, r.Children().At(100))
	// negative indices are rejected instead of returning the first child
	assert.Nil(t, r.Children().At(-1))
	assert.Nil(t, r.Children().At(-5))
}

func TestChildrenAtMatchesIteration(t *testing.T) {
	r, _, _, _ := spliced()
	for kid := range r.Children().All() {
		assert.Same(t, r.Children().At(0), kid)
		break
	}
	i := 0
	for kid := range r.Children().All() {
		assert.Same(t, r.Children().At(i), kid)
		i++
	}
	assert.Equal(t, r.Children().Count(), i)
}

func TestChildrenEmpty(t *testing.T) {
	r := NewRoot("empty", "")
	c := r.Children()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Count())
	assert.Nil(t, c.First())
	assert.Nil(t, c.Last())
	assert.Nil(t, c.At(0))
	assert.Nil(t, c.ByName(""))
	assert.Nil(t, c.Names())
	assert.Empty(t, namesOf(c))
	assert.False(t, c.Cursor().Next())
}

func TestChildrenAllRestarts(t *testing.T) {
	r, _, _, _ := spliced()
	seq := r.Children().All()
	var first []string
	for kid := range seq {
		first = append(first, kid.Name())
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"A", "B"}, first)
	var again []string
	for kid := range seq {
		again = append(again, kid.Name())
	}
	assert.Equal(t, []string{"A", "B", "C"}, again)
}

func TestChildrenFirstLast(t *testing.T) {
	r, a, _, c := spliced()
	assert.Same(t, a, r.Children().First())
	assert.Same(t, c, r.Children().Last())
	assert.False(t, r.Children().IsEmpty())
}
