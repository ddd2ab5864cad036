// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/tvrjcf/Demo-sub001/tree"
	"github.com/tvrjcf/Demo-sub001/tree/testdata"
)

func TestDown(t *testing.T) {
	testTree := testdata.NewSample()
	cur := testTree
	res := []string{}
	for {
		res = append(res, cur.Path())
		curi := Next(cur)
		if curi == nil {
			break
		}
		cur = curi
	}
	assert.Equal(t, []string{"/root", "/root/child0", "/root/child1", "/root/child1/subchild1", "/root/child1/subchild1/subsubchild1", "/root/child2", "/root/child3"}, res)
}

func TestUp(t *testing.T) {
	testTree := testdata.NewSample()
	cur := Last(testTree)
	res := []string{}
	for {
		res = append(res, cur.Path())
		curi := Previous(cur)
		if curi == nil {
			break
		}
		cur = curi
	}
	assert.Equal(t, []string{"/root/child3", "/root/child2", "/root/child1/subchild1/subsubchild1", "/root/child1/subchild1", "/root/child1", "/root/child0", "/root"}, res)
}

func TestLast(t *testing.T) {
	leaf := NewRoot("leaf", 0)
	assert.Same(t, leaf, Last(leaf))
	testTree := testdata.NewSample()
	child1 := testTree.Children().ByName("child1")
	assert.Equal(t, "subsubchild1", Last(child1).Name())
}

func TestNodeWalk(t *testing.T) {
	parent := NewRoot("par1", 0)
	NewChild(parent, "child1", 1)
	child2 := NewChild(parent, "child2", 2)
	NewChild(parent, "child3", 3)
	schild2 := NewChild(child2, "subchild1", 4)

	res := []string{}

	schild2.WalkUp(func(k *Node[int]) bool {
		res = append(res, k.Name())
		return Continue
	})
	assert.Equal(t, []string{"subchild1", "child2", "par1"}, res)
	res = res[:0]

	schild2.WalkUpParent(func(k *Node[int]) bool {
		res = append(res, k.Name())
		return Continue
	})
	assert.Equal(t, []string{"child2", "par1"}, res)
	res = res[:0]

	parent.WalkDownPost(func(k *Node[int]) bool {
		return Continue
	},
		func(k *Node[int]) bool {
			res = append(res, fmt.Sprintf("[%v]", k.Name()))
			return Continue
		})
	assert.Equal(t, []string{"[child1]", "[subchild1]", "[child2]", "[child3]", "[par1]"}, res)
	res = res[:0]

	parent.WalkDown(func(k *Node[int]) bool {
		res = append(res, fmt.Sprintf("[%v]", k.Name()))
		return Continue
	})
	assert.Equal(t, []string{"[par1]", "[child1]", "[child2]", "[subchild1]", "[child3]"}, res)
	res = res[:0]

	parent.WalkDownBreadth(func(k *Node[int], depth int) bool {
		res = append(res, fmt.Sprintf("[%v:%d]", k.Name(), depth))
		return Continue
	})
	assert.Equal(t, []string{"[par1:0]", "[child1:1]", "[child2:1]", "[child3:1]", "[subchild1:2]"}, res)
}

func TestNodeWalkBreak(t *testing.T) {
	testTree := testdata.NewSample()
	res := []string{}
	testTree.WalkDown(func(k *Node[int]) bool {
		res = append(res, k.Name())
		if k.Name() == "child1" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3"}, res)
	res = res[:0]

	testTree.WalkDownPost(func(k *Node[int]) bool {
		return k.Name() != "subchild1"
	}, func(k *Node[int]) bool {
		res = append(res, k.Name())
		return Continue
	})
	assert.Equal(t, []string{"child0", "subchild1", "child1", "child2", "child3", "root"}, res)
	res = res[:0]

	testTree.WalkDownBreadth(func(k *Node[int], depth int) bool {
		res = append(res, k.Name())
		return k.Name() == "root"
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2", "child3"}, res)

	ss := testTree.FindPath("child1/subchild1/subsubchild1")
	require.NotNil(t, ss)
	n := 0
	finished := ss.WalkUp(func(k *Node[int]) bool {
		n++
		return k.Name() != "child1"
	})
	assert.False(t, finished)
	assert.Equal(t, 3, n)
}

func TestNodeWalkSubtree(t *testing.T) {
	testTree := testdata.NewSample()
	child1 := testTree.Children().ByName("child1")
	res := []int{}
	child1.WalkDown(func(k *Node[int]) bool {
		res = append(res, k.Value())
		return Continue
	})
	assert.Equal(t, []int{2, 3, 4}, res)
	res = res[:0]
	testTree.Children().ByName("child3").WalkDownPost(func(k *Node[int]) bool {
		return Continue
	}, func(k *Node[int]) bool {
		res = append(res, k.Value())
		return Continue
	})
	assert.Equal(t, []int{6}, res)
}

func TestNodeWalkValuesInOrder(t *testing.T) {
	testTree := testdata.NewSample()
	res := []int{}
	testTree.WalkDown(func(k *Node[int]) bool {
		res = append(res, k.Value())
		return Continue
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, res)
}
