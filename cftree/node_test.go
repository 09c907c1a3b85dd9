// cftree/node_test.go
package cftree

import (
	"testing"

	"birch/cfeature"
	"birch/point"

	"github.com/stretchr/testify/assert"
)

func TestEmptyNodeHeightIsOne(t *testing.T) {
	n := &Node[cfeature.BirchCF]{}
	assert.Equal(t, 1, n.Height())
	assert.True(t, n.IsLeaf())
}

func TestLeafNodeIsLeaf(t *testing.T) {
	n := &Node[cfeature.BirchCF]{
		Entries: []NodeEntry[cfeature.BirchCF]{
			{Feature: cfeature.From[cfeature.BirchCF](point.New(1, 2))},
			{Feature: cfeature.From[cfeature.BirchCF](point.New(3, 4))},
		},
	}
	assert.True(t, n.IsLeaf())
	assert.Equal(t, 1, n.Height())
}

func TestNodeWithChildIsNotLeaf(t *testing.T) {
	child := &Node[cfeature.BirchCF]{
		Entries: []NodeEntry[cfeature.BirchCF]{
			{Feature: cfeature.From[cfeature.BirchCF](point.New(1, 2))},
		},
	}
	parent := &Node[cfeature.BirchCF]{
		Entries: []NodeEntry[cfeature.BirchCF]{
			{Feature: child.ComputeFeature(), Child: child},
		},
	}
	assert.False(t, parent.IsLeaf())
	assert.Equal(t, 2, parent.Height())
}

func TestComputeFeatureSumsEntries(t *testing.T) {
	n := &Node[cfeature.BirchCF]{
		Entries: []NodeEntry[cfeature.BirchCF]{
			{Feature: cfeature.From[cfeature.BirchCF](point.New(1, 0))},
			{Feature: cfeature.From[cfeature.BirchCF](point.New(0, 1))},
		},
	}
	sum := n.ComputeFeature()
	assert.Equal(t, 2.0, sum.Size())
	assert.True(t, sum.Center().Equal(point.New(0.5, 0.5)))
}

func TestHeightIsUniformAcrossUnevenEntryCountsAtSameDepth(t *testing.T) {
	leafA := &Node[cfeature.BirchCF]{Entries: []NodeEntry[cfeature.BirchCF]{
		{Feature: cfeature.From[cfeature.BirchCF](point.New(0, 0))},
	}}
	leafB := &Node[cfeature.BirchCF]{Entries: []NodeEntry[cfeature.BirchCF]{
		{Feature: cfeature.From[cfeature.BirchCF](point.New(1, 1))},
		{Feature: cfeature.From[cfeature.BirchCF](point.New(2, 2))},
	}}
	root := &Node[cfeature.BirchCF]{Entries: []NodeEntry[cfeature.BirchCF]{
		{Feature: leafA.ComputeFeature(), Child: leafA},
		{Feature: leafB.ComputeFeature(), Child: leafB},
	}}
	assert.Equal(t, 2, root.Height())
}
