// cftree/node.go
package cftree

import "birch/cfeature"

// NodeEntry pairs a cluster feature with an optional child node. A nil
// Child marks a leaf entry.
type NodeEntry[CF cfeature.CFeature[CF]] struct {
	Feature CF
	Child   *Node[CF]
}

// Node owns an ordered sequence of entries. A node is a leaf iff none of
// its entries has a child. All children of a node are expected to share
// the same height (the balanced-tree invariant); the insertion protocol
// in insert.go is what maintains this.
type Node[CF cfeature.CFeature[CF]] struct {
	Entries []NodeEntry[CF]
}

// newNode allocates an empty node with capacity for maxCap+1 entries (spec
// §4.3.4). A node holds at most maxCap entries between an append and the
// following split check, so the extra slot is slack.
func newNode[CF cfeature.CFeature[CF]](maxCap int) *Node[CF] {
	return &Node[CF]{Entries: make([]NodeEntry[CF], 0, maxCap+1)}
}

// IsLeaf reports whether every entry in n has no child.
func (n *Node[CF]) IsLeaf() bool {
	for _, e := range n.Entries {
		if e.Child != nil {
			return false
		}
	}
	return true
}

// Height returns 1 + the maximum height of n's children, or 1 for a node
// with no children (including an empty node).
func (n *Node[CF]) Height() int {
	maxChild := 0
	for _, e := range n.Entries {
		if e.Child == nil {
			continue
		}
		if h := e.Child.Height(); h > maxChild {
			maxChild = h
		}
	}
	return 1 + maxChild
}

// ComputeFeature returns the sum of every entry's feature. Parent entries
// must be refreshed with this after any child insertion returns a Single
// outcome — the child may have internally rebalanced, so an incremental
// update isn't safe (spec §9).
func (n *Node[CF]) ComputeFeature() CF {
	features := make([]CF, len(n.Entries))
	for i, e := range n.Entries {
		features[i] = e.Feature
	}
	return cfeature.Sum(features)
}
