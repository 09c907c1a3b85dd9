// cftree/insert.go
package cftree

import (
	"math"

	"birch/cfeature"
	"birch/point"
)

// InsertionOutcome is the result of inserting a point into a node: either
// the node was mutated in place (Node set, Left/Right nil), or it
// overflowed and was split into two siblings (Left/Right set, Node nil).
// This mirrors the source's explicit Single/Split sum type (spec §9):
// outcomes propagate up through the return channel rather than through
// parent back-pointers.
type InsertionOutcome[CF cfeature.CFeature[CF]] struct {
	Node  *Node[CF]
	Left  *Node[CF]
	Right *Node[CF]
}

func single[CF cfeature.CFeature[CF]](n *Node[CF]) InsertionOutcome[CF] {
	return InsertionOutcome[CF]{Node: n}
}

func split[CF cfeature.CFeature[CF]](left, right *Node[CF]) InsertionOutcome[CF] {
	return InsertionOutcome[CF]{Left: left, Right: right}
}

// IsSplit reports whether this outcome is a Split rather than a Single.
func (o InsertionOutcome[CF]) IsSplit() bool {
	return o.Left != nil
}

// closestEntry scans n's entries and returns the index of the one whose
// feature has minimum squared distance to p, using a strict-less
// comparison so the first-seen minimum wins ties. It reports false only
// when n has no entries.
//
// The source this tree is modeled on tracks the running minimum with a
// fold that resets its accumulator to None whenever an entry fails to
// improve on the current best, which means a non-improving final entry
// silently discards an already-found best match (spec §9, last bullet).
// That's a bug, not an intentional edge case — a node with any entries at
// all must always select one. This implementation tracks the running
// minimum directly instead of folding through an "improved or reset"
// pair, so it can't lose a match already found.
func closestEntry[CF cfeature.CFeature[CF]](n *Node[CF], p point.Point) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, e := range n.Entries {
		d2 := e.Feature.Dist2Point(p)
		if d2 < bestDist {
			bestDist = d2
			best = i
		}
	}
	return best, best >= 0
}

// absorb attempts to merge p into entry's feature, succeeding iff the
// resulting diam2 stays within threshold (spec §4.3.1). On success the
// entry's feature is replaced; on failure the entry is left untouched.
func absorb[CF cfeature.CFeature[CF]](entry *NodeEntry[CF], p point.Point, threshold float64) bool {
	candidate := entry.Feature.AddPoint(p)
	if candidate.Diam2() > threshold {
		return false
	}
	entry.Feature = candidate
	return true
}

// insertInto implements the recursive node insertion protocol (spec
// §4.3.2). n is mutated in place; the returned outcome tells the caller
// whether n is still a single node or had to split.
func insertInto[CF cfeature.CFeature[CF]](n *Node[CF], p point.Point, cfg Config) InsertionOutcome[CF] {
	idx, found := closestEntry(n, p)
	if !found {
		n.Entries = append(n.Entries, NodeEntry[CF]{Feature: cfeature.From[CF](p)})
		return single(n)
	}

	entry := &n.Entries[idx]
	if entry.Child != nil {
		childOutcome := insertInto(entry.Child, p, cfg)
		if childOutcome.IsSplit() {
			entry.Child = childOutcome.Left
			entry.Feature = entry.Child.ComputeFeature()
			n.Entries = append(n.Entries, NodeEntry[CF]{
				Feature: childOutcome.Right.ComputeFeature(),
				Child:   childOutcome.Right,
			})
			return checkSplit(n, cfg)
		}
		entry.Child = childOutcome.Node
		entry.Feature = entry.Child.ComputeFeature()
		return single(n)
	}

	if absorb(entry, p, cfg.Threshold) {
		return single(n)
	}
	n.Entries = append(n.Entries, NodeEntry[CF]{Feature: cfeature.From[CF](p)})
	return checkSplit(n, cfg)
}

// checkSplit returns Split if n has reached the capacity that applies to
// it (leaf capacity for a leaf node, node capacity otherwise — spec §9's
// note that leaf-vs-branch capacity isn't distinguished except at this
// check), otherwise Single.
func checkSplit[CF cfeature.CFeature[CF]](n *Node[CF], cfg Config) InsertionOutcome[CF] {
	cap := cfg.NodeCapacity
	if n.IsLeaf() {
		cap = cfg.EffectiveLeafCapacity()
	}
	if len(n.Entries) >= cap.Max {
		return splitNode(n)
	}
	return single(n)
}
