// cftree/split.go
package cftree

import "birch/cfeature"

// farthestPair scans every unordered pair of entries and returns the
// indices of the pair whose features have maximum pairwise squared
// distance, using a strict-greater comparison so the first-seen maximal
// pair in lexicographic (i, j) order is kept on ties (spec §4.3.3,
// design note on determinism).
//
// Panics if entries has fewer than two elements — the insertion protocol
// never calls this except when a split is already known to be needed,
// which requires node_capacity().max >= 2 entries present.
func farthestPair[CF cfeature.CFeature[CF]](entries []NodeEntry[CF]) (int, int) {
	if len(entries) < 2 {
		panic("cftree: farthestPair requires at least two entries")
	}
	li, ri := 0, 1
	best := entries[0].Feature.Dist2(entries[1].Feature)
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if i == 0 && j == 1 {
				continue
			}
			d2 := entries[i].Feature.Dist2(entries[j].Feature)
			if d2 > best {
				best = d2
				li, ri = i, j
			}
		}
	}
	return li, ri
}

// splitNode replaces an overfull node with two siblings, seeded by the
// farthest pair of entries (spec §4.3.3): every other entry joins
// whichever seed it's closer to, ties going to the right bag since the
// comparison is strict-less for the left bag. Both bags preserve the
// original entries' relative order. This is a greedy 2-means seeding
// split; it does not recurse and does not re-check child balance.
func splitNode[CF cfeature.CFeature[CF]](n *Node[CF]) InsertionOutcome[CF] {
	if len(n.Entries) < 2 {
		panic("cftree: cannot split a node with fewer than two entries")
	}
	li, ri := farthestPair(n.Entries)
	leftFeature := n.Entries[li].Feature
	rightFeature := n.Entries[ri].Feature

	left := make([]NodeEntry[CF], 0, len(n.Entries))
	right := make([]NodeEntry[CF], 0, len(n.Entries))
	for i, e := range n.Entries {
		switch i {
		case li:
			left = append(left, e)
		case ri:
			right = append(right, e)
		default:
			if leftFeature.Dist2(e.Feature) < rightFeature.Dist2(e.Feature) {
				left = append(left, e)
			} else {
				right = append(right, e)
			}
		}
	}
	return split(&Node[CF]{Entries: left}, &Node[CF]{Entries: right})
}
