// cftree/tree.go
//
// Package cftree implements the CF-tree: a balanced, in-memory tree of
// cluster-feature summaries that supports single-pass incremental
// insertion of points, maintained by recursive descent, absorb-or-split
// at each level, and root promotion when the root itself overflows.
package cftree

import (
	"iter"

	"birch/cfeature"
	"birch/point"
)

// Tree owns a root node built incrementally from a stream of points. It
// is a pure value: the root holds no back-pointers, and a finished tree
// can be traversed read-only by an external renderer or pretty-printer
// without any coordination (spec §5, §6.2).
type Tree[CF cfeature.CFeature[CF]] struct {
	root   *Node[CF]
	config Config
}

// New returns an empty tree for the given configuration.
func New[CF cfeature.CFeature[CF]](config Config) (*Tree[CF], error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return &Tree[CF]{
		root:   newNode[CF](config.NodeCapacity.Max),
		config: config,
	}, nil
}

func validateConfig(config Config) error {
	if _, err := NewConfig(config.NodeCapacity, config.LeafCapacity, config.Threshold); err != nil {
		return err
	}
	return nil
}

// FromStream consumes points to termination, inserting each one in turn,
// and returns the finalized tree (spec §6.1's Tree::from_stream). The
// point-stream source itself — random samplers, file readers — is an
// external collaborator; this only consumes whatever iter.Seq it's
// given.
func FromStream[CF cfeature.CFeature[CF]](points iter.Seq[point.Point], config Config) (*Tree[CF], error) {
	t, err := New[CF](config)
	if err != nil {
		return nil, err
	}
	for p := range points {
		t.Insert(p)
	}
	return t, nil
}

// Insert adds a single point to the tree, absorbing it into the nearest
// leaf entry that can accommodate it within threshold, otherwise growing
// the tree and splitting and promoting a new root as needed (spec
// §4.3.4).
func (t *Tree[CF]) Insert(p point.Point) {
	outcome := insertInto(t.root, p, t.config)
	if !outcome.IsSplit() {
		t.root = outcome.Node
		return
	}
	t.root = &Node[CF]{
		Entries: []NodeEntry[CF]{
			{Feature: outcome.Left.ComputeFeature(), Child: outcome.Left},
			{Feature: outcome.Right.ComputeFeature(), Child: outcome.Right},
		},
	}
}

// Height returns the tree's height, as defined on Node.
func (t *Tree[CF]) Height() int {
	return t.root.Height()
}

// Entries returns a read-only copy of the root node's entries (spec
// §6.1). Each entry's Child, if present, may be traversed recursively by
// a renderer or pretty-printer.
func (t *Tree[CF]) Entries() []NodeEntry[CF] {
	out := make([]NodeEntry[CF], len(t.root.Entries))
	copy(out, t.root.Entries)
	return out
}

// Root returns the tree's root node for read-only traversal.
func (t *Tree[CF]) Root() *Node[CF] {
	return t.root
}

// Config returns the configuration the tree was built with.
func (t *Tree[CF]) Config() Config {
	return t.config
}
