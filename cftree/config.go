// cftree/config.go
package cftree

import (
	"errors"
	"math"
)

// ErrConfigInvalid is returned by NewConfig when capacities or the
// threshold don't satisfy the invariants a tree needs to operate: a node
// must be splittable (max >= 2), must have a sane bound (0 < min <= max),
// and the absorption threshold must be a non-negative finite number.
var ErrConfigInvalid = errors.New("cftree: invalid configuration")

// Capacity bounds the number of entries a node may hold: 0 < Min <= Max.
type Capacity struct {
	Min int
	Max int
}

func (c Capacity) validate() error {
	if c.Min <= 0 || c.Max < c.Min {
		return ErrConfigInvalid
	}
	return nil
}

// Config is the tree's configuration surface (spec §6.3): node capacity,
// an optional leaf capacity (defaulting to node capacity when unset),
// and the absorption threshold compared against a leaf entry's diam2.
type Config struct {
	NodeCapacity Capacity
	// LeafCapacity, when non-nil, overrides NodeCapacity for leaf nodes
	// at split-check time.
	LeafCapacity *Capacity
	Threshold    float64
}

// DefaultConfig returns the configuration used throughout spec examples
// and tests: {min: 1, max: 3, threshold: 0.5}.
func DefaultConfig() Config {
	return Config{
		NodeCapacity: Capacity{Min: 1, Max: 3},
		Threshold:    0.5,
	}
}

// NewConfig validates and returns a Config. Node capacity must satisfy
// Max >= 2 (a node with a max of less than 2 entries can never be split,
// which would make the tree unboundedly deep at that level), LeafCapacity
// if provided must be individually valid, and Threshold must be a
// non-negative finite number.
func NewConfig(nodeCapacity Capacity, leafCapacity *Capacity, threshold float64) (Config, error) {
	if err := nodeCapacity.validate(); err != nil {
		return Config{}, err
	}
	if nodeCapacity.Max < 2 {
		return Config{}, ErrConfigInvalid
	}
	if leafCapacity != nil {
		if err := leafCapacity.validate(); err != nil {
			return Config{}, err
		}
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 0 {
		return Config{}, ErrConfigInvalid
	}
	return Config{NodeCapacity: nodeCapacity, LeafCapacity: leafCapacity, Threshold: threshold}, nil
}

// EffectiveLeafCapacity returns LeafCapacity if set, otherwise
// NodeCapacity — the "leaf_capacity defaults to node_capacity" rule from
// spec §6.3.
func (c Config) EffectiveLeafCapacity() Capacity {
	if c.LeafCapacity != nil {
		return *c.LeafCapacity
	}
	return c.NodeCapacity
}
