package ranking

import (
	"fmt"

	"rankperm/domain/core"
)

// Ranking is a total order over a fixed item set, represented as item indices
// from most- to least-preferred. A valid ranking of d items is a bijection
// from rank position to item id over 0..d-1. Rankings are never mutated after
// creation; the engine only reorders which group a ranking belongs to.
type Ranking []int

// ItemCount returns d, the size of the item set this ranking orders.
func (r Ranking) ItemCount() int {
	return len(r)
}

// Validate checks the bijection invariant: every item index 0..d-1 appears
// exactly once.
func (r Ranking) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("%w: ranking is empty", core.ErrInvalidRanking)
	}
	seen := make([]bool, len(r))
	for pos, item := range r {
		if item < 0 || item >= len(r) {
			return fmt.Errorf("%w: item %d at position %d outside 0..%d",
				core.ErrInvalidRanking, item, pos, len(r)-1)
		}
		if seen[item] {
			return fmt.Errorf("%w: item %d appears more than once", core.ErrInvalidRanking, item)
		}
		seen[item] = true
	}
	return nil
}

// Clone returns an independent copy.
func (r Ranking) Clone() Ranking {
	out := make(Ranking, len(r))
	copy(out, r)
	return out
}

// Group is an ordered collection of rankings belonging to one experimental
// condition. Group sizes need not match across conditions.
type Group []Ranking

// ItemCount returns the item-set size of the group's rankings, or 0 for an
// empty group.
func (g Group) ItemCount() int {
	if len(g) == 0 {
		return 0
	}
	return g[0].ItemCount()
}

// Validate checks that the group is nonempty, every member ranking is a valid
// bijection, and all members agree on the item-set size. label names the
// group in error messages so malformed input is traceable to its source.
func (g Group) Validate(label string) error {
	if len(g) == 0 {
		return core.NewEmptyGroupError(label)
	}
	d := g[0].ItemCount()
	for i, r := range g {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("group %s ranking %d: %w", label, i, err)
		}
		if r.ItemCount() != d {
			return core.NewInconsistentItemCountError(label, i, d, r.ItemCount())
		}
	}
	return nil
}
