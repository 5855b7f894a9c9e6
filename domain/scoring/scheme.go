package scoring

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"rankperm/domain/core"
	"rankperm/domain/ranking"
)

// AggregatorKind selects how one ranking is reduced to a per-item score
// vector.
type AggregatorKind string

const (
	// TopChoice scores 1 for the first-ranked item and 0 for everything
	// else, capturing the share of first-place votes at the group level.
	TopChoice AggregatorKind = "top_choice"

	// PositionalPoints scores each item with its rank position: the item at
	// position i receives i points, so 0 is best and d-1 is worst. The
	// comparator is a symmetric distance, so the lower-is-better orientation
	// needs no sign handling.
	PositionalPoints AggregatorKind = "positional_points"
)

// ComparatorKind selects the distance that reduces two score vectors to a
// scalar.
type ComparatorKind string

const (
	// L1 is the Manhattan distance: sum of absolute elementwise differences.
	L1 ComparatorKind = "l1"

	// L2 is the Euclidean distance of the elementwise difference.
	L2 ComparatorKind = "l2"
)

// Scheme pairs one aggregator with one comparator. The variant set is
// closed: unknown kinds are rejected at construction, never at call time.
type Scheme struct {
	Aggregator AggregatorKind
	Comparator ComparatorKind
}

// NewScheme validates both kinds and returns the scheme.
func NewScheme(agg AggregatorKind, cmp ComparatorKind) (Scheme, error) {
	switch agg {
	case TopChoice, PositionalPoints:
	default:
		return Scheme{}, fmt.Errorf("%w: %q", core.ErrUnknownAggregator, agg)
	}
	switch cmp {
	case L1, L2:
	default:
		return Scheme{}, fmt.Errorf("%w: %q", core.ErrUnknownComparator, cmp)
	}
	return Scheme{Aggregator: agg, Comparator: cmp}, nil
}

// Name returns a stable label for logs and reports.
func (s Scheme) Name() string {
	return string(s.Aggregator) + "/" + string(s.Comparator)
}

// Aggregate maps one ranking to a d-length score vector. The ranking is
// validated first; aggregation itself is pure and O(d).
func (s Scheme) Aggregate(r ranking.Ranking) ([]float64, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	scores := make([]float64, r.ItemCount())
	switch s.Aggregator {
	case TopChoice:
		scores[r[0]] = 1
	case PositionalPoints:
		for pos, item := range r {
			scores[item] = float64(pos)
		}
	}
	return scores, nil
}

// Compare reduces two score vectors to a single nonnegative scalar. The
// result is a genuine distance: Compare(x, y) == Compare(y, x) and
// Compare(x, x) == 0.
func (s Scheme) Compare(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, core.NewDimensionMismatchError(len(x), len(y))
	}
	switch s.Comparator {
	case L2:
		return floats.Distance(x, y, 2), nil
	default:
		return floats.Distance(x, y, 1), nil
	}
}
