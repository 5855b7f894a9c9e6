package scoring

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"rankperm/domain/core"
	"rankperm/domain/ranking"
)

// GroupComparison is the reduction of two ranking groups to one scalar
// divergence plus each group's mean score vector.
type GroupComparison struct {
	Statistic float64
	MeanA     []float64
	MeanB     []float64
}

// GroupStatistic aggregates every ranking in each group, averages the score
// vectors elementwise, and compares the two means under the scheme. Pure and
// deterministic: identical inputs always yield identical output, with no
// partial results on failure.
func GroupStatistic(groupA, groupB ranking.Group, scheme Scheme) (*GroupComparison, error) {
	if len(groupA) == 0 {
		return nil, core.NewEmptyGroupError("A")
	}
	if len(groupB) == 0 {
		return nil, core.NewEmptyGroupError("B")
	}
	if groupA.ItemCount() != groupB.ItemCount() {
		return nil, core.NewInconsistentItemCountError("B", 0, groupA.ItemCount(), groupB.ItemCount())
	}

	meanA, err := meanScores(groupA, "A", scheme)
	if err != nil {
		return nil, err
	}
	meanB, err := meanScores(groupB, "B", scheme)
	if err != nil {
		return nil, err
	}

	statistic, err := scheme.Compare(meanA, meanB)
	if err != nil {
		return nil, err
	}

	return &GroupComparison{Statistic: statistic, MeanA: meanA, MeanB: meanB}, nil
}

// meanScores computes the elementwise mean of the aggregator applied to every
// ranking in the group.
func meanScores(g ranking.Group, label string, scheme Scheme) ([]float64, error) {
	acc := make([]float64, g.ItemCount())
	for i, r := range g {
		scores, err := scheme.Aggregate(r)
		if err != nil {
			return nil, fmt.Errorf("group %s ranking %d: %w", label, i, err)
		}
		if len(scores) != len(acc) {
			return nil, core.NewInconsistentItemCountError(label, i, len(acc), len(scores))
		}
		floats.Add(acc, scores)
	}
	floats.Scale(1/float64(len(g)), acc)
	return acc, nil
}
