package scoring

import "rankperm/domain/core"

// EmpiricalPValue computes the one-sided empirical p-value: the fraction of
// null-trial statistics strictly greater than the observed one. Ties with
// the observed statistic are NOT counted as extreme, so the smallest nonzero
// value is 1/N and a result of exactly 0 means the observed statistic
// exceeded every sampled null outcome.
func EmpiricalPValue(observed float64, nulls []float64) (float64, error) {
	if len(nulls) == 0 {
		return 0, core.ErrEmptyNullSample
	}
	extreme := 0
	for _, t := range nulls {
		if t > observed {
			extreme++
		}
	}
	return float64(extreme) / float64(len(nulls)), nil
}

// ConservativePValue applies the add-one convention (count(>=) + 1) / (N+1),
// which treats the observed grouping as one more permutation and therefore
// can never return exactly zero. Reported alongside the strict rule for
// comparison; verdict classification always uses EmpiricalPValue.
func ConservativePValue(observed float64, nulls []float64) (float64, error) {
	if len(nulls) == 0 {
		return 0, core.ErrEmptyNullSample
	}
	extreme := 0
	for _, t := range nulls {
		if t >= observed {
			extreme++
		}
	}
	return float64(extreme+1) / float64(len(nulls)+1), nil
}
