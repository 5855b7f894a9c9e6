package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankperm/domain/core"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, StatusSignificant, Classify(0.0))
	assert.Equal(t, StatusSignificant, Classify(0.049))
	assert.Equal(t, StatusMarginal, Classify(0.05))
	assert.Equal(t, StatusMarginal, Classify(0.099))
	assert.Equal(t, StatusNotSignificant, Classify(0.10))
	assert.Equal(t, StatusNotSignificant, Classify(1.0))
}

func TestSummarizeNull(t *testing.T) {
	samples := []float64{1, 2, 3, 4, 5}

	summary, err := SummarizeNull(samples)
	require.NoError(t, err)

	assert.Equal(t, 3.0, summary.Mean)
	assert.Equal(t, 1.0, summary.Min)
	assert.Equal(t, 5.0, summary.Max)
	assert.Equal(t, 3.0, summary.Median)
	assert.Greater(t, summary.StdDev, 0.0)
	assert.GreaterOrEqual(t, summary.Percentile99, summary.Percentile95)
}

func TestSummarizeNullEmpty(t *testing.T) {
	_, err := SummarizeNull(nil)
	assert.ErrorIs(t, err, core.ErrEmptyNullSample)
}

func TestGaussianTail(t *testing.T) {
	summary := NullDistributionSummary{Mean: 0, StdDev: 1}

	// Survival at the mean is one half; far right tail approaches zero.
	assert.InDelta(t, 0.5, summary.GaussianTail(0), 1e-12)
	assert.Less(t, summary.GaussianTail(5), 1e-5)

	// Degenerate null distribution falls back to a step function.
	flat := NullDistributionSummary{Mean: 2, StdDev: 0}
	assert.Equal(t, 0.0, flat.GaussianTail(3))
	assert.Equal(t, 1.0, flat.GaussianTail(1))
}
