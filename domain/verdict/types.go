package verdict

import (
	"time"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"

	"rankperm/domain/core"
)

// Status classifies the empirical p-value of a finished run.
type Status string

const (
	StatusSignificant    Status = "significant"
	StatusMarginal       Status = "marginal"
	StatusNotSignificant Status = "not_significant"
)

// Classify buckets a p-value at the conventional 0.05 / 0.10 thresholds.
func Classify(p float64) Status {
	switch {
	case p < 0.05:
		return StatusSignificant
	case p < 0.10:
		return StatusMarginal
	default:
		return StatusNotSignificant
	}
}

// NullDistributionSummary describes the sampled null distribution. It exists
// for reporting; the empirical p-value is always computed from the raw
// samples, never from the summary.
type NullDistributionSummary struct {
	Mean         float64 `json:"mean"`
	StdDev       float64 `json:"std_dev"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Median       float64 `json:"median"`
	Percentile95 float64 `json:"percentile_95"`
	Percentile99 float64 `json:"percentile_99"`
}

// SummarizeNull computes descriptive statistics over the null samples.
func SummarizeNull(samples []float64) (NullDistributionSummary, error) {
	if len(samples) == 0 {
		return NullDistributionSummary{}, core.ErrEmptyNullSample
	}

	mean, _ := stats.Mean(samples)
	stdDev, _ := stats.StandardDeviation(samples)
	min, _ := stats.Min(samples)
	max, _ := stats.Max(samples)
	median, _ := stats.Median(samples)
	p95, _ := stats.Percentile(samples, 95)
	p99, _ := stats.Percentile(samples, 99)

	return NullDistributionSummary{
		Mean:         mean,
		StdDev:       stdDev,
		Min:          min,
		Max:          max,
		Median:       median,
		Percentile95: p95,
		Percentile99: p99,
	}, nil
}

// GaussianTail approximates P(T > observed) under a normal fit to the null
// sample. Cross-check for reports only; permutation statistics are not
// normal in general and the empirical p-value stays authoritative.
func (s NullDistributionSummary) GaussianTail(observed float64) float64 {
	if s.StdDev == 0 {
		if observed >= s.Mean {
			return 0
		}
		return 1
	}
	normal := distuv.Normal{Mu: s.Mean, Sigma: s.StdDev}
	return normal.Survival(observed)
}

// Result is the complete outcome of one permutation test run: the observed
// statistic with both groups' mean score vectors, the ordered null sample
// sequence, and the derived p-values, plus run metadata for logs and reports.
type Result struct {
	RunID      core.RunID `json:"run_id"`
	Aggregator string     `json:"aggregator"`
	Comparator string     `json:"comparator"`

	GroupASize int `json:"group_a_size"`
	GroupBSize int `json:"group_b_size"`
	ItemCount  int `json:"item_count"`

	Observed    float64   `json:"observed_statistic"`
	MeanA       []float64 `json:"mean_a"`
	MeanB       []float64 `json:"mean_b"`
	NullSamples []float64 `json:"null_samples"`

	PValue             float64 `json:"p_value"`
	ConservativePValue float64 `json:"conservative_p_value"`
	Status             Status  `json:"status"`

	Summary NullDistributionSummary `json:"null_summary"`

	Trials      int       `json:"trials"`
	Seed        int64     `json:"seed"`
	RuntimeMs   int64     `json:"runtime_ms"`
	CompletedAt time.Time `json:"completed_at"`
}
