package battery

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"rankperm/domain/core"
	"rankperm/domain/ranking"
	"rankperm/domain/scoring"
	"rankperm/domain/verdict"
	"rankperm/ports"
)

const (
	defaultWorkers = 4
	shuffleStage   = "permutation"
)

// PermutationReferee estimates the null distribution of the group statistic
// under the exchangeability hypothesis: it pools both groups, repeatedly
// reshuffles which rankings carry which group label, and recomputes the
// statistic on each synthetic split. Permutation, not bootstrap: every trial
// preserves the exact multiset of observed rankings, so the null reflects
// only the randomness of label assignment.
type PermutationReferee struct {
	rngPort ports.RNGPort
	workers int
}

// NewPermutationReferee creates a referee with the default worker count.
func NewPermutationReferee(rngPort ports.RNGPort) *PermutationReferee {
	return &PermutationReferee{rngPort: rngPort, workers: defaultWorkers}
}

// SetWorkers configures trial parallelism. Worker count is part of the
// determinism contract: the same request, seed and worker count reproduce
// the identical null sequence, so it defaults to a fixed value rather than
// the host CPU count.
func (pr *PermutationReferee) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	pr.workers = n
}

// Run computes the observed statistic, builds the null distribution over
// req.Trials label reshuffles and derives the empirical p-value. All input
// validation failures propagate immediately with no partial result.
func (pr *PermutationReferee) Run(ctx context.Context, req ports.RunRequest) (*verdict.Result, error) {
	start := time.Now()

	if req.Trials <= 0 {
		return nil, core.NewInvalidTrialCountError(req.Trials)
	}

	observed, err := scoring.GroupStatistic(req.GroupA, req.GroupB, req.Scheme)
	if err != nil {
		return nil, err
	}

	nulls, err := pr.nullDistribution(ctx, req)
	if err != nil {
		return nil, err
	}

	pValue, err := scoring.EmpiricalPValue(observed.Statistic, nulls)
	if err != nil {
		return nil, err
	}
	conservative, err := scoring.ConservativePValue(observed.Statistic, nulls)
	if err != nil {
		return nil, err
	}
	summary, err := verdict.SummarizeNull(nulls)
	if err != nil {
		return nil, err
	}

	return &verdict.Result{
		RunID:              req.RunID,
		Aggregator:         string(req.Scheme.Aggregator),
		Comparator:         string(req.Scheme.Comparator),
		GroupASize:         len(req.GroupA),
		GroupBSize:         len(req.GroupB),
		ItemCount:          req.GroupA.ItemCount(),
		Observed:           observed.Statistic,
		MeanA:              observed.MeanA,
		MeanB:              observed.MeanB,
		NullSamples:        nulls,
		PValue:             pValue,
		ConservativePValue: conservative,
		Status:             verdict.Classify(pValue),
		Summary:            summary,
		Trials:             req.Trials,
		Seed:               req.Seed,
		RuntimeMs:          time.Since(start).Milliseconds(),
		CompletedAt:        core.Now(),
	}, nil
}

// nullDistribution runs req.Trials independent label reshuffles and returns
// each trial's statistic in trial order, without sorting or deduplication.
// Trials are partitioned into contiguous ranges, one per worker; each worker
// owns its own RNG stream and writes only its own index range, so collection
// is race-free and the output is a pure function of (inputs, seed, workers).
func (pr *PermutationReferee) nullDistribution(ctx context.Context, req ports.RunRequest) ([]float64, error) {
	pool := make(ranking.Group, 0, len(req.GroupA)+len(req.GroupB))
	pool = append(pool, req.GroupA...)
	pool = append(pool, req.GroupB...)
	nA := len(req.GroupA)

	workers := pr.workers
	if workers > req.Trials {
		workers = req.Trials
	}

	nulls := make([]float64, req.Trials)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * req.Trials / workers
		hi := (w + 1) * req.Trials / workers
		streamKey := fmt.Sprintf("worker-%d", w)
		g.Go(func() error {
			// The run ID is deliberately excluded from stream derivation:
			// a caller-supplied seed must fully determine the null
			// sequence regardless of which run it executes under.
			stream, err := pr.rngPort.Stream(ctx, "", shuffleStage, streamKey, req.Seed)
			if err != nil {
				return fmt.Errorf("deriving rng stream %s: %w", streamKey, err)
			}

			scratch := make(ranking.Group, len(pool))
			copy(scratch, pool)
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				// Fisher-Yates over the pooled rankings: every ordering of
				// the pool is equally likely, so the prefix/suffix split is
				// a uniform random label assignment without replacement.
				for j := len(scratch) - 1; j > 0; j-- {
					k := stream.Intn(j + 1)
					scratch[j], scratch[k] = scratch[k], scratch[j]
				}

				trial, err := scoring.GroupStatistic(scratch[:nA], scratch[nA:], req.Scheme)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				nulls[i] = trial.Statistic
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return nulls, nil
}
