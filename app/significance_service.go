package app

import (
	"context"

	"rankperm/domain/core"
	"rankperm/domain/ranking"
	"rankperm/domain/scoring"
	"rankperm/domain/verdict"
	"rankperm/internal"
	"rankperm/ports"
)

// TestRequest defines the inputs for one significance test.
type TestRequest struct {
	GroupA     ranking.Group          `json:"group_a"`
	GroupB     ranking.Group          `json:"group_b"`
	Aggregator scoring.AggregatorKind `json:"aggregator"`
	Comparator scoring.ComparatorKind `json:"comparator"`
	Trials     int                    `json:"trials"`
	Seed       int64                  `json:"seed"`
}

// SignificanceService orchestrates a full permutation test run: scheme
// construction, run identity, referee invocation and optional report
// emission. The report port may be nil when no artifact is wanted.
type SignificanceService struct {
	referee ports.RefereePort
	report  ports.ReportPort
	logger  *internal.Logger
}

// NewSignificanceService creates the service.
func NewSignificanceService(referee ports.RefereePort, report ports.ReportPort, logger *internal.Logger) *SignificanceService {
	return &SignificanceService{referee: referee, report: report, logger: logger}
}

// RunTest executes one permutation test over the request's groups.
func (s *SignificanceService) RunTest(ctx context.Context, req TestRequest) (*verdict.Result, error) {
	scheme, err := scoring.NewScheme(req.Aggregator, req.Comparator)
	if err != nil {
		return nil, err
	}

	runID := core.NewRunID()
	result, err := s.referee.Run(ctx, ports.RunRequest{
		RunID:  runID,
		GroupA: req.GroupA,
		GroupB: req.GroupB,
		Scheme: scheme,
		Trials: req.Trials,
		Seed:   req.Seed,
	})
	if err != nil {
		s.logger.Error("run %s failed: %v", runID, err)
		return nil, err
	}

	s.logger.Info("run %s: %s statistic=%.4f p=%.4f status=%s (%d trials, %dms)",
		runID, scheme.Name(), result.Observed, result.PValue, result.Status, result.Trials, result.RuntimeMs)

	if s.report != nil {
		path, err := s.report.Write(ctx, result)
		if err != nil {
			s.logger.Warn("run %s: report write failed: %v", runID, err)
		} else {
			s.logger.Info("run %s: report written to %s", runID, path)
		}
	}
	return result, nil
}

// RunFromSource draws both groups from a ranking source, then runs the test.
func (s *SignificanceService) RunFromSource(ctx context.Context, source ports.RankingSourcePort, req TestRequest) (*verdict.Result, error) {
	groupA, groupB, err := source.Groups(ctx)
	if err != nil {
		return nil, err
	}
	req.GroupA = groupA
	req.GroupB = groupB
	return s.RunTest(ctx, req)
}
