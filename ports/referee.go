package ports

import (
	"context"

	"rankperm/domain/core"
	"rankperm/domain/ranking"
	"rankperm/domain/scoring"
	"rankperm/domain/verdict"
)

// RunRequest carries everything one significance test needs. Groups are
// consumed read-only; the engine derives fresh synthetic groups per trial
// without mutating the originals.
type RunRequest struct {
	RunID  core.RunID
	GroupA ranking.Group
	GroupB ranking.Group
	Scheme scoring.Scheme
	Trials int
	Seed   int64
}

// RefereePort runs a two-group significance test and returns the full result
// record: observed statistic, mean score vectors, ordered null samples and
// derived p-value.
type RefereePort interface {
	Run(ctx context.Context, req RunRequest) (*verdict.Result, error)
}
