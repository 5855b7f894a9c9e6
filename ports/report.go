package ports

import (
	"context"

	"rankperm/domain/verdict"
)

// ReportPort consumes a finished result and produces an artifact, returning
// its location. The core exposes the null samples and observed statistic as
// plain numeric data and imposes no particular output format.
type ReportPort interface {
	Write(ctx context.Context, result *verdict.Result) (string, error)
}
