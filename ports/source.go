package ports

import (
	"context"

	"rankperm/domain/ranking"
)

// RankingSourcePort supplies the two experimental groups. The core only
// requires that every ranking satisfies the bijection invariant; malformed
// input is rejected by the engine, not coerced.
type RankingSourcePort interface {
	Groups(ctx context.Context) (groupA, groupB ranking.Group, err error)
}
