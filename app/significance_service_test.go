package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rankperm/domain/core"
	"rankperm/domain/ranking"
	"rankperm/domain/scoring"
	"rankperm/domain/verdict"
	"rankperm/internal"
	"rankperm/internal/testkit"
)

type capturingReport struct {
	written *verdict.Result
}

func (c *capturingReport) Write(ctx context.Context, result *verdict.Result) (string, error) {
	c.written = result
	return "captured", nil
}

func TestRunTest(t *testing.T) {
	kit := testkit.NewTestKit()
	captured := &capturingReport{}
	service := NewSignificanceService(kit.Referee(), captured, internal.NewLogger(internal.LogLevelError))

	result, err := service.RunTest(context.Background(), TestRequest{
		GroupA:     ranking.Group{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}},
		GroupB:     ranking.Group{{2, 1, 0}, {2, 0, 1}, {1, 2, 0}},
		Aggregator: scoring.PositionalPoints,
		Comparator: scoring.L1,
		Trials:     100,
		Seed:       42,
	})
	require.NoError(t, err)

	assert.Len(t, result.NullSamples, 100)
	assert.GreaterOrEqual(t, result.PValue, 0.0)
	assert.LessOrEqual(t, result.PValue, 1.0)
	assert.NotEmpty(t, result.RunID)
	assert.Same(t, result, captured.written)
}

func TestRunTestRejectsUnknownScheme(t *testing.T) {
	kit := testkit.NewTestKit()
	service := NewSignificanceService(kit.Referee(), nil, internal.NewLogger(internal.LogLevelError))

	_, err := service.RunTest(context.Background(), TestRequest{
		GroupA:     ranking.Group{{0, 1}},
		GroupB:     ranking.Group{{1, 0}},
		Aggregator: "borda",
		Comparator: scoring.L1,
		Trials:     10,
	})
	assert.ErrorIs(t, err, core.ErrUnknownAggregator)
}

func TestRunFromSource(t *testing.T) {
	kit := testkit.NewTestKit()
	service := NewSignificanceService(kit.Referee(), nil, internal.NewLogger(internal.LogLevelError))

	config := testkit.DefaultElectionConfig()
	config.VoterCountA = 10
	config.VoterCountB = 10
	source := kit.Source(config)

	result, err := service.RunFromSource(context.Background(), source, TestRequest{
		Aggregator: scoring.PositionalPoints,
		Comparator: scoring.L2,
		Trials:     200,
		Seed:       42,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, result.GroupASize)
	assert.Equal(t, 10, result.GroupBSize)
	assert.Equal(t, config.ItemCount, result.ItemCount)
}
