package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"rankperm/domain/core"
	"rankperm/domain/verdict"
)

func testResult() *verdict.Result {
	samples := []float64{0, 1, 2, 3}
	summary, _ := verdict.SummarizeNull(samples)
	return &verdict.Result{
		RunID:              core.RunID("run-1"),
		Aggregator:         "top_choice",
		Comparator:         "l2",
		GroupASize:         5,
		GroupBSize:         7,
		ItemCount:          4,
		Observed:           2.5,
		NullSamples:        samples,
		PValue:             0.25,
		ConservativePValue: 0.4,
		Status:             verdict.StatusNotSignificant,
		Summary:            summary,
		Trials:             4,
		Seed:               9,
	}
}

func TestRenderContainsOutcome(t *testing.T) {
	md := string(NewMarkdownRenderer().Render(testResult()))

	assert.True(t, strings.Contains(md, "run-1"))
	assert.True(t, strings.Contains(md, "0.250000"), "p-value missing from report")
	assert.True(t, strings.Contains(md, "2.500000"), "observed statistic missing from report")
	assert.True(t, strings.Contains(md, string(verdict.StatusNotSignificant)))
}

func TestRenderHTML(t *testing.T) {
	out := string(NewMarkdownRenderer().RenderHTML(testResult()))

	assert.NotEmpty(t, out)
	assert.True(t, strings.Contains(out, "<h1"), "heading not rendered")
	assert.True(t, strings.Contains(out, "<table"), "null summary table not rendered")
}
