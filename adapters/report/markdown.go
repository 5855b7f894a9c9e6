package report

import (
	"bytes"
	"fmt"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"rankperm/domain/verdict"
)

// MarkdownRenderer formats a finished test run as a markdown report.
type MarkdownRenderer struct{}

func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render produces the markdown report.
func (r *MarkdownRenderer) Render(result *verdict.Result) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# Permutation Test %s\n\n", result.RunID)
	fmt.Fprintf(&b, "- Scheme: `%s` aggregation, `%s` distance\n", result.Aggregator, result.Comparator)
	fmt.Fprintf(&b, "- Groups: A has %d rankings, B has %d, over %d items\n",
		result.GroupASize, result.GroupBSize, result.ItemCount)
	fmt.Fprintf(&b, "- Trials: %d (seed %d), completed in %d ms\n\n", result.Trials, result.Seed, result.RuntimeMs)

	fmt.Fprintf(&b, "## Outcome\n\n")
	fmt.Fprintf(&b, "- Observed statistic: **%.6f**\n", result.Observed)
	fmt.Fprintf(&b, "- Empirical p-value (strict `>`): **%.6f**\n", result.PValue)
	fmt.Fprintf(&b, "- Conservative p-value (add-one): %.6f\n", result.ConservativePValue)
	fmt.Fprintf(&b, "- Verdict: **%s**\n\n", result.Status)

	s := result.Summary
	fmt.Fprintf(&b, "## Null distribution\n\n")
	fmt.Fprintf(&b, "| Mean | Std Dev | Median | P95 | P99 | Min | Max |\n")
	fmt.Fprintf(&b, "|------|---------|--------|-----|-----|-----|-----|\n")
	fmt.Fprintf(&b, "| %.4f | %.4f | %.4f | %.4f | %.4f | %.4f | %.4f |\n\n",
		s.Mean, s.StdDev, s.Median, s.Percentile95, s.Percentile99, s.Min, s.Max)
	fmt.Fprintf(&b, "Gaussian tail cross-check: %.6f\n", s.GaussianTail(result.Observed))

	return b.Bytes()
}

// RenderHTML converts the markdown report to HTML for the API's html mode.
func (r *MarkdownRenderer) RenderHTML(result *verdict.Result) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML(r.Render(result), p, renderer)
}
