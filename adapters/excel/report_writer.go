package excel

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rankperm/domain/verdict"
)

const (
	summarySheet   = "Summary"
	samplesSheet   = "Null Samples"
	histogramSheet = "Histogram"
	histogramBins  = 20
)

// ReportWriter renders a finished test run to an .xlsx workbook: a summary
// sheet, the raw null samples in trial order, and a binned histogram with an
// embedded column chart of the null distribution.
type ReportWriter struct {
	outputDir string
}

// NewReportWriter creates a writer that places workbooks in outputDir.
func NewReportWriter(outputDir string) *ReportWriter {
	return &ReportWriter{outputDir: outputDir}
}

// Write implements ports.ReportPort. Returns the workbook path.
func (w *ReportWriter) Write(ctx context.Context, result *verdict.Result) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", summarySheet)
	if err := w.writeSummary(f, result); err != nil {
		return "", fmt.Errorf("writing summary sheet: %w", err)
	}
	if err := w.writeSamples(f, result); err != nil {
		return "", fmt.Errorf("writing samples sheet: %w", err)
	}
	if err := w.writeHistogram(f, result); err != nil {
		return "", fmt.Errorf("writing histogram sheet: %w", err)
	}

	path := filepath.Join(w.outputDir, fmt.Sprintf("rankperm-%s.xlsx", result.RunID))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("saving report workbook: %w", err)
	}
	return path, nil
}

func (w *ReportWriter) writeSummary(f *excelize.File, result *verdict.Result) error {
	rows := [][]interface{}{
		{"Run ID", string(result.RunID)},
		{"Aggregator", result.Aggregator},
		{"Comparator", result.Comparator},
		{"Group A size", result.GroupASize},
		{"Group B size", result.GroupBSize},
		{"Item count", result.ItemCount},
		{"Trials", result.Trials},
		{"Seed", result.Seed},
		{"Observed statistic", result.Observed},
		{"Empirical p-value", result.PValue},
		{"Conservative p-value", result.ConservativePValue},
		{"Verdict", string(result.Status)},
		{"Null mean", result.Summary.Mean},
		{"Null std dev", result.Summary.StdDev},
		{"Null median", result.Summary.Median},
		{"Null p95", result.Summary.Percentile95},
		{"Null p99", result.Summary.Percentile99},
		{"Gaussian tail (cross-check)", result.Summary.GaussianTail(result.Observed)},
		{"Runtime (ms)", result.RuntimeMs},
		{"Completed at", result.CompletedAt.Format("2006-01-02 15:04:05 UTC")},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeSamples(f *excelize.File, result *verdict.Result) error {
	if _, err := f.NewSheet(samplesSheet); err != nil {
		return err
	}
	header := []interface{}{"Trial", "Statistic"}
	if err := f.SetSheetRow(samplesSheet, "A1", &header); err != nil {
		return err
	}
	for i, stat := range result.NullSamples {
		row := []interface{}{i, stat}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(samplesSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeHistogram(f *excelize.File, result *verdict.Result) error {
	if _, err := f.NewSheet(histogramSheet); err != nil {
		return err
	}
	mids, counts := binCounts(result.NullSamples, histogramBins)

	header := []interface{}{"Bin Mid", "Count"}
	if err := f.SetSheetRow(histogramSheet, "A1", &header); err != nil {
		return err
	}
	for i := range mids {
		row := []interface{}{mids[i], counts[i]}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(histogramSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.AddChart(histogramSheet, "D2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("Null statistics (observed %.4f, p %.4f)", result.Observed, result.PValue),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", histogramSheet, len(mids)+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", histogramSheet, len(mids)+1),
		}},
		Title: []excelize.RichTextRun{{Text: "Null distribution"}},
	})
}

// binCounts buckets samples into equal-width bins and returns each bin's
// midpoint and count. A degenerate (constant) sample collapses to one bin.
func binCounts(samples []float64, bins int) ([]float64, []int) {
	if len(samples) == 0 {
		return nil, nil
	}

	min, max := samples[0], samples[0]
	for _, v := range samples {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min == max {
		return []float64{min}, []int{len(samples)}
	}

	width := (max - min) / float64(bins)
	mids := make([]float64, bins)
	counts := make([]int, bins)
	for i := range mids {
		mids[i] = min + (float64(i)+0.5)*width
	}
	for _, v := range samples {
		bin := int((v - min) / width)
		if bin >= bins {
			bin = bins - 1
		}
		counts[bin]++
	}
	return mids, counts
}
