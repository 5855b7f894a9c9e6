package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"rankperm/adapters/battery"
	"rankperm/adapters/excel"
	"rankperm/adapters/report"
	"rankperm/adapters/rng"
	"rankperm/app"
	"rankperm/domain/ranking"
	"rankperm/domain/scoring"
	"rankperm/domain/verdict"
	"rankperm/internal"
	"rankperm/internal/api"
	"rankperm/internal/config"
	"rankperm/internal/testkit"
	"rankperm/ports"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "rankperm",
		Short: "Permutation tests over two groups' aggregated rankings",
	}
	rootCmd.AddCommand(newRunCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var (
		input       string
		votersA     int
		votersB     int
		items       int
		noiseA      float64
		noiseB      float64
		sameOrder   bool
		aggregator  string
		comparator  string
		trials      int
		seed        int64
		excelDir    string
		markdownOut bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one permutation test and print the verdict",
		Long: `Run a two-group permutation test. Groups come either from an input JSON
file ({"group_a": [[...], ...], "group_b": [[...], ...]}) or, by default,
from the synthetic election generator.

Example: rankperm run --items 5 --noise-b 0.4 --trials 5000 --seed 7 --excel ./reports`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := internal.NewDefaultLogger()
			if trials == 0 {
				trials = cfg.Engine.Trials
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Engine.Seed
			}

			rngAdapter := rng.NewSeededRNG()
			referee := battery.NewPermutationReferee(rngAdapter)
			referee.SetWorkers(cfg.Engine.Workers)

			var reportPort ports.ReportPort
			if excelDir != "" {
				reportPort = excel.NewReportWriter(excelDir)
			}
			service := app.NewSignificanceService(referee, reportPort, logger)

			req := app.TestRequest{
				Aggregator: scoring.AggregatorKind(aggregator),
				Comparator: scoring.ComparatorKind(comparator),
				Trials:     trials,
				Seed:       seed,
			}

			var result *verdict.Result
			var err error
			if input != "" {
				req.GroupA, req.GroupB, err = loadGroups(input)
				if err != nil {
					return err
				}
				result, err = service.RunTest(cmd.Context(), req)
			} else {
				source := testkit.NewElectionGenerator(testkit.ElectionConfig{
					VoterCountA: votersA,
					VoterCountB: votersB,
					ItemCount:   items,
					NoiseA:      noiseA,
					NoiseB:      noiseB,
					DivergeB:    !sameOrder,
					Seed:        seed,
				}, rngAdapter)
				result, err = service.RunFromSource(cmd.Context(), source, req)
			}
			if err != nil {
				return err
			}

			if markdownOut {
				_, err = os.Stdout.Write(report.NewMarkdownRenderer().Render(result))
				return err
			}

			fmt.Printf("run %s (%s/%s, %d trials, seed %d)\n",
				result.RunID, result.Aggregator, result.Comparator, result.Trials, result.Seed)
			fmt.Printf("groups: A=%d B=%d over %d items\n", result.GroupASize, result.GroupBSize, result.ItemCount)
			fmt.Printf("observed statistic: %.6f\n", result.Observed)
			fmt.Printf("empirical p-value: %.6f (conservative %.6f)\n", result.PValue, result.ConservativePValue)
			fmt.Printf("null distribution: mean=%.4f sd=%.4f p95=%.4f max=%.4f\n",
				result.Summary.Mean, result.Summary.StdDev, result.Summary.Percentile95, result.Summary.Max)
			fmt.Printf("verdict: %s\n", result.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "JSON file with group_a and group_b rankings")
	cmd.Flags().IntVar(&votersA, "voters-a", 20, "Synthetic group A size")
	cmd.Flags().IntVar(&votersB, "voters-b", 20, "Synthetic group B size")
	cmd.Flags().IntVar(&items, "items", 5, "Item count for synthetic rankings")
	cmd.Flags().Float64Var(&noiseA, "noise-a", 0.2, "Ballot noise for group A (0 = unanimous)")
	cmd.Flags().Float64Var(&noiseB, "noise-b", 0.2, "Ballot noise for group B")
	cmd.Flags().BoolVar(&sameOrder, "same-order", false, "Draw both groups from the same base order (null scenario)")
	cmd.Flags().StringVar(&aggregator, "aggregator", string(scoring.PositionalPoints), "Aggregator: top_choice or positional_points")
	cmd.Flags().StringVar(&comparator, "comparator", string(scoring.L1), "Comparator: l1 or l2")
	cmd.Flags().IntVar(&trials, "trials", 0, "Permutation trial count (0 = config default)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic runs")
	cmd.Flags().StringVar(&excelDir, "excel", "", "Write an .xlsx report into this directory")
	cmd.Flags().BoolVar(&markdownOut, "markdown", false, "Print the report as markdown instead of plain text")

	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the significance API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := internal.NewDefaultLogger()

			referee := battery.NewPermutationReferee(rng.NewSeededRNG())
			referee.SetWorkers(cfg.Engine.Workers)
			service := app.NewSignificanceService(referee, nil, logger)
			server := api.NewServer(service)

			addr := ":" + cfg.Server.Port
			logger.Info("listening on %s", addr)
			return http.ListenAndServe(addr, server.Handler())
		},
	}
}

type groupsFile struct {
	GroupA ranking.Group `json:"group_a"`
	GroupB ranking.Group `json:"group_b"`
}

func loadGroups(path string) (ranking.Group, ranking.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var gf groupsFile
	if err := json.Unmarshal(data, &gf); err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return gf.GroupA, gf.GroupB, nil
}
