package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gosolve/optbench/internal/bench"
	"github.com/gosolve/optbench/internal/report"
	"github.com/gosolve/optbench/pkg/config"
	"github.com/gosolve/optbench/pkg/logger"
	"github.com/gosolve/optbench/pkg/utils"
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "optbench",
		Short:        "Benchmark a derivative-free simplex optimizer against a fixed objective suite",
		Long:         "optbench runs a fixed sequence of test objective functions through a Nelder-Mead\nsimplex search, measuring wall-clock time, evaluation counts, accuracy, and\nconvergence, and writes the results as a console table and a CSV file for\ncross-language comparison.",
		RunE:         runSuite,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (defaults are used when omitted)")
	root.AddCommand(newPerfCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	return config.Load(configPath)
}

func runSuite(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger.SetDefault(logger.New(cfg.LogLevel, os.Stderr))

	fmt.Println("Nelder-Mead Real Performance Benchmark")
	fmt.Println("======================================")

	cases := bench.Suite()
	runner := bench.NewRunner(cfg.Solver)
	agg := report.NewAggregator()

	start := time.Now()
	bench.NewDriver(runner, cases).RunAll(agg)
	logger.Info("suite finished",
		"cases", len(cases),
		"elapsed", utils.FormatDuration(time.Since(start)))

	agg.Render(os.Stdout)

	if err := agg.WriteCSV(cfg.OutputCSV); err != nil {
		logger.Error("saving results failed", "error", err)
		return err
	}
	fmt.Printf("\nResults saved to %s\n", cfg.OutputCSV)
	return nil
}

func newPerfCmd() *cobra.Command {
	var repeats int

	cmd := &cobra.Command{
		Use:   "perf [case]",
		Short: "Repeat one case and report the mean execution time",
		Long:  "perf re-runs a single test case (default Rosenbrock) several times and reports\nonly the arithmetic mean execution time, averaging out measurement noise.\nNo table is rendered and no CSV is written.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger.SetDefault(logger.New(cfg.LogLevel, os.Stderr))

			name := "Rosenbrock"
			if len(args) == 1 {
				name = args[0]
			}
			tc, ok := bench.CaseByName(name)
			if !ok {
				return fmt.Errorf("unknown test case %q", name)
			}

			n := cfg.Repeat.Count
			if repeats > 0 {
				n = repeats
			}

			mean, err := bench.NewRunner(cfg.Solver).Repeat(tc, n)
			if err != nil {
				return err
			}
			fmt.Printf("%s: mean execution time over %d runs: %.3f ms\n", name, n, mean)
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVar(&repeats, "repeats", 0, "number of runs (overrides the config value)")
	return cmd
}
