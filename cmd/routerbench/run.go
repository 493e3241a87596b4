package main

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Panandika/model-routing-benchmark/internal/benchmark"
	"github.com/Panandika/model-routing-benchmark/internal/config"
	"github.com/Panandika/model-routing-benchmark/internal/inference/openrouter"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Send all questions to the routing API and write the result report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.OpenRouter.APIKey == "" {
				return fmt.Errorf("OPEN_ROUTER_API_KEY environment variable is required")
			}

			questions, err := benchmark.LoadQuestions(cfg.Benchmark.QuestionsFile)
			if err != nil {
				return fmt.Errorf("failed to load questions: %w", err)
			}
			slog.Default().Info("Loaded questions",
				"count", len(questions),
				"file", cfg.Benchmark.QuestionsFile)

			fmt.Printf("Using routing model %s with %d concurrent requests\n",
				cfg.OpenRouter.Model,
				cfg.Benchmark.ConcurrentRequests)
			client := openrouter.NewClient(
				cfg.OpenRouter.BaseURL,
				cfg.OpenRouter.APIKey,
				cfg.OpenRouter.Model,
				cfg.OpenRouter.RetryAttempts,
			)
			defer func() {
				_ = client.Close()
			}()

			runner, err := benchmark.NewRunner(client, cfg.Benchmark.ConcurrentRequests)
			if err != nil {
				return err
			}

			results := runner.Run(cmd.Context(), questions)
			report := benchmark.Report{
				Results: results,
				Summary: benchmark.Summarize(cfg.OpenRouter.Model, results),
			}

			if err := benchmark.WriteReport(cfg.Benchmark.OutputFile, report); err != nil {
				return fmt.Errorf("failed to write the report: %w", err)
			}
			slog.Default().Info("Benchmark results saved",
				"file", cfg.Benchmark.OutputFile)

			printSummary(report.Summary)
			return nil
		},
	}
}

func printSummary(summary benchmark.Summary) {
	fmt.Printf("\nProcessed %d questions\n", summary.TotalQuestions)

	models := make([]string, 0, len(summary.ModelCounts))
	for model := range summary.ModelCounts {
		models = append(models, model)
	}
	sort.Strings(models)
	for _, model := range models {
		color.Green("%s answered %d questions", model, summary.ModelCounts[model])
	}

	if len(summary.FailedIDs) > 0 {
		color.Red("Failed to answer %d questions: %v", len(summary.FailedIDs), summary.FailedIDs)
	}
}
