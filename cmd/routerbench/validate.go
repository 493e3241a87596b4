package main

import (
	"fmt"

	"github.com/Panandika/model-routing-benchmark/internal/benchmark"
	"github.com/Panandika/model-routing-benchmark/internal/config"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the questions file without calling the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			questions, err := benchmark.LoadQuestions(cfg.Benchmark.QuestionsFile)
			if err != nil {
				return fmt.Errorf("failed to load questions: %w", err)
			}

			fmt.Printf("%s: %d questions, all valid\n", cfg.Benchmark.QuestionsFile, len(questions))
			return nil
		},
	}
}
