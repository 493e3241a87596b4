package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/Panandika/model-routing-benchmark/internal/inference"
	"golang.org/x/sync/semaphore"
)

// Runner dispatches one completion call per question while keeping at most
// a fixed number of requests in flight.
type Runner struct {
	client      inference.Client
	concurrency int64
}

func NewRunner(client inference.Client, concurrency int64) (*Runner, error) {
	if concurrency < 1 {
		return nil, fmt.Errorf("concurrency must be at least 1, got %d", concurrency)
	}
	return &Runner{
		client:      client,
		concurrency: concurrency,
	}, nil
}

// Run processes all questions and blocks until every one has finished.
// Per-question failures are recorded in their Result and never abort the
// batch. Results are sorted by question id.
func (runner *Runner) Run(ctx context.Context, questions []Question) []Result {
	sem := semaphore.NewWeighted(runner.concurrency)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make([]Result, 0, len(questions))
	)

	for _, question := range questions {
		wg.Add(1)
		go func(question Question) {
			defer wg.Done()

			result := runner.process(ctx, sem, question)

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
		}(question)
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results
}

func (runner *Runner) process(ctx context.Context, sem *semaphore.Weighted, question Question) Result {
	result := Result{
		ID:         question.ID,
		Difficulty: question.Difficulty,
		Question:   question.Question,
	}

	if err := sem.Acquire(ctx, 1); err != nil {
		message := fmt.Sprintf("sem.Acquire > %s", err)
		result.Error = &message
		return result
	}
	defer sem.Release(1)

	slog.Default().Info("Processing question",
		"id", question.ID,
		"difficulty", question.Difficulty)

	response, err := runner.client.Complete(ctx, inference.CompletionRequest{
		Prompt: question.Question,
	})
	if err != nil {
		slog.Default().Error("Failed to get an answer",
			"id", question.ID,
			"error", err)
		message := err.Error()
		result.Error = &message
		return result
	}

	slog.Default().Info("Question completed",
		"id", question.ID,
		"model", response.Model)

	result.Model = &response.Model
	result.Answer = &response.Answer
	return result
}
