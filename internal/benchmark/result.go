package benchmark

import (
	"sort"
	"time"
)

// Result records the outcome for one question. Model and Answer are null
// when the question failed; Error is null when it succeeded.
type Result struct {
	ID         int     `json:"id"`
	Difficulty string  `json:"difficulty"`
	Question   string  `json:"question"`
	Model      *string `json:"model"`
	Answer     *string `json:"answer"`
	Error      *string `json:"error"`
}

// Summary aggregates a finished run: how often each concrete model was
// picked by the router, and which questions failed after retries.
type Summary struct {
	Timestamp      string         `json:"timestamp"`
	TotalQuestions int            `json:"total_questions"`
	RoutingModel   string         `json:"routing_model"`
	ModelCounts    map[string]int `json:"model_counts"`
	FailedIDs      []int          `json:"failed_ids"`
}

// Report is the single JSON document written at the end of a run
type Report struct {
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// Summarize builds the summary for a result list. ModelCounts and FailedIDs
// are always allocated so they marshal as {} and [] rather than null.
func Summarize(routingModel string, results []Result) Summary {
	summary := Summary{
		Timestamp:      time.Now().Format(time.RFC3339),
		TotalQuestions: len(results),
		RoutingModel:   routingModel,
		ModelCounts:    map[string]int{},
		FailedIDs:      []int{},
	}

	for _, result := range results {
		if result.Error != nil {
			summary.FailedIDs = append(summary.FailedIDs, result.ID)
			continue
		}
		if result.Model != nil {
			summary.ModelCounts[*result.Model]++
		}
	}

	sort.Ints(summary.FailedIDs)
	return summary
}
