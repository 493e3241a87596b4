package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
)

// Question is a single benchmark entry loaded from the questions file
type Question struct {
	ID         int    `json:"id"`
	Difficulty string `json:"difficulty"`
	Question   string `json:"question"`
}

// LoadQuestions reads a JSON array of questions from path. Duplicate ids are
// rejected so that the output report keeps exactly one result per question.
func LoadQuestions(path string) ([]Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile > %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("json.Unmarshal(%s) > %w", path, err)
	}

	seen := make(map[int]struct{}, len(questions))
	for _, question := range questions {
		if question.Question == "" {
			return nil, fmt.Errorf("question %d has no text", question.ID)
		}
		if _, ok := seen[question.ID]; ok {
			return nil, fmt.Errorf("duplicate question id %d", question.ID)
		}
		seen[question.ID] = struct{}{}
	}

	return questions, nil
}
