package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunCommand_RunE_InvalidConfig(t *testing.T) {
	setConfigFile(t, setupBrokenConfigFile(t))

	cmd := newRunCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}

func TestNewRunCommand_RunE_NoAPIKey(t *testing.T) {
	t.Setenv("OPEN_ROUTER_API_KEY", "")
	setConfigFile(t, setupConfigFile(t, `[{"id":1,"difficulty":"easy","question":"2+2?"}]`, ""))

	cmd := newRunCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "OPEN_ROUTER_API_KEY")
}

func TestNewRunCommand_RunE_MissingQuestionsFile(t *testing.T) {
	t.Setenv("OPEN_ROUTER_API_KEY", "sk-or-test")

	tmpDir := t.TempDir()
	configContent := `benchmark:
  questions_file: ` + filepath.Join(tmpDir, "does-not-exist.json") + `
`
	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	setConfigFile(t, configPath)

	cmd := newRunCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be an existing and readable file")
}

func TestNewRunCommand_RunE_WritesReport(t *testing.T) {
	t.Setenv("OPEN_ROUTER_API_KEY", "sk-or-test")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-or-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"id": "gen-1",
			"model": "model-x",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "4"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer server.Close()

	configPath := setupConfigFile(t,
		`[{"id":1,"difficulty":"easy","question":"2+2?"}]`,
		"openrouter:\n  base_url: "+server.URL+"\n",
	)
	setConfigFile(t, configPath)

	cmd := newRunCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	outputPath := filepath.Join(filepath.Dir(configPath), "results.json")
	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)

	var report struct {
		Results []struct {
			ID     int     `json:"id"`
			Model  *string `json:"model"`
			Answer *string `json:"answer"`
			Error  *string `json:"error"`
		} `json:"results"`
		Summary struct {
			TotalQuestions int            `json:"total_questions"`
			ModelCounts    map[string]int `json:"model_counts"`
			FailedIDs      []int          `json:"failed_ids"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(data, &report))

	require.Len(t, report.Results, 1)
	assert.Equal(t, 1, report.Results[0].ID)
	require.NotNil(t, report.Results[0].Model)
	assert.Equal(t, "model-x", *report.Results[0].Model)
	require.NotNil(t, report.Results[0].Answer)
	assert.Equal(t, "4", *report.Results[0].Answer)
	assert.Nil(t, report.Results[0].Error)

	assert.Equal(t, 1, report.Summary.TotalQuestions)
	assert.Equal(t, map[string]int{"model-x": 1}, report.Summary.ModelCounts)
	assert.Empty(t, report.Summary.FailedIDs)
}
