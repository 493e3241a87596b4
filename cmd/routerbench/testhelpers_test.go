package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setConfigFile points the package-level config flag at path and restores
// the previous value when the test finishes.
func setConfigFile(t *testing.T, path string) {
	t.Helper()

	original := configFile
	configFile = path
	t.Cleanup(func() {
		configFile = original
	})
}

// setupConfigFile writes a questions file plus a config file referencing it
// and returns the config path. Extra YAML is appended verbatim.
func setupConfigFile(t *testing.T, questionsContent, extraConfig string) string {
	t.Helper()

	tmpDir := t.TempDir()
	questionsPath := filepath.Join(tmpDir, "questions.json")
	require.NoError(t, os.WriteFile(questionsPath, []byte(questionsContent), 0644))

	configContent := fmt.Sprintf(`benchmark:
  questions_file: %s
  output_file: %s
  concurrent_requests: 2
%s`,
		questionsPath,
		filepath.Join(tmpDir, "results.json"),
		extraConfig,
	)

	configPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

func setupBrokenConfigFile(t *testing.T) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("benchmark:\n  invalid [[[\n"), 0644))
	return configPath
}
