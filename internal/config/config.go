package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Benchmark  BenchmarkConfig  `mapstructure:"benchmark"`
}

type OpenRouterConfig struct {
	APIKey        string `mapstructure:"api_key"`
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	Model         string `mapstructure:"model" validate:"required"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type BenchmarkConfig struct {
	QuestionsFile      string `mapstructure:"questions_file" validate:"required,file"`
	OutputFile         string `mapstructure:"output_file" validate:"required"`
	ConcurrentRequests int64  `mapstructure:"concurrent_requests" validate:"required,min=1"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/routerbench")
	}

	v.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1")
	v.SetDefault("openrouter.model", "openrouter/auto")
	v.SetDefault("openrouter.retry_attempts", 3)
	v.SetDefault("benchmark.questions_file", "questions-benchmark.json")
	v.SetDefault("benchmark.output_file", "questions_benchmark_results.json")
	v.SetDefault("benchmark.concurrent_requests", 5)

	// Bind OpenRouter credentials to environment variables only (not from config file)
	if err := v.BindEnv("openrouter.api_key", "OPEN_ROUTER_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPEN_ROUTER_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openrouter.model", "OPEN_ROUTER_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPEN_ROUTER_MODEL environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
