package llm

import (
	"os"
	"strconv"
	"strings"
)

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskGoalSuggest  TaskType = "goal_suggest"
	TaskHabitSuggest TaskType = "habit_suggest"
)

// Provider selects the backend an LLMClient talks to.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

const (
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultOllamaEndpoint = "http://localhost:11434"
	DefaultOllamaModel    = "llama3.2"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Enabled    bool
	LogCalls   bool
	Provider   Provider
	Endpoint   string
	Model      string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns an LLMConfig with sensible defaults. Gemini is the
// default provider; it still needs an API key before calls succeed.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Enabled:    true,
		LogCalls:   false,
		Provider:   ProviderGemini,
		Endpoint:   DefaultGeminiEndpoint,
		Model:      DefaultGeminiModel,
		TimeoutMs:  15000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskGoalSuggest:  {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 15000},
			TaskHabitSuggest: {Temperature: 0.7, MaxTokens: 1024, TimeoutMs: 15000},
		},
	}
}

// UseProvider switches to p and resets the endpoint and model to that
// provider's defaults. Unknown providers are ignored.
func (c *LLMConfig) UseProvider(p Provider) {
	switch p {
	case ProviderGemini:
		c.Provider, c.Endpoint, c.Model = p, DefaultGeminiEndpoint, DefaultGeminiModel
	case ProviderOllama:
		c.Provider, c.Endpoint, c.Model = p, DefaultOllamaEndpoint, DefaultOllamaModel
	}
}

// LoadConfig reads LLM configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() LLMConfig {
	cfg := DefaultConfig()
	ApplyEnv(&cfg)
	return cfg
}

// ApplyEnv overlays environment variables onto cfg.
func ApplyEnv(cfg *LLMConfig) {
	if v := os.Getenv("STRIDE_LLM_PROVIDER"); v != "" {
		cfg.UseProvider(Provider(strings.ToLower(v)))
	}
	if v := os.Getenv("STRIDE_LLM_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIDE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIDE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("STRIDE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	// GEMINI_API_KEY wins over the generic API_KEY.
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("STRIDE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STRIDE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}

	applyTaskTimeoutEnv(cfg, TaskGoalSuggest, "STRIDE_LLM_GOAL_SUGGEST_TIMEOUT_MS")
	applyTaskTimeoutEnv(cfg, TaskHabitSuggest, "STRIDE_LLM_HABIT_SUGGEST_TIMEOUT_MS")
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *LLMConfig, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	if cfg.Tasks == nil {
		cfg.Tasks = map[TaskType]TaskConfig{}
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
