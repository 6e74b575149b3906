package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	Temperature  *float64 // nil uses task default
	MaxTokens    *int     // nil uses task default

	// ResponseSchema asks the provider for JSON matching the schema.
	// Providers without schema support fall back to plain JSON mode.
	ResponseSchema *Schema
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// Available checks whether the provider is reachable.
	Available(ctx context.Context) bool
}

// Schema is the subset of OpenAPI schema objects used for structured output.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// NewClient builds the client for cfg.Provider. It returns ErrNotConfigured
// when the LLM is disabled or the provider lacks credentials.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("%w: disabled", ErrNotConfigured)
	}
	switch cfg.Provider {
	case ProviderGemini, "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: set GEMINI_API_KEY", ErrNotConfigured)
		}
		return NewGeminiClient(cfg, observer), nil
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrNotConfigured, cfg.Provider)
	}
}

// callFunc performs one HTTP round trip and returns the generated text.
type callFunc func(ctx context.Context, temperature float64, maxTokens int) (text, model string, err error)

// generateWithRetry runs call under the task timeout, retrying transient
// failures up to cfg.MaxRetries times, and reports the outcome to observer.
func generateWithRetry(ctx context.Context, cfg LLMConfig, observer Observer, req GenerateRequest, call callFunc) (*GenerateResponse, error) {
	start := time.Now()

	taskCfg := cfg.Tasks[req.Task]
	temp := taskCfg.Temperature
	if req.Temperature != nil {
		temp = *req.Temperature
	}
	maxTok := taskCfg.MaxTokens
	if req.MaxTokens != nil {
		maxTok = *req.MaxTokens
	}

	timeout := time.Duration(cfg.TaskTimeout(req.Task)) * time.Millisecond
	attempts := 1 + cfg.MaxRetries

	var lastErr error
	tried := 0
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			break
		}
		tried++
		// Each attempt gets its own deadline so a slow first try can be retried.
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		text, model, err := call(attemptCtx, temp, maxTok)
		timedOut := attemptCtx.Err() == context.DeadlineExceeded
		cancel()
		if err == nil {
			latency := time.Since(start).Milliseconds()
			observer.OnCallComplete(LLMCallEvent{
				Task:      req.Task,
				Provider:  cfg.Provider,
				Model:     cfg.Model,
				LatencyMs: latency,
				Attempts:  tried,
				Success:   true,
			})
			if model == "" {
				model = cfg.Model
			}
			return &GenerateResponse{Text: text, Model: model, LatencyMs: latency}, nil
		}
		if timedOut {
			err = fmt.Errorf("%w: %v", ErrTimeout, err)
		}
		lastErr = err

		// Don't retry on caller cancellation or permanent rejections.
		if ctx.Err() != nil || isPermanent(err) {
			break
		}
	}

	err := classify(ctx, lastErr)
	observer.OnCallComplete(LLMCallEvent{
		Task:      req.Task,
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
		Attempts:  tried,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return nil, err
}

func classify(ctx context.Context, lastErr error) error {
	switch {
	case ctx.Err() != nil:
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ctx.Err()
	case lastErr == nil:
		return ErrRetryExhausted
	case errors.Is(lastErr, ErrTimeout):
		return ErrTimeout
	case isConnectionError(lastErr):
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, lastErr)
	case errors.Is(lastErr, ErrInvalidOutput):
		return lastErr
	default:
		return fmt.Errorf("%w: %v", ErrRetryExhausted, lastErr)
	}
}

// statusError is a non-200 reply from the provider.
type statusError struct {
	provider Provider
	code     int
	body     string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.provider, e.code, e.body)
}

// isPermanent reports client errors that a retry cannot fix.
func isPermanent(err error) bool {
	var se *statusError
	if !errors.As(err, &se) {
		return false
	}
	return se.code >= 400 && se.code < 500 && se.code != http.StatusTooManyRequests && se.code != http.StatusRequestTimeout
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return true
	}
	return false
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	case errors.Is(err, ErrNotConfigured):
		return "NOT_CONFIGURED"
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	default:
		return "UNKNOWN"
	}
}
