package llm

import "errors"

var (
	// ErrProviderUnavailable indicates the model server could not be reached.
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrTimeout indicates the LLM request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the LLM response could not be parsed
	// into the expected structured format.
	ErrInvalidOutput = errors.New("invalid llm output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("llm retry attempts exhausted")

	// ErrNotConfigured indicates the LLM is disabled or lacks credentials.
	ErrNotConfigured = errors.New("llm not configured")
)
