package llm

import "go.uber.org/zap"

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Attempts  int
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to a zap logger.
type LogObserver struct {
	logger *zap.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *zap.Logger) *LogObserver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	fields := []zap.Field{
		zap.String("task", string(event.Task)),
		zap.String("provider", string(event.Provider)),
		zap.String("model", event.Model),
		zap.Int64("latency_ms", event.LatencyMs),
		zap.Int("attempts", event.Attempts),
	}
	if !event.Success {
		o.logger.Warn("llm_call", append(fields, zap.String("status", "err:"+event.ErrorCode))...)
		return
	}
	o.logger.Info("llm_call", append(fields, zap.String("status", "ok"))...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// MultiObserver forwards each event to every wrapped observer.
type MultiObserver []Observer

func (m MultiObserver) OnCallComplete(event LLMCallEvent) {
	for _, o := range m {
		if o != nil {
			o.OnCallComplete(event)
		}
	}
}
