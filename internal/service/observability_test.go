package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogUseCaseObserver(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	obs := NewLogUseCaseObserver(zap.New(core))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "create-goal",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"goal_id": int64(7)},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "delete-goal",
		Err:  errors.New("goal 9: not found"),
	})

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "create-goal", entries[0].ContextMap()["use_case"])
	assert.Equal(t, int64(7), entries[0].ContextMap()["goal_id"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "goal 9: not found", entries[1].ContextMap()["error"])
}

func TestNewLogUseCaseObserver_NilLoggerIsNoop(t *testing.T) {
	assert.Equal(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}

func TestUseCaseObserverOrNoop_FansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	obs := useCaseObserverOrNoop([]UseCaseObserver{nil, a, b})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "x"})

	assert.Equal(t, []string{"x"}, a.names())
	assert.Equal(t, []string{"x"}, b.names())
	assert.Equal(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
}
