package suggest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/llm"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockLLMClient struct {
	response string
	err      error
	lastReq  llm.GenerateRequest
}

func (m *mockLLMClient) Generate(_ context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return &llm.GenerateResponse{Text: m.response, Model: "gemini-2.5-flash"}, nil
}

func (m *mockLLMClient) Available(_ context.Context) bool { return m.err == nil }

func TestForCategory_ReturnsOrderedSuggestions(t *testing.T) {
	client := &mockLLMClient{response: `[
		{"title":"Walk 8k steps","description":"Every day for a month."},
		{"title":"Cook at home","description":"Five dinners a week."},
		{"title":"Sleep by 11","description":"Track it nightly."}
	]`}
	svc := NewService(client, locale.MustLoad("en"))

	got, err := svc.ForCategory(context.Background(), domain.CategoryHealth)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Walk 8k steps", got[0].Title)
	assert.Equal(t, "Sleep by 11", got[2].Title)

	assert.Equal(t, llm.TaskGoalSuggest, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "'Health' category")
	require.NotNil(t, client.lastReq.ResponseSchema)
	assert.Equal(t, "ARRAY", client.lastReq.ResponseSchema.Type)
}

func TestForFrequency_UsesLocalePrompt(t *testing.T) {
	client := &mockLLMClient{response: `[{"title":"Revisão","description":"Todo domingo."}]`}
	svc := NewService(client, locale.MustLoad("pt"))

	got, err := svc.ForFrequency(context.Background(), domain.FrequencyWeekly)

	require.NoError(t, err)
	assert.Equal(t, []Suggestion{{Title: "Revisão", Description: "Todo domingo."}}, got)
	assert.Equal(t, llm.TaskHabitSuggest, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "'Semanal'")
}

func TestFetch_TruncatesAndDropsIncomplete(t *testing.T) {
	client := &mockLLMClient{response: "```json\n[" +
		`{"title":"A","description":"a"},` +
		`{"title":"","description":"missing title"},` +
		`{"title":"B"},` +
		`{"title":" C ","description":" c "},` +
		`{"title":"D","description":"d"},` +
		`{"title":"E","description":"e"}` +
		"]\n```"}
	svc := NewService(client, locale.MustLoad("en"))

	got, err := svc.ForCategory(context.Background(), domain.CategoryOther)

	require.NoError(t, err)
	assert.Equal(t, []Suggestion{
		{Title: "A", Description: "a"},
		{Title: "C", Description: "c"},
		{Title: "D", Description: "d"},
	}, got)
}

// Scenario: a network failure yields no suggestions and an error indicator.
func TestFetch_NetworkFailure(t *testing.T) {
	svc := NewService(&mockLLMClient{err: llm.ErrProviderUnavailable}, locale.MustLoad("en"))

	got, err := svc.ForCategory(context.Background(), domain.CategoryCareer)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, llm.ErrProviderUnavailable)
}

func TestFetch_FailureModes(t *testing.T) {
	tests := []struct {
		name     string
		response string
		err      error
	}{
		{"timeout", "", llm.ErrTimeout},
		{"malformed", "not json at all", nil},
		{"object instead of array", `{"title":"x","description":"y"}`, nil},
		{"empty array", `[]`, nil},
		{"nothing usable", `[{"title":"only title"}]`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewService(&mockLLMClient{response: tc.response, err: tc.err}, locale.MustLoad("en"))
			got, err := svc.ForFrequency(context.Background(), domain.FrequencyDaily)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrServiceUnavailable)
		})
	}
}

func TestNewService_NilClient(t *testing.T) {
	svc := NewService(nil, locale.MustLoad("en"))
	_, err := svc.ForCategory(context.Background(), domain.CategoryHealth)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestNewService_NilCatalog(t *testing.T) {
	svc := NewService(&mockLLMClient{response: `[]`}, nil)

	_, err := svc.ForCategory(context.Background(), domain.CategoryHealth)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)

	_, err = svc.ForFrequency(context.Background(), domain.FrequencyDaily)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestNewUnavailableService(t *testing.T) {
	svc := NewUnavailableService(nil)
	_, err := svc.ForFrequency(context.Background(), domain.FrequencyDaily)
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}

func TestInvalidInputs(t *testing.T) {
	client := &mockLLMClient{response: `[]`}
	svc := NewService(client, locale.MustLoad("en"))

	_, err := svc.ForCategory(context.Background(), "hobbies")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	_, err = svc.ForFrequency(context.Background(), "hourly")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Empty(t, client.lastReq.UserPrompt, "invalid input never reaches the model")
}

// TestForCategory_WithGeminiHTTPTestServer exercises the full path from the
// Gemini wire format through ExtractJSON to cleaned suggestions.
func TestForCategory_WithGeminiHTTPTestServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		payload := `[{"title":"Emergency fund","description":"Save three months of expenses."}]`
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{"parts": []map[string]string{{"text": payload}}},
			}},
		})
	}))
	defer srv.Close()

	cfg := llm.DefaultConfig()
	cfg.Endpoint = srv.URL
	cfg.APIKey = "k"
	client, err := llm.NewClient(cfg, llm.NoopObserver{})
	require.NoError(t, err)

	got, err := NewService(client, locale.MustLoad("en")).ForCategory(context.Background(), domain.CategoryFinancial)
	require.NoError(t, err)
	assert.Equal(t, []Suggestion{{Title: "Emergency fund", Description: "Save three months of expenses."}}, got)
}
