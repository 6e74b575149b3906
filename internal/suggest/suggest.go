// Package suggest asks a language model for goal and habit ideas.
package suggest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/llm"
	"github.com/alexanderramin/stride/internal/locale"
)

// MaxSuggestions is the number of suggestions requested and returned.
const MaxSuggestions = 3

// ErrServiceUnavailable wraps every failure of a suggestion request.
var ErrServiceUnavailable = errors.New("suggestion service unavailable")

type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Service interface {
	ForCategory(ctx context.Context, c domain.Category) ([]Suggestion, error)
	ForFrequency(ctx context.Context, f domain.Frequency) ([]Suggestion, error)
}

type service struct {
	client  llm.LLMClient
	catalog *locale.Catalog
	// reason is set when no client or catalog is available.
	reason error
}

// NewService creates a Service backed by client, with prompts from catalog.
func NewService(client llm.LLMClient, catalog *locale.Catalog) Service {
	s := &service{client: client, catalog: catalog}
	switch {
	case client == nil:
		s.reason = llm.ErrNotConfigured
	case catalog == nil:
		s.reason = fmt.Errorf("%w: no prompt catalog", llm.ErrNotConfigured)
	}
	return s
}

// NewUnavailableService returns a Service whose every call fails with reason.
func NewUnavailableService(reason error) Service {
	if reason == nil {
		reason = llm.ErrNotConfigured
	}
	return &service{reason: reason}
}

// suggestionSchema describes an array of {title, description} objects.
var suggestionSchema = &llm.Schema{
	Type: "ARRAY",
	Items: &llm.Schema{
		Type: "OBJECT",
		Properties: map[string]*llm.Schema{
			"title":       {Type: "STRING", Description: "The specific title of the suggestion."},
			"description": {Type: "STRING", Description: "A brief, motivating description."},
		},
		Required: []string{"title", "description"},
	},
}

func (s *service) ForCategory(ctx context.Context, c domain.Category) ([]Suggestion, error) {
	if s.reason != nil {
		return nil, unavailable(s.reason)
	}
	if !c.Valid() {
		return nil, unavailable(fmt.Errorf("unknown category %q", c))
	}
	prompt, err := s.catalog.GoalPrompt(c)
	if err != nil {
		return nil, unavailable(err)
	}
	return s.fetch(ctx, llm.TaskGoalSuggest, prompt)
}

func (s *service) ForFrequency(ctx context.Context, f domain.Frequency) ([]Suggestion, error) {
	if s.reason != nil {
		return nil, unavailable(s.reason)
	}
	if !f.Valid() {
		return nil, unavailable(fmt.Errorf("unknown frequency %q", f))
	}
	prompt, err := s.catalog.HabitPrompt(f)
	if err != nil {
		return nil, unavailable(err)
	}
	return s.fetch(ctx, llm.TaskHabitSuggest, prompt)
}

func (s *service) fetch(ctx context.Context, task llm.TaskType, prompt string) ([]Suggestion, error) {
	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:           task,
		SystemPrompt:   s.catalog.Prompts.System,
		UserPrompt:     prompt,
		ResponseSchema: suggestionSchema,
	})
	if err != nil {
		return nil, unavailable(err)
	}

	raw, err := llm.ExtractJSON[[]Suggestion](resp.Text, nil)
	if err != nil {
		return nil, unavailable(err)
	}

	out := clean(raw)
	if len(out) == 0 {
		return nil, unavailable(fmt.Errorf("%w: no usable suggestions", llm.ErrInvalidOutput))
	}
	return out, nil
}

// clean trims fields, drops incomplete items and keeps at most MaxSuggestions
// in the order the model returned them.
func clean(raw []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, MaxSuggestions)
	for _, item := range raw {
		item.Title = strings.TrimSpace(item.Title)
		item.Description = strings.TrimSpace(item.Description)
		if item.Title == "" || item.Description == "" {
			continue
		}
		out = append(out, item)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}

func unavailable(cause error) error {
	return fmt.Errorf("%w: %w", ErrServiceUnavailable, cause)
}
