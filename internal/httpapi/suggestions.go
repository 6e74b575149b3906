package httpapi

import (
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (s *Server) suggestGoals(c *fiber.Ctx) error {
	cat, err := locale.ParseCategory(c.Query("category"))
	if err != nil {
		return badRequest("category", err.Error())
	}
	items, err := s.deps.Suggest.ForCategory(c.UserContext(), cat)
	return s.suggestionsResponse(c, items, err)
}

func (s *Server) suggestHabits(c *fiber.Ctx) error {
	freq, err := locale.ParseFrequency(c.Query("frequency"))
	if err != nil {
		return badRequest("frequency", err.Error())
	}
	items, err := s.deps.Suggest.ForFrequency(c.UserContext(), freq)
	return s.suggestionsResponse(c, items, err)
}

// suggestionsResponse answers 503 with an empty list when the lookup failed.
func (s *Server) suggestionsResponse(c *fiber.Ctx, items []suggest.Suggestion, err error) error {
	resp := suggestionsResponse{Suggestions: make([]suggestionDTO, 0, len(items))}
	if err != nil {
		s.deps.Logger.Warn("suggestions_unavailable", zap.Error(err))
		resp.Error = suggest.ErrServiceUnavailable.Error()
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	for _, it := range items {
		resp.Suggestions = append(resp.Suggestions, suggestionDTO{Title: it.Title, Description: it.Description})
	}
	return c.JSON(resp)
}
