package httpapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func (s *Server) routes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if s.deps.Metrics != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(s.deps.Metrics.Handler()))
	}

	api := s.app.Group("/api")

	goals := api.Group("/goals")
	goals.Get("/", s.listGoals)
	goals.Post("/", s.createGoal)
	goals.Put("/:id", s.updateGoal)
	goals.Delete("/:id", s.deleteGoal)
	goals.Post("/:id/step", s.advanceStep)

	habits := api.Group("/habits")
	habits.Get("/", s.listHabits)
	habits.Post("/", s.createHabit)
	habits.Put("/:id", s.updateHabit)
	habits.Delete("/:id", s.deleteHabit)
	habits.Post("/:id/toggle", s.toggleHabit)

	api.Get("/dashboard", s.dashboard)

	suggestions := api.Group("/suggestions")
	suggestions.Get("/goals", s.suggestGoals)
	suggestions.Get("/habits", s.suggestHabits)
}
