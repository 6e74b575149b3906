package httpapi

import (
	"github.com/alexanderramin/stride/internal/stats"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) dashboard(c *fiber.Ctx) error {
	ctx := c.UserContext()
	now := s.deps.Now()
	d := stats.BuildDashboard(s.deps.Goals.Snapshot(ctx).Items(), s.deps.Habits.Snapshot(ctx).Items(), now)
	return c.JSON(toDashboardDTO(d, now))
}
