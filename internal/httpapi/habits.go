package httpapi

import (
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) listHabits(c *fiber.Ctx) error {
	snap := s.deps.Habits.Snapshot(c.UserContext())
	return c.JSON(fiber.Map{"habits": toHabitDTOs(snap.Items())})
}

func (s *Server) createHabit(c *fiber.Ctx) error {
	var req habitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	in, err := req.input()
	if err != nil {
		return err
	}
	snap, err := s.deps.Habits.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	created, _ := snap.Last()
	return c.Status(fiber.StatusCreated).JSON(toHabitDTO(created))
}

func (s *Server) updateHabit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req habitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	patch, err := req.patch()
	if err != nil {
		return err
	}
	snap, err := s.deps.Habits.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	h, _ := snap.Get(id)
	return c.JSON(toHabitDTO(h))
}

func (s *Server) deleteHabit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := s.deps.Habits.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// toggleHabit flips completion for the given date, today when omitted.
func (s *Server) toggleHabit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req toggleRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
	}
	day := domain.DateOf(s.deps.Now())
	if req.Date != "" {
		if day, err = domain.ParseDate(req.Date); err != nil {
			return badRequest("date", err.Error())
		}
	}
	snap, err := s.deps.Habits.ToggleCompletion(c.UserContext(), id, day)
	if err != nil {
		return err
	}
	h, _ := snap.Get(id)
	return c.JSON(fiber.Map{
		"habit":     toHabitDTO(h),
		"date":      day.String(),
		"completed": h.CompletedOn(day),
	})
}
