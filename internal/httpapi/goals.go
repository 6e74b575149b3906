package httpapi

import (
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/repository"
	"github.com/gofiber/fiber/v2"
)

func (s *Server) goalsResponse(c *fiber.Ctx, snap repository.Snapshot[domain.Goal]) error {
	return c.JSON(fiber.Map{"goals": toGoalDTOs(snap.Items(), s.deps.Now())})
}

func (s *Server) listGoals(c *fiber.Ctx) error {
	return s.goalsResponse(c, s.deps.Goals.Snapshot(c.UserContext()))
}

func (s *Server) createGoal(c *fiber.Ctx) error {
	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	in, err := req.input()
	if err != nil {
		return err
	}
	snap, err := s.deps.Goals.Create(c.UserContext(), in)
	if err != nil {
		return err
	}
	created, _ := snap.Last()
	return c.Status(fiber.StatusCreated).JSON(toGoalDTO(created, s.deps.Now()))
}

func (s *Server) updateGoal(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req goalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	patch, err := req.patch()
	if err != nil {
		return err
	}
	snap, err := s.deps.Goals.Update(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	g, _ := snap.Get(id)
	return c.JSON(toGoalDTO(g, s.deps.Now()))
}

func (s *Server) deleteGoal(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if _, err := s.deps.Goals.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) advanceStep(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req stepRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Step == nil {
		return badRequest("step", "step is required")
	}
	snap, err := s.deps.Goals.AdvanceStep(c.UserContext(), id, *req.Step)
	if err != nil {
		return err
	}
	g, _ := snap.Get(id)
	return c.JSON(toGoalDTO(g, s.deps.Now()))
}
