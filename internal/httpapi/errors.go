package httpapi

import (
	"errors"
	"strconv"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// badRequest is a 400 carrying the offending field name.
func badRequest(field, message string) error {
	return &domain.ValidationError{Field: field, Message: message}
}

func errorHandler(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	var ferr *fiber.Error
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: err.Error()})
	case errors.As(err, &ferr):
		return c.Status(ferr.Code).JSON(errorResponse{Error: ferr.Message})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "internal error"})
	}
}

func parseID(c *fiber.Ctx) (domain.ID, error) {
	n, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || n <= 0 {
		return 0, badRequest("id", "invalid id "+strconv.Quote(c.Params("id")))
	}
	return domain.ID(n), nil
}
