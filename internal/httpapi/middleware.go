package httpapi

import (
	"strconv"
	"time"

	"github.com/alexanderramin/stride/internal/metrics"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// requestID keeps a caller-supplied request id or assigns a fresh one.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDHeader, id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

func accessLog(logger *zap.Logger, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// Let the error handler write the response so the status is final.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		if m != nil {
			m.RecordHTTPRequest(c.Method(), route, strconv.Itoa(status), elapsed)
		}
		logger.Info("http_request",
			zap.String("method", c.Method()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", elapsed.Milliseconds()),
			zap.Any("request_id", c.Locals(requestIDHeader)),
		)
		return nil
	}
}
