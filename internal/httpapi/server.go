// Package httpapi serves the goal and habit stores as a local JSON API.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stride/internal/metrics"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/alexanderramin/stride/internal/suggest"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// Deps are the collaborators the handlers call into. Metrics and Logger are
// optional.
type Deps struct {
	Goals   service.GoalService
	Habits  service.HabitService
	Suggest suggest.Service
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	app  *fiber.App
	deps Deps
}

func New(deps Deps) *Server {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Suggest == nil {
		deps.Suggest = suggest.NewUnavailableService(nil)
	}

	app := fiber.New(fiber.Config{
		AppName:               "stride",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	s := &Server{app: app, deps: deps}

	app.Use(recover.New())
	app.Use(requestID())
	app.Use(accessLog(deps.Logger, deps.Metrics))
	s.routes()
	return s
}

// App exposes the fiber app, mainly for app.Test in tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Listen(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.app.Listen(addr) }()
	s.deps.Logger.Info("http_listen", zap.String("addr", addr))

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}
