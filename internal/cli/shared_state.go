package cli

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App
	// Ctx is canceled when the program exits; suggestion requests derive from it.
	Ctx context.Context

	// Terminal dimensions
	Width  int
	Height int
}

func (s *SharedState) Catalog() *locale.Catalog { return s.App.Catalog }

func (s *SharedState) T(key string) string { return s.App.Catalog.T(key) }

func (s *SharedState) Now() time.Time { return s.App.now() }

func (s *SharedState) Today() domain.Date { return domain.DateOf(s.Now()) }

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ErrorText maps a service error to the message shown to the user.
func (s *SharedState) ErrorText(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Message
	case errors.Is(err, domain.ErrNotFound):
		return s.T("status.not_found")
	default:
		return err.Error()
	}
}
