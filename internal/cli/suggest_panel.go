package cli

import (
	"context"

	"github.com/alexanderramin/stride/internal/suggest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// suggestionsMsg carries the outcome of one suggestion request. tag ties the
// result to the request that produced it.
type suggestionsMsg struct {
	tag   string
	items []suggest.Suggestion
	err   error
}

// suggestionPanel tracks at most one in-flight suggestion request. Starting a
// new request or clearing the panel cancels the previous one and retires its
// tag, so a late result can never overwrite newer state.
type suggestionPanel struct {
	tag     string
	cancel  context.CancelFunc
	loading bool
	items   []suggest.Suggestion
	err     error
}

type fetchFunc func(ctx context.Context) ([]suggest.Suggestion, error)

// start cancels any pending request and returns a command running fetch
// under a context derived from parent.
func (p *suggestionPanel) start(parent context.Context, fetch fetchFunc) tea.Cmd {
	p.clear()
	ctx, cancel := context.WithCancel(parent)
	tag := uuid.NewString()
	p.tag, p.cancel, p.loading = tag, cancel, true
	return func() tea.Msg {
		items, err := fetch(ctx)
		return suggestionsMsg{tag: tag, items: items, err: err}
	}
}

// handle applies msg if it belongs to the current request and reports
// whether it did.
func (p *suggestionPanel) handle(msg suggestionsMsg) bool {
	if msg.tag == "" || msg.tag != p.tag {
		return false
	}
	p.finish()
	p.items, p.err = msg.items, msg.err
	return true
}

// clear drops results and cancels the pending request, if any.
func (p *suggestionPanel) clear() {
	p.finish()
	p.tag = ""
	p.items, p.err = nil, nil
}

func (p *suggestionPanel) finish() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.loading = false
}

func (p *suggestionPanel) Close() { p.clear() }
