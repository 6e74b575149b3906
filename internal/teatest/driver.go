// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds. This enables deterministic,
// goroutine-free testing of tea.Model implementations.
//
// Timer Cmds (cursor blink, spinner ticks) are executed with a short timeout
// and skipped if they don't return promptly.
package teatest

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// DefaultCmdTimeout is how long to wait for a Cmd before skipping it.
// Store reads and stubbed service calls return in microseconds; spinner
// ticks and cursor blinks wait 100ms or more.
const DefaultCmdTimeout = 50 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain.
	// tea.QuitMsg is normally intercepted by the bubbletea runtime,
	// so the model may not handle it; the driver detects it explicitly.
	Quitting bool

	cmdTimeout time.Duration
}

// New creates a Driver for the given model and applies options.
// Call DrainInit() after construction to process the model's Init() command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, cmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// WithCmdTimeout overrides DefaultCmdTimeout.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.cmdTimeout = timeout }
}

// DrainInit executes the model's Init() command and drains all resulting messages.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// ── Core send methods ────────────────────────────────────────────────────────

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// SendNoDrain dispatches msg and returns the resulting Cmd unexecuted, for
// tests that control when (or whether) a Cmd completes.
func (d *Driver) SendNoDrain(msg tea.Msg) tea.Cmd {
	d.T.Helper()
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	return cmd
}

// ── Key event helpers ────────────────────────────────────────────────────────

// SendKey sends a tea.KeyMsg through the model.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a character key (rune).
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) press(t tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: t})
}

func (d *Driver) PressEnter() { d.T.Helper(); d.press(tea.KeyEnter) }
func (d *Driver) PressEsc()   { d.T.Helper(); d.press(tea.KeyEsc) }
func (d *Driver) PressCtrlC() { d.T.Helper(); d.press(tea.KeyCtrlC) }
func (d *Driver) PressUp()    { d.T.Helper(); d.press(tea.KeyUp) }
func (d *Driver) PressDown()  { d.T.Helper(); d.press(tea.KeyDown) }
func (d *Driver) PressLeft()  { d.T.Helper(); d.press(tea.KeyLeft) }
func (d *Driver) PressRight() { d.T.Helper(); d.press(tea.KeyRight) }
func (d *Driver) PressSpace() { d.T.Helper(); d.press(tea.KeySpace) }

// Type sends a string character by character as individual key events.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// ── Output ───────────────────────────────────────────────────────────────────

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// AssertViewContains fails the test unless every fragment appears in View().
func (d *Driver) AssertViewContains(fragments ...string) {
	d.T.Helper()
	view := d.View()
	for _, f := range fragments {
		if !strings.Contains(view, f) {
			d.T.Errorf("view does not contain %q\n--- view ---\n%s", f, view)
		}
	}
}

// AssertViewNotContains fails the test if any fragment appears in View().
func (d *Driver) AssertViewNotContains(fragments ...string) {
	d.T.Helper()
	view := d.View()
	for _, f := range fragments {
		if strings.Contains(view, f) {
			d.T.Errorf("view unexpectedly contains %q\n--- view ---\n%s", f, view)
		}
	}
}

// ── Command draining ─────────────────────────────────────────────────────────

// Drain runs cmd and feeds every resulting message through the model.
func (d *Driver) Drain(cmd tea.Cmd) {
	d.T.Helper()
	d.drainCmd(cmd, 0)
}

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= MaxDrainDepth {
		if depth >= MaxDrainDepth {
			d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		}
		return
	}

	msg := d.execCmdWithTimeout(cmd)
	if msg == nil {
		return
	}

	// Skip cursor blink messages that made it through.
	if isCursorBlink(msg) {
		return
	}

	// Handle BatchMsg: execute each sub-Cmd.
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, subCmd := range batch {
			d.drainCmd(subCmd, depth+1)
		}
		return
	}

	// tea.Sequence produces an unexported slice of Cmds; run them in order.
	if seq, ok := sequenceCmds(msg); ok {
		for _, subCmd := range seq {
			d.drainCmd(subCmd, depth+1)
		}
		return
	}

	// Detect tea.QuitMsg (produced by tea.Quit).
	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	// Normal message: feed through Update and drain the result.
	updated, nextCmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(nextCmd, depth+1)
}

// execCmdWithTimeout runs a tea.Cmd in a goroutine with a timeout.
// Returns nil if the Cmd doesn't complete within the driver's timeout.
func (d *Driver) execCmdWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.cmdTimeout):
		return nil
	}
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// sequenceCmds unpacks any slice-of-Cmd message other than tea.BatchMsg.
func sequenceCmds(msg tea.Msg) ([]tea.Cmd, bool) {
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice || v.Type().Elem() != cmdType {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i] = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

// isCursorBlink detects cursor blink messages from the bubbles/cursor package.
// These are unexported types (initialBlinkMsg, BlinkMsg) that can chain
// into blocking timer Cmds when processed.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
