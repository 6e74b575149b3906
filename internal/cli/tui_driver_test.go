package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/stride/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, flash) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveView returns the top view on the stack.
func (d *TestDriver) ActiveView() View {
	return d.appModel().stack.top()
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	v := d.ActiveView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	return d.appModel().stack.ids()
}

// Flash returns the status bar notice and whether it is an error.
func (d *TestDriver) Flash() (string, bool) {
	m := d.appModel()
	return m.flash, m.flashErr
}

// State returns the shared state pointer used by all views.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}
