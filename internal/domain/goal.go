package domain

import (
	"math"
	"strings"
	"time"
)

// ID identifies a goal or habit. Values come from a monotonic sequence.
type ID int64

// StepTracking is the optional incremental-progress triple of a goal.
// Total > 0 means the goal is step-tracked; the zero value means absent.
type StepTracking struct {
	Total   int
	Current int
	Unit    string
}

func (s StepTracking) Active() bool { return s.Total > 0 }

type Goal struct {
	ID          ID
	Title       string
	Description string
	Category    Category
	DueDate     Date
	IsCompleted bool
	Progress    int
	Steps       StepTracking
	CreatedAt   time.Time
}

func (g Goal) EntityID() ID { return g.ID }

// Clone returns an independent copy. Goal holds only value fields.
func (g Goal) Clone() Goal { return g }

func (g Goal) IsStepTracked() bool { return g.Steps.Active() }

// SetStep clamps n to [0, Total] and derives Progress and IsCompleted from it.
// It reports false and leaves g untouched when the goal is percentage-tracked.
func (g *Goal) SetStep(n int) bool {
	if !g.IsStepTracked() {
		return false
	}
	g.Steps.Current = clamp(n, 0, g.Steps.Total)
	g.Progress = int(math.Round(float64(g.Steps.Current) / float64(g.Steps.Total) * 100))
	g.IsCompleted = g.Steps.Current >= g.Steps.Total
	return true
}

// Reconcile restores the progress invariants after fields were assigned.
//
// Step-tracked goals derive progress and completion from their steps.
// Percentage-tracked goals force progress to 100 when completed; a goal at 100
// that was explicitly reopened drops to reopenProgress, otherwise it is
// considered complete.
func (g *Goal) Reconcile(reopened bool, reopenProgress int) {
	if !g.Steps.Active() {
		g.Steps = StepTracking{}
	}
	if g.SetStep(g.Steps.Current) {
		return
	}

	g.Progress = clamp(g.Progress, 0, 100)
	switch {
	case g.IsCompleted:
		g.Progress = 100
	case g.Progress == 100 && reopened:
		g.Progress = clamp(reopenProgress, 0, 99)
	case g.Progress == 100:
		g.IsCompleted = true
	}
}

// Validate performs the presence checks a goal must pass before it is stored.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return invalid("title", "title is required")
	}
	if !g.Category.Valid() {
		return invalid("category", "unknown category %q", g.Category)
	}
	if g.DueDate.IsZero() {
		return invalid("dueDate", "due date is required")
	}
	return nil
}

// GoalInput holds the user-supplied fields of a new goal.
type GoalInput struct {
	Title       string
	Description string
	Category    Category
	DueDate     Date
	IsCompleted bool
	Progress    int
	Steps       StepTracking
}

// GoalPatch carries the fields of an update; nil fields are left as they are.
type GoalPatch struct {
	Title       *string
	Description *string
	Category    *Category
	DueDate     *Date
	IsCompleted *bool
	Progress    *int
	Steps       *StepTracking
	ClearSteps  bool
}

// Reopens reports whether the patch explicitly unchecks completion.
func (p GoalPatch) Reopens() bool {
	return p.IsCompleted != nil && !*p.IsCompleted
}

// Apply merges the patch into g and returns the result. It does not reconcile.
// A progress below 100 with no completion value reopens the goal, so the
// lowered progress survives Reconcile.
func (p GoalPatch) Apply(g Goal) Goal {
	g.Title = FromPtr(g.Title, p.Title)
	g.Description = FromPtr(g.Description, p.Description)
	g.Category = FromPtr(g.Category, p.Category)
	g.DueDate = FromPtr(g.DueDate, p.DueDate)
	g.IsCompleted = FromPtr(g.IsCompleted, p.IsCompleted)
	g.Progress = FromPtr(g.Progress, p.Progress)
	g.Steps = FromPtr(g.Steps, p.Steps)
	if p.ClearSteps {
		g.Steps = StepTracking{}
	}
	if p.Progress != nil && *p.Progress < 100 && p.IsCompleted == nil {
		g.IsCompleted = false
	}
	return g
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
