package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/stats"
)

// DueLabel is the goal card status line: completed, overdue, or the number
// of days left.
func DueLabel(g domain.Goal, now time.Time, cat *locale.Catalog) string {
	if g.IsCompleted {
		return cat.T("goals.completed")
	}
	days, overdue := stats.DaysRemaining(g, now)
	switch {
	case overdue:
		return cat.T("goals.overdue")
	case days == 1:
		return cat.T("goals.due_tomorrow")
	default:
		return cat.Tf("goals.due_in", days)
	}
}

// DueLabelStyled colors DueLabel by urgency.
func DueLabelStyled(g domain.Goal, now time.Time, cat *locale.Catalog) string {
	label := DueLabel(g, now, cat)
	if g.IsCompleted {
		return StyleGreen.Render(label)
	}
	days, overdue := stats.DaysRemaining(g, now)
	switch {
	case overdue || days <= 2:
		return StyleRed.Render(label)
	case days <= 7:
		return StyleYellow.Render(label)
	default:
		return StyleFg.Render(label)
	}
}

// StepLabel renders "2 of 5 books" for step-tracked goals and "" otherwise.
func StepLabel(g domain.Goal, cat *locale.Catalog) string {
	if !g.IsStepTracked() {
		return ""
	}
	return strings.TrimSpace(cat.Tf("goals.steps", g.Steps.Current, g.Steps.Total, g.Steps.Unit))
}

// FormatGoalCard renders one goal as a multi-line block for the goal list.
func FormatGoalCard(g domain.Goal, now time.Time, cat *locale.Catalog, selected bool) string {
	cursor := "  "
	title := StyleFg.Render(g.Title)
	if selected {
		cursor = StyleGreen.Render("▸ ")
		title = StyleBold.Render(g.Title)
	}
	check := Dim("○")
	if g.IsCompleted {
		check = StyleGreen.Render("✔")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s %s  %s\n", cursor, check, title,
		CategoryStyle(g.Category).Render(cat.CategoryLabel(g.Category)))
	if g.Description != "" {
		fmt.Fprintf(&b, "      %s\n", Dim(Truncate(g.Description, 70)))
	}
	fmt.Fprintf(&b, "      %s  %s", RenderProgress(g.Progress, 20), DueLabelStyled(g, now, cat))
	if steps := StepLabel(g, cat); steps != "" {
		b.WriteString("  " + Dim(steps))
	}
	b.WriteString("\n")
	return b.String()
}

// FormatGoalTable renders goals for non-interactive output.
func FormatGoalTable(goals []domain.Goal, now time.Time, cat *locale.Catalog) string {
	t := NewTable("#", cat.T("form.title"), cat.T("form.category"), cat.T("goals.progress"), "").AlignRight(0)
	for _, g := range goals {
		progress := fmt.Sprintf("%d%%", g.Progress)
		if steps := StepLabel(g, cat); steps != "" {
			progress += " (" + steps + ")"
		}
		t.AddRow(
			fmt.Sprintf("%d", g.ID),
			Truncate(g.Title, 40),
			cat.CategoryLabel(g.Category),
			progress,
			DueLabelStyled(g, now, cat),
		)
	}
	return t.String()
}
