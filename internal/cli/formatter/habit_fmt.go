package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/alexanderramin/stride/internal/locale"
)

// FormatHabitLine renders one habit row with its completion status for today.
func FormatHabitLine(h domain.Habit, today domain.Date, cat *locale.Catalog, selected bool) string {
	cursor := "  "
	name := StyleFg.Render(h.Name)
	if selected {
		cursor = StyleGreen.Render("▸ ")
		name = StyleBold.Render(h.Name)
	}
	mark := Dim("○")
	if h.CompletedOn(today) {
		mark = StyleGreen.Render("✔")
	}

	details := []string{StyleBlue.Render(cat.FrequencyLabel(h.Frequency))}
	if h.PreferredTime != nil {
		details = append(details, Dim(cat.Tf("habits.at", h.PreferredTime.String())))
	}
	if h.ReminderEnabled {
		details = append(details, Dim(cat.T("habits.reminder")))
	}
	details = append(details, Dim(cat.Tf("habits.completions", h.CompletionCount())))

	return fmt.Sprintf("%s%s %s  %s\n", cursor, mark, name, strings.Join(details, Dim(" · ")))
}
