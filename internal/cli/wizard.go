package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// strideHuhTheme returns a custom huh theme using the Gruvbox palette.
func strideHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func themed(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(strideHuhTheme()).WithShowHelp(false)
}

// validateRequired rejects blank input with "<label> is required".
func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

// validateDate accepts a YYYY-MM-DD date string.
func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

// validateOptionalTime accepts empty or HH:MM.
func validateOptionalTime(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := domain.ParseTimeOfDay(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use HH:MM format")
	}
	return nil
}

// validateIntRange accepts empty or an integer within [lo, hi].
func validateIntRange(lo, hi int) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || v < lo || v > hi {
			return fmt.Errorf("enter a number from %d to %d", lo, hi)
		}
		return nil
	}
}

// parseIntOr parses s, returning fallback if s is empty or not a number.
// Used after huh validation has already checked the string.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title, yes, no string, result *bool) *huh.Form {
	return themed(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative(yes).
				Negative(no).
				Value(result),
		),
	)
}
