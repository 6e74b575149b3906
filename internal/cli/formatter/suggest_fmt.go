package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/stride/internal/locale"
	"github.com/alexanderramin/stride/internal/suggest"
)

// FormatSuggestions renders numbered suggestions; cursor < 0 hides the cursor.
func FormatSuggestions(items []suggest.Suggestion, cat *locale.Catalog, cursor int) string {
	if len(items) == 0 {
		return "  " + Dim(cat.T("suggest.none")) + "\n"
	}
	var b strings.Builder
	for i, s := range items {
		marker := "  "
		title := StyleFg.Render(s.Title)
		if i == cursor {
			marker = StyleGreen.Render("▸ ")
			title = StyleBold.Render(s.Title)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, StylePurple.Render(fmt.Sprintf("%d.", i+1)), title)
		fmt.Fprintf(&b, "     %s\n", Dim(s.Description))
	}
	return b.String()
}

// SuggestionNotice is the user-facing message for a failed suggestion call.
func SuggestionNotice(cat *locale.Catalog) string {
	return StyleYellow.Render("! ") + cat.T("suggest.unavailable")
}
