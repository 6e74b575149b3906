package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a goal progress bar like [████░░░░]  45%.
// Colors: green from 67%, yellow from 33%, red below.
func RenderProgress(progress, width int) string {
	progress = clampInt(progress, 0, 100)
	if width < 2 {
		width = 2
	}
	filled := progress * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case progress < 33:
		style = StyleRed
	case progress < 67:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), progress)
}

// RenderBar renders value as a horizontal bar scaled against max. A non-zero
// value always gets at least one block so small counts stay visible.
func RenderBar(value, max, width int) string {
	if max <= 0 || value <= 0 || width <= 0 {
		return ""
	}
	n := value * width / max
	if n == 0 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat(filledBlock, n)
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
