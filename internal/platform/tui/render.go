package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blink-runner/internal/core"
)

// RenderFrame converts a frame snapshot to a styled string for display.
// Adjacent cells sharing the same foreground and background are grouped
// into one styled run to keep the ANSI escape volume down.
func RenderFrame(f core.Frame) string {
	var sb strings.Builder
	sb.Grow(f.Width*f.Height*2 + f.Height)

	for y := 0; y < f.Height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < f.Width {
			start := f.Cells[y][x]

			var run strings.Builder
			for x < f.Width {
				cell := f.Cells[y][x]
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(start.Fg.Hex())).
				Background(lipgloss.Color(start.Bg.Hex()))
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
