package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// cellStyles holds one foreground style per screen color.
var cellStyles = func() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}()

// RenderScreen turns a screen buffer into styled terminal output.
// Each row is split into runs of one color so a pipe column or the
// ground band costs a single escape sequence.
func RenderScreen(s *core.Screen) string {
	rows := make([]string, s.Height())
	var run strings.Builder
	for y := range rows {
		var line strings.Builder
		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
				run.WriteRune(s.GetCell(x, y).Rune)
			}
			style, ok := cellStyles[color]
			if !ok {
				style = cellStyles[core.ColorDefault]
			}
			line.WriteString(style.Render(run.String()))
		}
		rows[y] = line.String()
	}
	return strings.Join(rows, "\n")
}
