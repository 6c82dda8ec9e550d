package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Eristhenis/arduinospaceinvaders/internal/core"
)

// panelStyle frames the LCD panel; the green foreground is a nod to the
// character of the original display.
var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Foreground(lipgloss.Color("10"))

// statusStyle renders the score/lives bar under the panel.
var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245"))

// RenderFrame converts a monochrome frame to text, packing two pixel
// rows into every terminal row with half-block characters. Text overlay
// lines replace the middle terminal row of their 8-pixel band, centered
// horizontally. The output carries no styling so it doubles as the
// screenshot format.
func RenderFrame(f *core.Frame) string {
	rows := make([]string, f.Height()/2)

	var sb strings.Builder
	for ry := range rows {
		sb.Reset()
		sb.Grow(f.Width())
		for x := 0; x < f.Width(); x++ {
			top := f.Pixel(x, ry*2)
			bottom := f.Pixel(x, ry*2+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		rows[ry] = sb.String()
	}

	for l := 0; l < core.TextLines; l++ {
		text := f.Line(l)
		if text == "" {
			continue
		}
		top, bottom := core.LineBand(l)
		row := (top + bottom) / 4 // middle terminal row of the band
		if row >= 0 && row < len(rows) {
			rows[row] = centerText(text, f.Width())
		}
	}

	return strings.Join(rows, "\n")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	right := width - len(text) - padding
	return strings.Repeat(" ", padding) + text + strings.Repeat(" ", right)
}
