package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// Styles maps render roles and footer parts to lipgloss styles.
type Styles struct {
	cells  map[core.Color]lipgloss.Style
	Status lipgloss.Style
	Info   lipgloss.Style
	Hint   lipgloss.Style
}

// hexOf converts any color to a lipgloss color via its hex form.
func hexOf(c color.Color) lipgloss.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent; nothing sensible to show
		return lipgloss.Color("")
	}
	return lipgloss.Color(cf.Hex())
}

// NewStyles derives styles from a palette. Board roles are drawn on the
// palette background so the board reads as one surface.
func NewStyles(p core.Palette) Styles {
	bg := hexOf(p.Get(core.ColorBackground))

	cells := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for _, role := range []core.Color{
		core.ColorBackground, core.ColorGrid, core.ColorPlayer,
		core.ColorTrash, core.ColorHazard, core.ColorText,
	} {
		style := lipgloss.NewStyle().Foreground(hexOf(p.Get(role))).Background(bg)
		if role == core.ColorPlayer || role == core.ColorText {
			style = style.Bold(true)
		}
		cells[role] = style
	}

	return Styles{
		cells:  cells,
		Status: lipgloss.NewStyle().Bold(true),
		Info:   lipgloss.NewStyle().Foreground(hexOf(p.Get(core.ColorPlayer))),
		Hint:   lipgloss.NewStyle().Faint(true),
	}
}

// Cell returns the style for a render role.
func (st Styles) Cell(c core.Color) lipgloss.Style {
	if style, ok := st.cells[c]; ok {
		return style
	}
	return st.cells[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a role are styled as one run to keep escape
// sequences short.
func RenderScreen(s *core.Screen, st Styles) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			role := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(st.Cell(role).Render(run.String()))
		}
	}
	return sb.String()
}
