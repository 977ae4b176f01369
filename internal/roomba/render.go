package roomba

import (
	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// tileCols is how many terminal columns one board cell takes.
// Terminal glyphs are about twice as tall as wide, so three columns keep tiles near square.
const tileCols = 3

// BoardSize returns the screen area the bordered board needs.
func BoardSize(width, height int) (w, h int) {
	return width*tileCols + 2, height + 2
}

// Render draws the snapshot into dst, centered. It only reads the snapshot,
// so rendering the same snapshot twice gives identical screens.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	boardW, boardH := BoardSize(snap.Width, snap.Height)
	if dst.Width() < boardW || dst.Height() < boardH {
		renderOverlay(dst, dst.Bounds(), "Window too small", "Resize to continue")
		return
	}

	frame := dst.Bounds().Centered(boardW, boardH)
	dst.DrawRect(frame, ' ', core.ColorBackground)
	dst.DrawBox(frame, core.ColorGrid)

	ox, oy := frame.X+1, frame.Y+1
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			drawTile(dst, ox, oy, C(x, y), " · ", core.ColorGrid)
		}
	}
	for _, c := range snap.Trash {
		drawTile(dst, ox, oy, c, " * ", core.ColorTrash)
	}
	for _, c := range snap.Hazards {
		drawTile(dst, ox, oy, c, " % ", core.ColorHazard)
	}
	drawTile(dst, ox, oy, snap.Player, "[R]", core.ColorPlayer)

	if msg := snap.Overlay(); msg != "" {
		renderOverlay(dst, frame, msg, "Press R to restart")
	}
}

// drawTile writes a tileCols-wide glyph for one board cell.
func drawTile(dst *core.Screen, ox, oy int, c Coord, glyph string, role core.Color) {
	x := ox + c.X*tileCols
	i := 0
	for _, r := range glyph {
		if r == ' ' {
			dst.SetCell(x+i, oy+c.Y, r, core.ColorBackground)
		} else {
			dst.SetCell(x+i, oy+c.Y, r, role)
		}
		i++
	}
}

// renderOverlay draws a boxed two-line message centered in area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := area.Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ', core.ColorBackground)
	dst.DrawBox(box, core.ColorText)
	dst.DrawTextCentered(box, box.Y+1, line1, core.ColorText)
	dst.DrawTextCentered(box, box.Y+3, line2, core.ColorGrid)
}
