package roomba

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/roomba-cleanup/internal/core"
)

// Tile inset and overlay text scale for the pixel renderer.
const (
	tileInset = 4
	textScale = 3
)

// RenderImage draws the snapshot as a picture: Width×Height cells of
// cellSize pixels with grid lines, inset tiles and a centered banner when
// the game is over.
func RenderImage(snap Snapshot, palette core.Palette, cellSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, snap.Width*cellSize, snap.Height*cellSize))
	fill(img, img.Bounds(), palette.Get(core.ColorBackground))

	grid := palette.Get(core.ColorGrid)
	for y := 0; y < snap.Height; y++ {
		for x := 0; x < snap.Width; x++ {
			outline(img, cellRect(C(x, y), cellSize), grid)
		}
	}

	for _, c := range snap.Trash {
		fill(img, tileRect(c, cellSize), palette.Get(core.ColorTrash))
	}
	for _, c := range snap.Hazards {
		fill(img, tileRect(c, cellSize), palette.Get(core.ColorHazard))
	}
	fill(img, tileRect(snap.Player, cellSize), palette.Get(core.ColorPlayer))

	if msg := snap.Overlay(); msg != "" {
		drawBanner(img, msg, palette.Get(core.ColorText))
	}
	return img
}

func cellRect(c Coord, cellSize int) image.Rectangle {
	x, y := c.X*cellSize, c.Y*cellSize
	return image.Rect(x, y, x+cellSize, y+cellSize)
}

func tileRect(c Coord, cellSize int) image.Rectangle {
	return cellRect(c, cellSize).Inset(min(tileInset, cellSize/4))
}

func fill(img draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func outline(img draw.Image, r image.Rectangle, c color.Color) {
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1), c)
	fill(img, image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y), c)
	fill(img, image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y), c)
	fill(img, image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y), c)
}

// drawBanner renders text with the basic bitmap face and scales it up
// around the image center.
func drawBanner(img *image.RGBA, text string, c color.Color) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)

	scale := textScale
	for scale > 1 && w*scale > img.Bounds().Dx() {
		scale--
	}
	sw, sh := w*scale, h*scale
	cx, cy := img.Bounds().Dx()/2, img.Bounds().Dy()/2
	target := image.Rect(cx-sw/2, cy-sh/2, cx-sw/2+sw, cy-sh/2+sh)
	draw.NearestNeighbor.Scale(img, target, small, small.Bounds(), draw.Over, nil)
}
