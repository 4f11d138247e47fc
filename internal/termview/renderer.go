// Package termview draws a session onto a terminal grid with tcell.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"amplitude/internal/sim"
)

// Each terminal cell covers CellWidth x CellHeight logical pixels.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

var bladeGlyphs = []rune{'|', '/', '-', '\\'}

// Renderer implements sim.Renderer on a tcell screen.
type Renderer struct {
	screen      tcell.Screen
	spriteWidth float64
	footprints  map[float64][]gridOffset
}

var _ sim.Renderer = (*Renderer)(nil)

func NewRenderer(screen tcell.Screen, spriteWidth float64) *Renderer {
	return &Renderer{
		screen:      screen,
		spriteWidth: spriteWidth,
		footprints:  make(map[float64][]gridOffset),
	}
}

// Logical reports the play-field size covered by the terminal.
func (r *Renderer) Logical() sim.Screen {
	cols, rows := r.screen.Size()
	return sim.Screen{Width: float64(cols) * CellWidth, Height: float64(rows) * CellHeight}
}

func (r *Renderer) Clear(c color.RGBA) {
	r.screen.Fill(' ', tcell.StyleDefault.Background(toColor(c)))
}

func (r *Renderer) FillCircle(x, y, radius float64, c color.RGBA) {
	style := tcell.StyleDefault.Background(toColor(c))
	cx, cy := cellOf(x, y)
	for _, o := range r.footprint(radius) {
		r.set(cx+o.dx, cy+o.dy, ' ', style)
	}
}

func (r *Renderer) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	style := tcell.StyleDefault.Background(toColor(c))
	x0, y0 := cellOf(x, y)
	x1 := int(math.Ceil((x+w)/CellWidth)) - 1
	y1 := int(math.Ceil((y+h)/CellHeight)) - 1
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			r.set(cx, cy, ' ', style)
		}
	}
}

func (r *Renderer) DrawSprite(x, y, angle float64) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(40, 40, 40)).
		Background(tcell.NewRGBColor(170, 170, 170))
	glyph := BladeGlyph(angle)
	cx, cy := cellOf(x, y)
	for _, o := range r.footprint(r.spriteWidth / 2) {
		r.set(cx+o.dx, cy+o.dy, glyph, style)
	}
}

// Show presents the frame.
func (r *Renderer) Show() {
	r.screen.Show()
}

// BladeGlyph picks the line glyph closest to the blade's rotation. The
// glyphs repeat every half turn.
func BladeGlyph(angle float64) rune {
	eighth := math.Pi / 4
	idx := int(math.Floor(angle/eighth+0.5)) % len(bladeGlyphs)
	if idx < 0 {
		idx += len(bladeGlyphs)
	}
	return bladeGlyphs[idx]
}

func (r *Renderer) footprint(radius float64) []gridOffset {
	fp, ok := r.footprints[radius]
	if !ok {
		fp = precomputeFootprint(radius)
		r.footprints[radius] = fp
	}
	return fp
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if x < 0 || x >= cols || y < 0 || y >= rows {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y / CellHeight))
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
