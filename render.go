package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"amplitude/internal/sim"
)

// Draw renders the session and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	sim.Draw(g.session, &screenRenderer{dst: screen, sprite: g.sprite})

	if *debugFlag {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		field := g.session.Screen()
		state := ""
		if g.paused {
			state = " [paused]"
		} else if g.autoplay {
			state = " [autoplay]"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f  TPS: %.1f  speed %.2fx%s\nTime: %.2fs  Life: %.1f  Obstacles: %d\nRestarts: %d  Last: %.2fs  Best: %.2fs\nField: %.0fx%.0f",
			ebiten.ActualFPS(), tps, g.timeScale, state,
			g.session.Time, g.session.Life, len(g.session.Obstacles),
			g.session.Restarts, g.session.LastRun, g.session.Best,
			field.Width, field.Height)
		ebitenutil.DebugPrintAt(screen, debugMsg, 8, 26)
	}
}

// Layout tracks the window size so the play field follows resizes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.screenW, g.screenH = outsideWidth, outsideHeight
	}
	return g.screenW, g.screenH
}

// screenRenderer implements sim.Renderer on an ebiten image.
type screenRenderer struct {
	dst    *ebiten.Image
	sprite *ebiten.Image
}

func (r *screenRenderer) Clear(c color.RGBA) {
	r.dst.Fill(c)
}

func (r *screenRenderer) FillCircle(x, y, radius float64, c color.RGBA) {
	vector.DrawFilledCircle(r.dst, float32(x), float32(y), float32(radius), c, true)
}

func (r *screenRenderer) FillRect(x, y, w, h float64, c color.RGBA) {
	vector.DrawFilledRect(r.dst, float32(x), float32(y), float32(w), float32(h), c, false)
}

// DrawSprite rotates the sprite about its centre and places it at (x, y).
func (r *screenRenderer) DrawSprite(x, y, angle float64) {
	bounds := r.sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(r.sprite, op)
}
