package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"amplitude/internal/sim"
)

// enableAutoplay hands the dampen key to the autopilot for duration. done
// runs once when the autopilot lets go.
func (g *Game) enableAutoplay(duration time.Duration, done func()) {
	g.autoplay = true
	g.autoplayDeadline = time.Now().Add(duration)
	g.autoplayDone = done
}

// dampenInput selects either the Space key or the autopilot.
func (g *Game) dampenInput(now time.Time) bool {
	if g.autoplay {
		if !g.autoplayDeadline.IsZero() && now.After(g.autoplayDeadline) {
			g.autoplay = false
			if g.autoplayDone != nil {
				g.autoplayDone()
				g.autoplayDone = nil
			}
			return false
		}
		return sim.Autopilot(g.session)
	}
	return ebiten.IsKeyPressed(ebiten.KeySpace)
}

// handleDebugControls processes debug overlay hotkeys.
func (g *Game) handleDebugControls() {
	if !*debugFlag {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Reset()
		log.Printf("Session restarted from the keyboard")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustTimeScale(-timeScaleStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustTimeScale(timeScaleStep)
	}
}

// setPaused freezes the session and silences the hum with it.
func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if g.hum != nil {
		g.hum.SetMuted(paused)
	}
}

// adjustTimeScale clamps the simulation speed within bounds.
func (g *Game) adjustTimeScale(delta float64) {
	g.timeScale += delta
	if g.timeScale < minTimeScale {
		g.timeScale = minTimeScale
	} else if g.timeScale > maxTimeScale {
		g.timeScale = maxTimeScale
	}
}
