// Command amplitude-tui plays the wave-front game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"amplitude/internal/config"
	"amplitude/internal/sim"
	"amplitude/internal/termview"
)

const (
	frameInterval = 16 * time.Millisecond
	maxFrameDelta = 0.25
	spriteWidth   = 64.0 // logical pixels, matches the desktop sawblade
)

var (
	seedFlag     = flag.Int64("seed", 0, "random seed for obstacle spawns (0 = time based)")
	holdFlag     = flag.Duration("hold", termview.DefaultHoldWindow, "how long a Space press counts as held")
	logFlag      = flag.String("log", "", "write logs to this file (the terminal is in use)")
	soundFlag    = flag.Bool("sound", true, "play a tone when the wave front crashes")
	autoplayFlag = flag.Bool("autoplay", false, "let the autopilot hold the dampen key")
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "ignoring .env: %v\n", err)
	}
	flag.Parse()
	if err := config.ApplyEnv(flag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "invalid environment override: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLog(*logFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log setup failed: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	g, err := newGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer g.cleanup()

	g.run()
}

// setupLog sends log output to path, or discards it when path is empty.
func setupLog(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}

type game struct {
	screen   tcell.Screen
	renderer *termview.Renderer
	session  *sim.Session
	dampen   *termview.HoldTracker
	sound    *crashSound
	autoplay bool
}

func newGame() (*game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Obstacle seed: %d", seed)

	renderer := termview.NewRenderer(screen, spriteWidth)
	g := &game{
		screen:   screen,
		renderer: renderer,
		session:  sim.NewSession(renderer.Logical(), spriteWidth, rand.New(rand.NewSource(seed))),
		dampen:   termview.NewHoldTracker(*holdFlag),
		autoplay: *autoplayFlag,
	}

	if *soundFlag {
		sound, err := newCrashSound()
		if err != nil {
			// Non-fatal, the game runs silent.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			g.sound = sound
		}
	}
	return g, nil
}

// handleInput processes one event and reports whether the game should keep
// running.
func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			g.dampen.Press(ev.When())
		}
	case *tcell.EventResize:
		g.screen.Sync()
		g.session.Resize(g.renderer.Logical())
	}
	return true
}

func (g *game) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan := termview.PumpEvents(g.screen, done, 100)

	last := time.Now()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !g.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			if dt > maxFrameDelta {
				dt = maxFrameDelta
			}
			g.update(now, dt)
			sim.Draw(g.session, g.renderer)
			g.renderer.Show()
		}
	}
}

func (g *game) update(now time.Time, dt float64) {
	held := g.dampen.Held(now)
	if g.autoplay {
		held = sim.Autopilot(g.session)
	}
	if g.session.Step(dt, held) {
		log.Printf("Wave front hit an obstacle after %.2fs (best %.2fs, restarts %d)",
			g.session.LastRun, g.session.Best, g.session.Restarts)
		g.dampen.Release()
		if g.sound != nil {
			g.sound.play()
		}
	}
}

func (g *game) cleanup() {
	if g.sound != nil {
		g.sound.close()
	}
	g.screen.Fini()
}
