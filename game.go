package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"amplitude/internal/sim"
	"amplitude/internal/tone"
)

// Game adapts the wave-front session to ebiten's update/draw loop.
type Game struct {
	session *sim.Session
	sprite  *ebiten.Image

	screenW int
	screenH int

	lastUpdate time.Time
	timeScale  float64
	paused     bool

	autoplay         bool
	autoplayDeadline time.Time
	autoplayDone     func()

	audioCtx    *audio.Context
	hum         *tone.Hum
	humPlayer   *audio.Player
	musicPlayer *audio.Player
}

// newGame loads the sprite and builds a session sized to the initial window.
func newGame() (*Game, error) {
	sprite, err := loadSprite(*spriteFlag)
	if err != nil {
		return nil, err
	}
	if *widthFlag <= 0 || *heightFlag <= 0 {
		return nil, fmt.Errorf("window size %dx%d must be positive", *widthFlag, *heightFlag)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("Obstacle seed: %d", seed)

	g := &Game{
		sprite:    sprite,
		screenW:   *widthFlag,
		screenH:   *heightFlag,
		timeScale: 1,
		autoplay:  *autoplayFlag,
	}
	g.session = sim.NewSession(g.screen(), float64(sprite.Bounds().Dx()), rand.New(rand.NewSource(seed)))
	g.initAudio()
	return g, nil
}

// initAudio starts the optional hum and music players. Failures leave the
// game silent.
func (g *Game) initAudio() {
	if !*enableAudioFlag && *musicFlag == "" {
		return
	}
	g.audioCtx = audio.NewContext(tone.SampleRate)

	if *enableAudioFlag {
		g.hum = tone.NewHum()
		if player, err := g.audioCtx.NewPlayer(g.hum); err != nil {
			log.Printf("Audio player creation failed: %v", err)
			g.hum = nil
		} else {
			g.humPlayer = player
			g.humPlayer.SetBufferSize(audioBufferDuration)
			g.humPlayer.Play()
		}
	}

	if *musicFlag != "" {
		player, err := loadMusicLoop(g.audioCtx, *musicFlag)
		if err != nil {
			log.Printf("Music disabled: %v", err)
			return
		}
		g.musicPlayer = player
		g.musicPlayer.SetVolume(musicVolume)
		g.musicPlayer.Play()
	}
}

// Update advances the session by the wall-clock time since the last tick.
func (g *Game) Update() error {
	g.handleDebugControls()

	now := time.Now()
	dt := frameDelta(g.lastUpdate, now)
	g.lastUpdate = now
	if g.paused {
		return nil
	}

	g.session.Resize(g.screen())
	if g.session.Step(dt*g.timeScale, g.dampenInput(now)) {
		log.Printf("Wave front hit an obstacle after %.2fs (best %.2fs, restarts %d)",
			g.session.LastRun, g.session.Best, g.session.Restarts)
	}
	g.updateHum()
	return nil
}

func (g *Game) screen() sim.Screen {
	return sim.Screen{Width: float64(g.screenW), Height: float64(g.screenH)}
}

// frameDelta returns the seconds between two updates, capped so a stalled
// window does not replay seconds of play at once.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 1 / defaultTPS
	}
	dt := now.Sub(last).Seconds()
	if dt < 0 {
		return 0
	}
	if dt > maxFrameDelta {
		return maxFrameDelta
	}
	return dt
}

// updateHum bends the hum pitch with the front's offset from mid-screen.
func (g *Game) updateHum() {
	if g.hum == nil {
		return
	}
	offset := g.session.Front.Y - float64(g.screenH)/2
	g.hum.SetLevel(-offset / (2 * sim.WaveFrontAmplitude))
}
