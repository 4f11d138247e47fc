// Package sim holds the wave-front game state and its fixed-slice update.
package sim

import "image/color"

// Section colours: red while the front swings at full amplitude, blue while
// dampening holds.
var (
	SectionRed  = color.RGBA{R: 255, A: 255}
	SectionBlue = color.RGBA{B: 255, A: 255}
)

// Rand is the random source used for obstacle spawns. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Screen is the logical play-field size.
type Screen struct {
	Width  float64
	Height float64
}

// WaveFront is the player-controlled leading edge. X stays fixed for a run.
type WaveFront struct {
	X, Y float64
}

// WaveSection is a trail sample left behind by the wave front.
type WaveSection struct {
	X, Y  float64
	Color color.RGBA
}

// Obstacle is a spinning sprite scrolling toward the wave front.
type Obstacle struct {
	X, Y  float64
	Angle float64
}

// Session is the whole mutable game state. Trail and Obstacles are ordered
// left to right; new entries are appended at the tail and purged from the
// head once off-screen.
type Session struct {
	Front     WaveFront
	Trail     []WaveSection
	Obstacles []Obstacle
	Life      float64
	Time      float64
	Countdown float64

	// Run statistics, kept across restarts.
	Restarts int
	LastRun  float64
	Best     float64

	screen      Screen
	spriteWidth float64
	rng         Rand
}

// NewSession builds a session for the given screen. spriteWidth is the
// obstacle sprite width in logical pixels and feeds the collision extent.
func NewSession(screen Screen, spriteWidth float64, rng Rand) *Session {
	s := &Session{
		screen:      screen,
		spriteWidth: spriteWidth,
		rng:         rng,
	}
	s.Reset()
	return s
}

// Reset returns the session to its initial state for the current screen.
// Run statistics are left untouched.
func (s *Session) Reset() {
	s.Front = initialFront(s.screen)
	s.Trail = s.Trail[:0]
	s.Obstacles = s.Obstacles[:0]
	s.Life = LifeMaximum
	s.Time = 0
	s.Countdown = ObstacleCountdown
}

// Resize changes the play-field size. The wave front keeps its position
// until the next reset.
func (s *Session) Resize(screen Screen) {
	s.screen = screen
}

// Screen reports the current play-field size.
func (s *Session) Screen() Screen { return s.screen }

// CollisionExtent is the half-size of the square hit box around an obstacle.
func (s *Session) CollisionExtent() float64 {
	return s.spriteWidth/2 + WaveRadius/2
}

func initialFront(screen Screen) WaveFront {
	return WaveFront{X: screen.Width / 8, Y: screen.Height / 2}
}
