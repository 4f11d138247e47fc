package sim

import "math"

// dampenState is the row of the amplitude decision table.
type dampenState int

const (
	notHeld dampenState = iota
	heldAlive
	heldDepleted
)

func classifyDampen(held bool, life float64) dampenState {
	switch {
	case !held:
		return notHeld
	case life > 0:
		return heldAlive
	default:
		return heldDepleted
	}
}

// Step advances the session by dt seconds, consumed in slices of at most
// MaxStep. dampen is sampled once for the whole frame. When an obstacle hits
// the wave front the session is reset and Step reports true.
func (s *Session) Step(dt float64, dampen bool) bool {
	endGame := false
	for remaining := dt; remaining > 0; {
		slice := math.Min(remaining, MaxStep)
		remaining -= slice
		if s.advance(slice, dampen) {
			endGame = true
		}
	}

	s.purge()

	if !endGame {
		return false
	}
	s.Restarts++
	s.LastRun = s.Time
	if s.Time > s.Best {
		s.Best = s.Time
	}
	s.Reset()
	return true
}

// advance runs one slice and reports whether any obstacle touched the front.
func (s *Session) advance(slice float64, dampen bool) bool {
	previous := math.Sin(s.Time * twoPi * WaveFrontFrequency)
	next := math.Sin((s.Time + slice) * twoPi * WaveFrontFrequency)

	amplitude := s.applyDampen(slice, dampen)

	sectionColor := SectionBlue
	if amplitude == WaveFrontAmplitude {
		sectionColor = SectionRed
	}

	s.Front.Y += (previous - next) * amplitude
	s.Time += slice

	shift := slice * MovementSpeed
	for i := range s.Trail {
		s.Trail[i].X -= shift
	}
	s.Trail = append(s.Trail, WaveSection{X: s.Front.X, Y: s.Front.Y, Color: sectionColor})

	spin := twoPi * ObstacleAngleFrequency * slice
	hit := false
	extent := s.CollisionExtent()
	for i := range s.Obstacles {
		o := &s.Obstacles[i]
		o.X -= shift
		o.Angle -= spin
		if overlaps(o.X-s.Front.X, o.Y-s.Front.Y, extent) {
			hit = true
		}
	}

	s.Countdown -= slice
	if s.Countdown <= 0 {
		s.Countdown += ObstacleCountdown
		s.spawnObstacle()
	}
	return hit
}

// applyDampen picks the slice amplitude and charges or recovers life.
func (s *Session) applyDampen(slice float64, held bool) float64 {
	amplitude := WaveFrontAmplitude
	switch classifyDampen(held, s.Life) {
	case heldAlive:
		amplitude = WaveFrontAmplitudeDamp
		s.Life -= LifeDeplete * slice
	case heldDepleted:
	case notHeld:
		s.Life += LifeRecover * slice
	}
	s.Life = math.Max(0, math.Min(LifeMaximum, s.Life))
	return amplitude
}

// overlaps is a square test on each axis, not a radial distance.
func overlaps(dx, dy, extent float64) bool {
	r2 := extent * extent
	return dx*dx < r2 && dy*dy < r2
}

func (s *Session) spawnObstacle() {
	s.Obstacles = append(s.Obstacles, Obstacle{
		X:     s.screen.Width + OffscreenMargin,
		Y:     s.rng.Float64() * s.screen.Height,
		Angle: s.rng.Float64() * twoPi,
	})
}

// purge drops trail samples and obstacles that scrolled past the left edge.
func (s *Session) purge() {
	s.Trail = s.Trail[offscreenPrefix(len(s.Trail), func(i int) float64 { return s.Trail[i].X }):]
	s.Obstacles = s.Obstacles[offscreenPrefix(len(s.Obstacles), func(i int) float64 { return s.Obstacles[i].X }):]
}

func offscreenPrefix(n int, x func(int) float64) int {
	i := 0
	for i < n && x(i) < -OffscreenMargin {
		i++
	}
	return i
}
