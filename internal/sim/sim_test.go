package sim

import (
	"image/color"
	"math"
	"testing"
)

type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newTestSession() *Session {
	return NewSession(Screen{Width: 800, Height: 600}, 64, &seqRand{vals: []float64{0.5}})
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession()
	if s.Front != (WaveFront{X: 100, Y: 300}) {
		t.Fatalf("front = %+v, want {100 300}", s.Front)
	}
	if s.Life != LifeMaximum || s.Time != 0 || s.Countdown != ObstacleCountdown {
		t.Fatalf("life=%f time=%f countdown=%f", s.Life, s.Time, s.Countdown)
	}
	if len(s.Trail) != 0 || len(s.Obstacles) != 0 {
		t.Fatalf("expected empty trail and obstacles, got %d/%d", len(s.Trail), len(s.Obstacles))
	}
	if got := s.CollisionExtent(); got != 40 {
		t.Fatalf("collision extent = %f, want 40", got)
	}
}

func TestFullPeriodCancelsWithoutDampen(t *testing.T) {
	s := newTestSession()
	y0 := s.Front.Y
	for i := 0; i < 100; i++ {
		if s.Step(0.01, false) {
			t.Fatalf("unexpected restart at frame %d", i)
		}
	}
	if !near(s.Time, 1.0, 1e-9) {
		t.Fatalf("time = %.12f, want 1.0", s.Time)
	}
	if s.Life != LifeMaximum {
		t.Fatalf("life = %f, want clamped at %f", s.Life, LifeMaximum)
	}
	if !near(s.Front.Y, y0, 1e-3) {
		t.Fatalf("front y = %f, want %f after a full period", s.Front.Y, y0)
	}
	for _, section := range s.Trail {
		if section.Color != SectionRed {
			t.Fatalf("section colour = %v, want red without dampen", section.Color)
		}
	}
}

func TestDampenDrainsLifeToZero(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 490; i++ {
		s.Step(0.01, true)
	}
	if !near(s.Life, 2, 1e-6) {
		t.Fatalf("life at 4.9s = %f, want 2", s.Life)
	}
	if last := s.Trail[len(s.Trail)-1]; last.Color != SectionBlue {
		t.Fatalf("section colour while dampening = %v, want blue", last.Color)
	}

	for i := 0; i < 110; i++ {
		s.Step(0.01, true)
		if s.Life < 0 {
			t.Fatalf("life went negative: %f", s.Life)
		}
	}
	if s.Life != 0 {
		t.Fatalf("life at 6s = %f, want 0", s.Life)
	}
	if last := s.Trail[len(s.Trail)-1]; last.Color != SectionRed {
		t.Fatalf("section colour with empty life = %v, want red", last.Color)
	}
}

func TestDecisionTableBoundary(t *testing.T) {
	cases := []struct {
		held bool
		life float64
		want dampenState
	}{
		{false, 50, notHeld},
		{false, 0, notHeld},
		{true, 50, heldAlive},
		{true, 0.0001, heldAlive},
		{true, 0, heldDepleted},
	}
	for _, tc := range cases {
		if got := classifyDampen(tc.held, tc.life); got != tc.want {
			t.Fatalf("classifyDampen(%v, %f) = %d, want %d", tc.held, tc.life, got, tc.want)
		}
	}

	s := newTestSession()
	s.Life = 0
	if amp := s.applyDampen(0.01, true); amp != WaveFrontAmplitude || s.Life != 0 {
		t.Fatalf("held with no life: amplitude=%f life=%f", amp, s.Life)
	}
	s.Life = 50
	if amp := s.applyDampen(0.01, true); amp != WaveFrontAmplitudeDamp || !near(s.Life, 49.8, 1e-9) {
		t.Fatalf("held with life: amplitude=%f life=%f", amp, s.Life)
	}
	if amp := s.applyDampen(0.01, false); amp != WaveFrontAmplitude || !near(s.Life, 49.9, 1e-9) {
		t.Fatalf("released: amplitude=%f life=%f", amp, s.Life)
	}
}

func TestLifeStaysInRangeAndMovesWithInput(t *testing.T) {
	s := newTestSession()
	frames := []float64{0.016, 0.033, 0.007, 0.05, 0.1, 0.0, 0.021}
	for i := 0; i < 200; i++ {
		dampen := (i/15)%2 == 0
		before := s.Life
		s.Obstacles = s.Obstacles[:0]
		s.Step(frames[i%len(frames)], dampen)
		if s.Life > LifeMaximum || s.Life < 0 {
			t.Fatalf("frame %d: life %f out of range", i, s.Life)
		}
		if dampen && s.Life > before {
			t.Fatalf("frame %d: life rose while dampening (%f -> %f)", i, before, s.Life)
		}
		if !dampen && s.Life < before {
			t.Fatalf("frame %d: life fell while released (%f -> %f)", i, before, s.Life)
		}
	}
}

func TestStepMatchesManualSlices(t *testing.T) {
	for _, dampen := range []bool{false, true} {
		a := newTestSession()
		b := newTestSession()
		for _, s := range []*Session{a, b} {
			s.Life = 50
			s.Time = 0.3
			s.Obstacles = append(s.Obstacles, Obstacle{X: 600, Y: 20, Angle: 1})
		}

		a.Step(0.025, dampen)
		b.advance(0.01, dampen)
		b.advance(0.01, dampen)
		b.advance(0.005, dampen)
		b.purge()

		const tol = 1e-9
		if !near(a.Time, b.Time, tol) || !near(a.Life, b.Life, tol) || !near(a.Front.Y, b.Front.Y, tol) {
			t.Fatalf("dampen=%v: stepped {t=%f life=%f y=%f} manual {t=%f life=%f y=%f}",
				dampen, a.Time, a.Life, a.Front.Y, b.Time, b.Life, b.Front.Y)
		}
		if len(a.Trail) != 3 || len(b.Trail) != 3 {
			t.Fatalf("trail lengths %d/%d, want 3", len(a.Trail), len(b.Trail))
		}
		for i := range a.Trail {
			if !near(a.Trail[i].X, b.Trail[i].X, tol) || !near(a.Trail[i].Y, b.Trail[i].Y, tol) || a.Trail[i].Color != b.Trail[i].Color {
				t.Fatalf("trail[%d] differs: %+v vs %+v", i, a.Trail[i], b.Trail[i])
			}
		}
		oa, ob := a.Obstacles[0], b.Obstacles[0]
		if !near(oa.X, ob.X, tol) || !near(oa.Angle, ob.Angle, tol) {
			t.Fatalf("obstacle differs: %+v vs %+v", oa, ob)
		}
	}
}

func TestSubStepCount(t *testing.T) {
	s := newTestSession()
	s.Step(0.037, false)
	if len(s.Trail) != 4 {
		t.Fatalf("trail samples after 0.037s = %d, want 4 slices", len(s.Trail))
	}
	s.Step(0, false)
	if len(s.Trail) != 4 {
		t.Fatalf("zero dt added samples: %d", len(s.Trail))
	}
}

func TestTrailPurgeKeepsOrder(t *testing.T) {
	s := newTestSession()
	s.Trail = []WaveSection{{X: -40}, {X: -33}, {X: -32}, {X: -10}, {X: 5}}
	s.Obstacles = []Obstacle{{X: -100}, {X: 300}}
	s.Step(0, false)

	want := []float64{-32, -10, 5}
	if len(s.Trail) != len(want) {
		t.Fatalf("trail len = %d, want %d", len(s.Trail), len(want))
	}
	for i, x := range want {
		if s.Trail[i].X != x {
			t.Fatalf("trail[%d].X = %f, want %f", i, s.Trail[i].X, x)
		}
	}
	if len(s.Obstacles) != 1 || s.Obstacles[0].X != 300 {
		t.Fatalf("obstacles after purge = %+v", s.Obstacles)
	}
}

func TestObstacleSpawnUsesRandomSource(t *testing.T) {
	s := NewSession(Screen{Width: 800, Height: 600}, 64, &seqRand{vals: []float64{0.25, 0.5}})
	s.Countdown = 0.005
	s.Step(0.01, false)

	if len(s.Obstacles) != 1 {
		t.Fatalf("obstacles = %d, want 1", len(s.Obstacles))
	}
	o := s.Obstacles[0]
	if o.X != 832 || o.Y != 150 || o.Angle != math.Pi {
		t.Fatalf("spawned obstacle = %+v, want {832 150 pi}", o)
	}
	if !near(s.Countdown, 1.995, 1e-12) {
		t.Fatalf("countdown = %f, want 1.995", s.Countdown)
	}
}

func TestObstaclesScrollAndSpin(t *testing.T) {
	s := newTestSession()
	s.Obstacles = []Obstacle{{X: 700, Y: 10, Angle: 0}}
	s.Step(0.1, false)
	o := s.Obstacles[0]
	if !near(o.X, 685, 1e-9) {
		t.Fatalf("obstacle x = %f, want 685", o.X)
	}
	if !near(o.Angle, -0.2*math.Pi, 1e-9) {
		t.Fatalf("obstacle angle = %f, want %f", o.Angle, -0.2*math.Pi)
	}
}

func TestCollisionRestartsSession(t *testing.T) {
	s := newTestSession()
	for i := 0; i < 50; i++ {
		s.Step(0.01, false)
	}
	s.Resize(Screen{Width: 1024, Height: 768})
	s.Obstacles = append(s.Obstacles, Obstacle{X: s.Front.X, Y: s.Front.Y, Angle: 2.7})

	if !s.Step(0.016, false) {
		t.Fatalf("expected restart when an obstacle sits on the wave front")
	}
	if len(s.Trail) != 0 || len(s.Obstacles) != 0 {
		t.Fatalf("trail/obstacles not cleared: %d/%d", len(s.Trail), len(s.Obstacles))
	}
	if s.Life != LifeMaximum || s.Time != 0 || s.Countdown != ObstacleCountdown {
		t.Fatalf("life=%f time=%f countdown=%f after restart", s.Life, s.Time, s.Countdown)
	}
	if s.Front != (WaveFront{X: 128, Y: 384}) {
		t.Fatalf("front = %+v, want {128 384}", s.Front)
	}
	if s.Restarts != 1 || !near(s.LastRun, 0.516, 1e-9) || s.Best != s.LastRun {
		t.Fatalf("stats restarts=%d last=%f best=%f", s.Restarts, s.LastRun, s.Best)
	}
}

func TestResizeKeepsFrontUntilReset(t *testing.T) {
	s := newTestSession()
	s.Resize(Screen{Width: 640, Height: 480})
	if got := s.Screen(); got != (Screen{Width: 640, Height: 480}) {
		t.Fatalf("screen = %+v, want 640x480", got)
	}
	if s.Front != (WaveFront{X: 100, Y: 300}) {
		t.Fatalf("front moved on resize: %+v", s.Front)
	}
	s.Reset()
	if s.Front != (WaveFront{X: 80, Y: 240}) {
		t.Fatalf("front after reset = %+v, want {80 240}", s.Front)
	}
}

func TestCollisionIgnoresAngle(t *testing.T) {
	for _, angle := range []float64{0, 1, math.Pi, -4} {
		s := newTestSession()
		s.Obstacles = []Obstacle{{X: s.Front.X, Y: s.Front.Y, Angle: angle}}
		if !s.Step(0.01, false) {
			t.Fatalf("angle %f: expected collision", angle)
		}
	}
}

func TestCollisionIsSquareNotRadial(t *testing.T) {
	if !overlaps(30, 30, 40) {
		t.Fatalf("corner inside the square must overlap")
	}
	if overlaps(40, 0, 40) || overlaps(0, -40, 40) {
		t.Fatalf("edge of the square must not overlap")
	}
	if overlaps(41, 1, 40) {
		t.Fatalf("outside the square must not overlap")
	}
}

type call struct {
	kind       string
	x, y, a, b float64
	c          color.RGBA
}

type recorder struct{ calls []call }

func (r *recorder) Clear(c color.RGBA) { r.calls = append(r.calls, call{kind: "clear", c: c}) }
func (r *recorder) FillCircle(x, y, radius float64, c color.RGBA) {
	r.calls = append(r.calls, call{kind: "circle", x: x, y: y, a: radius, c: c})
}
func (r *recorder) FillRect(x, y, w, h float64, c color.RGBA) {
	r.calls = append(r.calls, call{kind: "rect", x: x, y: y, a: w, b: h, c: c})
}
func (r *recorder) DrawSprite(x, y, angle float64) {
	r.calls = append(r.calls, call{kind: "sprite", x: x, y: y, a: angle})
}

func TestDrawEmitsPrimitives(t *testing.T) {
	s := newTestSession()
	s.Life = 50
	s.Obstacles = []Obstacle{{X: 400, Y: 200, Angle: 0.5}}
	s.Trail = []WaveSection{{X: 10, Y: 20, Color: SectionRed}, {X: 30, Y: 40, Color: SectionBlue}}

	r := &recorder{}
	Draw(s, r)

	kinds := []string{"clear", "sprite", "circle", "circle", "rect"}
	if len(r.calls) != len(kinds) {
		t.Fatalf("calls = %+v", r.calls)
	}
	for i, k := range kinds {
		if r.calls[i].kind != k {
			t.Fatalf("call %d = %s, want %s", i, r.calls[i].kind, k)
		}
	}
	if r.calls[2].a != WaveRadius {
		t.Fatalf("circle radius = %f, want %f", r.calls[2].a, WaveRadius)
	}
	bar := r.calls[4]
	if bar.x != 5 || bar.y != 5 || bar.a != 395 || bar.b != 16 || bar.c != SectionBlue {
		t.Fatalf("life bar = %+v", bar)
	}
}

func TestDrawSkipsBarWithoutTrail(t *testing.T) {
	s := newTestSession()
	r := &recorder{}
	Draw(s, r)
	if len(r.calls) != 1 || r.calls[0].kind != "clear" || r.calls[0].c != Background {
		t.Fatalf("calls = %+v", r.calls)
	}
	if w := LifeBarWidth(-3, 800); w != 0 {
		t.Fatalf("negative life bar width = %f", w)
	}
}

func TestAutopilot(t *testing.T) {
	s := newTestSession()
	if Autopilot(s) {
		t.Fatalf("no obstacles: autopilot should release")
	}
	s.Obstacles = []Obstacle{{X: s.Front.X + 100, Y: s.Front.Y}}
	if !Autopilot(s) {
		t.Fatalf("obstacle ahead: autopilot should dampen")
	}
	s.Obstacles = []Obstacle{{X: s.Front.X - 100, Y: s.Front.Y}}
	if Autopilot(s) {
		t.Fatalf("obstacle behind: autopilot should release")
	}
	s.Obstacles = []Obstacle{{X: s.Front.X + 100, Y: s.Front.Y + 400}}
	if Autopilot(s) {
		t.Fatalf("obstacle out of reach: autopilot should release")
	}
	s.Obstacles = []Obstacle{{X: s.Front.X + 100, Y: s.Front.Y}}
	s.Life = 3
	if Autopilot(s) {
		t.Fatalf("low life: autopilot should release")
	}
}
