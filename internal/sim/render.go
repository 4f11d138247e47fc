package sim

import "image/color"

// Background is the clear colour of the play field.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Renderer receives the primitives for one frame. Presenting the frame is
// left to the caller.
type Renderer interface {
	Clear(c color.RGBA)
	FillCircle(x, y, radius float64, c color.RGBA)
	FillRect(x, y, w, h float64, c color.RGBA)
	// DrawSprite draws the obstacle sprite centred on (x, y), rotated by
	// angle radians.
	DrawSprite(x, y, angle float64)
}

// Draw emits the session's primitives: obstacles first, then the trail, then
// the life bar tinted with the newest trail colour.
func Draw(s *Session, r Renderer) {
	r.Clear(Background)

	for _, o := range s.Obstacles {
		r.DrawSprite(o.X, o.Y, o.Angle)
	}
	for _, section := range s.Trail {
		r.FillCircle(section.X, section.Y, WaveRadius, section.Color)
	}
	if len(s.Trail) == 0 {
		return
	}
	newest := s.Trail[len(s.Trail)-1]
	r.FillRect(lifeBarInset, lifeBarInset, LifeBarWidth(s.Life, s.screen.Width), lifeBarHeight, newest.Color)
}

// LifeBarWidth scales life onto the screen width minus the bar insets.
func LifeBarWidth(life, screenWidth float64) float64 {
	width := life / LifeMaximum * (screenWidth - 2*lifeBarInset)
	if width < 0 {
		return 0
	}
	return width
}
