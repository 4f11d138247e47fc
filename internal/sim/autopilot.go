package sim

import "math"

const (
	autopilotLookahead = 1.5 // seconds of scroll in front of the wave front
	autopilotReserve   = 5.0 // life kept back so dampen is never cut mid-pass
)

// Autopilot returns a dampen decision for unattended play: hold while an
// obstacle is about to pass within reach of the front's full swing.
func Autopilot(s *Session) bool {
	if s.Life <= autopilotReserve {
		return false
	}
	reach := s.CollisionExtent() + 2*WaveFrontAmplitude
	ahead := autopilotLookahead * MovementSpeed
	for _, o := range s.Obstacles {
		dx := o.X - s.Front.X
		if dx < -s.CollisionExtent() || dx > ahead {
			continue
		}
		if math.Abs(o.Y-s.Front.Y) < reach {
			return true
		}
	}
	return false
}
