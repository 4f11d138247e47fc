package sim

import "math"

// Gameplay tuning. Distances are logical pixels, rates are per second.
const (
	MovementSpeed          = 150.0
	WaveFrontFrequency     = 1.0 // Hz
	WaveFrontAmplitude     = 70.0
	WaveFrontAmplitudeDamp = 20.0
	WaveRadius             = 16.0

	LifeRecover = 10.0
	LifeDeplete = 20.0
	LifeMaximum = 100.0

	ObstacleCountdown      = 2.0 // seconds between spawns
	ObstacleAngleFrequency = 1.0 // Hz

	MaxStep         = 1.0 / 100.0
	OffscreenMargin = 32.0

	lifeBarInset  = 5.0
	lifeBarHeight = 16.0
)

const twoPi = 2 * math.Pi
