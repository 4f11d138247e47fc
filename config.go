package main

import "time"

// Window, timing, and audio settings for the desktop frontend. Gameplay
// tuning lives in internal/sim.
const (
	windowTitle         = "Amplitude"
	defaultWidth        = 800
	defaultHeight       = 600
	defaultTPS          = 60.0
	maxFrameDelta       = 0.25 // seconds; longer stalls are not replayed
	timeScaleStep       = 0.25
	minTimeScale        = 0.25
	maxTimeScale        = 4.0
	pgoRecordDuration   = 15 * time.Second
	pgoOutputPath       = "default.pgo"
	audioBufferDuration = 80 * time.Millisecond
	musicVolume         = 0.4
	dotEnvPath          = ".env"
)
