package main

import "flag"

// Command-line flags. Any flag not given on the command line can be set
// through AMPLITUDE_<NAME> in the environment or a .env file.
var (
	// widthFlag and heightFlag set the initial window size; the play field
	// follows later window resizes.
	widthFlag  = flag.Int("width", defaultWidth, "initial window width")
	heightFlag = flag.Int("height", defaultHeight, "initial window height")

	// spriteFlag replaces the embedded obstacle sprite with a PNG file.
	spriteFlag = flag.String("sprite", "", "path to an obstacle sprite PNG (default: embedded sawblade)")

	// seedFlag fixes the obstacle spawn sequence. Zero seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for obstacle spawns (0 = time based)")

	// debugFlag enables the overlay and the pause/time-scale hotkeys.
	debugFlag = flag.Bool("debug", false, "show FPS and session overlay; P pauses, +/- change time scale, R restarts")

	enableAudioFlag = flag.Bool("enable-audio", false, "play a hum that follows the wave front")

	// musicFlag loops a WAV file in the background.
	musicFlag = flag.String("music", "", "path to a WAV file to loop as background music")

	autoplayFlag = flag.Bool("autoplay", false, "let the autopilot hold the dampen key")

	// recordDefaultPGO plays on autopilot while capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "autoplay for 15s while capturing default.pgo")
)
