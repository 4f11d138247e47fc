package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	crashSampleRate = beep.SampleRate(44100)
	crashFrequency  = 110.0
	crashDuration   = 180 * time.Millisecond
)

// crashSound plays a short low tone through the system speaker.
type crashSound struct {
	sampleRate beep.SampleRate
}

func newCrashSound() (*crashSound, error) {
	if err := speaker.Init(crashSampleRate, crashSampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &crashSound{sampleRate: crashSampleRate}, nil
}

func (c *crashSound) play() {
	sine, err := generators.SineTone(c.sampleRate, crashFrequency)
	if err != nil {
		log.Printf("Crash tone failed: %v", err)
		return
	}
	speaker.Play(beep.Take(c.sampleRate.N(crashDuration), sine))
}

func (c *crashSound) close() {
	speaker.Close()
}
