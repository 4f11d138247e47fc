package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// loadMusicLoop decodes the WAV at path and returns a player that repeats it
// forever.
func loadMusicLoop(ctx *audio.Context, path string) (*audio.Player, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	if stream.Length() == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}
	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("creating player for %q: %w", path, err)
	}
	return player, nil
}
