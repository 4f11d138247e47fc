package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed resources/sawblade.png
var sawbladePNG []byte

// loadSprite decodes the obstacle sprite from path, or the embedded sawblade
// when path is empty.
func loadSprite(path string) (*ebiten.Image, error) {
	if path != "" {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading sprite %q: %w", path, err)
		}
		return img, nil
	}
	decoded, _, err := image.Decode(bytes.NewReader(sawbladePNG))
	if err != nil {
		return nil, fmt.Errorf("decoding embedded sawblade: %w", err)
	}
	return ebiten.NewImageFromImage(decoded), nil
}
