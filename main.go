package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"amplitude/internal/config"
)

func main() {
	if err := config.LoadDotEnv(dotEnvPath); err != nil {
		log.Printf("Ignoring .env: %v", err)
	}
	flag.Parse()
	if err := config.ApplyEnv(flag.CommandLine); err != nil {
		log.Fatalf("Invalid environment override: %v", err)
	}

	g, err := newGame()
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording(pgoOutputPath)
		if err != nil {
			log.Fatalf("PGO recording failed: %v", err)
		}
		defer stop()
		log.Printf("Recording %s for %s on autopilot", pgoOutputPath, pgoRecordDuration)
		g.enableAutoplay(pgoRecordDuration, func() {
			stop()
			log.Printf("Wrote %s", pgoOutputPath)
		})
	}

	ebiten.SetWindowSize(*widthFlag, *heightFlag)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game loop failed: %v", err)
	}
}
