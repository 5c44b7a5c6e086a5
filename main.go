package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/eyes-on-circles/internal/config"
	"github.com/iburimskiy/eyes-on-circles/internal/game"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("circles: ")

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(game.New()); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports a failure to bring the window up, both on the terminal and
// in a dialog for users who started the program from a desktop launcher.
func fatal(err error) {
	log.Printf("run: %v", err)
	if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); derr != nil {
		log.Printf("error dialog: %v", derr)
	}
	os.Exit(1)
}
