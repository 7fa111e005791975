package main

import (
	"log"

	"github.com/RetiredWizard/pac-fruitjam/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	g := game.New()
	ebiten.SetWindowTitle("Pac Fruit Jam")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
