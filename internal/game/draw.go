package game

import (
	"fmt"
	"image/color"

	"github.com/RetiredWizard/pac-fruitjam/internal/entities"
	tm "github.com/RetiredWizard/pac-fruitjam/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	wallBlue    = color.RGBA{R: 33, G: 33, B: 222, A: 255}
	wallFlash   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pelletColor = color.RGBA{R: 255, G: 184, B: 174, A: 255}
	playerColor = color.RGBA{R: 255, G: 221, B: 0, A: 255}
	frightBlue  = color.RGBA{R: 33, G: 33, B: 255, A: 255}
	frightWhite = color.RGBA{R: 222, G: 222, B: 255, A: 255}
	fruitRed    = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	ghostColors = map[entities.Archetype]color.RGBA{
		entities.Blinky: {R: 255, G: 0, B: 0, A: 255},
		entities.Pinky:  {R: 255, G: 184, B: 255, A: 255},
		entities.Inky:   {R: 0, G: 255, B: 255, A: 255},
		entities.Clyde:  {R: 255, G: 184, B: 81, A: 255},
	}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	nativeW := g.tileMap.Width * tileSize
	nativeH := g.tileMap.Height * tileSize
	off := ebiten.NewImage(nativeW, nativeH)

	g.drawMaze(off)
	g.drawFruit(off)
	g.drawGhosts(off)
	g.drawPlayer(off)
	g.drawHUD(off, nativeW, nativeH)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

func (g *Game) drawMaze(dst *ebiten.Image) {
	wall := wallBlue
	// The whole maze flashes while the level-complete timer runs.
	if g.state == StateLevelComplete && (g.stateTimer/15)%2 == 1 {
		wall = wallFlash
	}
	for y := 0; y < g.tileMap.Height; y++ {
		for x := 0; x < g.tileMap.Width; x++ {
			px := float32(x * tileSize)
			py := float32(y * tileSize)
			cx := px + tileSize/2
			cy := py + tileSize/2
			switch g.tileMap.Tiles[y][x] {
			case tm.TileWall:
				vector.DrawFilledRect(dst, px, py, tileSize, tileSize, wall, false)
			case tm.TilePellet:
				vector.DrawFilledCircle(dst, cx, cy, tileSize/8, pelletColor, true)
			case tm.TilePower:
				if g.blinkOn {
					vector.DrawFilledCircle(dst, cx, cy, tileSize/4, pelletColor, true)
				}
			}
		}
	}
}

func (g *Game) drawPlayer(dst *ebiten.Image) {
	if g.state == StateGameOver {
		return
	}
	cx, cy := g.player.Center()
	r := float32(tileSize/2 - 1)
	if g.state == StateDying {
		// Shrink away over the death animation.
		r *= float32(deathAnimFrames-g.deathFrame) / deathAnimFrames
		if r <= 0 {
			return
		}
	}
	if g.state == StateEatingGhost {
		// The frozen player shows the combo score instead of the sprite.
		points := baseGhostPoints << g.eatenCombo()
		text.Draw(dst, fmt.Sprintf("%d", points), basicfont.Face7x13, int(cx)-10, int(cy)+4, frightWhite)
		return
	}
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), r, playerColor, true)
}

// eatenCombo is the multiplier index of the ghost eaten in the current
// freeze.
func (g *Game) eatenCombo() int {
	if g.ghostEatCombo > 0 {
		return g.ghostEatCombo - 1
	}
	return 0
}

func (g *Game) drawGhosts(dst *ebiten.Image) {
	if g.state == StateGameOver || g.state == StateDying {
		return
	}
	for _, gh := range g.ghosts {
		if g.state == StateEatingGhost && gh == g.eatenGhost {
			continue
		}
		cx, cy := gh.Center()
		switch gh.Mode {
		case entities.ModeEaten:
			// Just the eyes heading home.
			vector.DrawFilledCircle(dst, float32(cx)-3, float32(cy), 2.5, color.White, true)
			vector.DrawFilledCircle(dst, float32(cx)+3, float32(cy), 2.5, color.White, true)
		case entities.ModeFrightened:
			c := frightBlue
			if gh.FrightenedBlinking() && (gh.FrightenedTimer/10)%2 == 0 {
				c = frightWhite
			}
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), tileSize/2-1, c, true)
		default:
			vector.DrawFilledCircle(dst, float32(cx), float32(cy), tileSize/2-1, ghostColors[gh.Type], true)
		}
	}
}

func (g *Game) drawFruit(dst *ebiten.Image) {
	if !g.fruitActive || g.state != StatePlay {
		return
	}
	fx := float32(fruitTileX*tileSize) + tileSize
	fy := float32(fruitTileY*tileSize) + tileSize
	vector.DrawFilledCircle(dst, fx, fy, tileSize/2-2, fruitRed, true)
}

func (g *Game) drawHUD(dst *ebiten.Image, nativeW, nativeH int) {
	face := basicfont.Face7x13
	oneUp := "1UP"
	if !g.blinkOn {
		oneUp = "   "
	}
	hud := fmt.Sprintf("%s %6d   HIGH %6d   LVL %d   LIVES %d", oneUp, g.score, g.highScore, g.level, g.lives)
	text.Draw(dst, hud, face, 4, 12, color.White)

	centerMsg := func(msg string, c color.Color) {
		w := len(msg) * 7
		// The classic banner row, just below the ghost house.
		text.Draw(dst, msg, face, (nativeW-w)/2, int(17.5*tileSize), c)
	}
	switch g.state {
	case StateReady:
		centerMsg("READY!", playerColor)
	case StateGameOver:
		centerMsg("GAME OVER", fruitRed)
		centerMsg2 := "PRESS SPACE"
		w := len(centerMsg2) * 7
		text.Draw(dst, centerMsg2, face, (nativeW-w)/2, int(17.5*tileSize)+16, color.White)
	}
	if g.paused {
		centerMsg("PAUSED", color.White)
	}
}
