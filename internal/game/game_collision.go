package game

import (
	"math"

	"github.com/RetiredWizard/pac-fruitjam/internal/entities"
	tm "github.com/RetiredWizard/pac-fruitjam/internal/tilemap"
)

// handlePelletCollision consumes whatever sits on the player's tile once the
// player crosses its center.
func (g *Game) handlePelletCollision() {
	if !g.player.AtTileCenter(entities.PlayerSpeed) {
		return
	}
	tx, ty := g.player.TileX, g.player.TileY
	switch g.tileMap.Consume(tx, ty) {
	case tm.ItemDot:
		g.dotsEaten++
		g.emit(Event{Kind: EventDotEaten, TileX: tx, TileY: ty, Points: pelletPoints})
		if fruitSpawnCounts[g.dotsEaten] {
			g.fruitActive = true
			g.fruitTimer = 0
		}
	case tm.ItemPower:
		g.dotsEaten++
		g.emit(Event{Kind: EventPowerPelletEaten, TileX: tx, TileY: ty, Points: powerPelletPoints})
		g.ghostEatCombo = 0
		for _, gh := range g.ghosts {
			gh.Frighten()
		}
	}
}

// checkGhostCollisions runs the axis-aligned proximity test against every
// ghost. The outcome depends on the ghost's mode at the moment of contact:
// frightened ghosts are eaten with a doubling combo, eaten ghosts pass
// through, anything else costs a life.
func (g *Game) checkGhostCollisions() {
	px, py := g.player.Center()
	for _, gh := range g.ghosts {
		gx, gy := gh.Center()
		if math.Abs(px-gx) >= collisionDist || math.Abs(py-gy) >= collisionDist {
			continue
		}
		switch gh.Mode {
		case entities.ModeFrightened:
			points := baseGhostPoints << g.ghostEatCombo
			g.emit(Event{Kind: EventGhostEaten, Points: points, Combo: g.ghostEatCombo})
			g.ghostEatCombo++
			gh.Mode = entities.ModeEaten

			// Freeze the action and show the score where the ghost died.
			g.savedX, g.savedY = g.player.X, g.player.Y
			g.player.X, g.player.Y = gh.X, gh.Y
			g.eatenGhost = gh
			g.setState(StateEatingGhost)
			return
		case entities.ModeEaten:
			// Eyes on the way home; no effect.
		default:
			g.emit(Event{Kind: EventPlayerCaught})
			g.deathFrame = 0
			g.setState(StateDying)
			return
		}
	}
}

// updateFruit ages the bonus fruit and awards it on proximity pickup.
func (g *Game) updateFruit() {
	if !g.fruitActive {
		return
	}
	g.fruitTimer++
	if g.fruitTimer > fruitLifetimeTicks {
		g.fruitActive = false
		return
	}
	px, py := g.player.Center()
	fx := float64(fruitTileX*tileSize) + tileSize
	fy := float64(fruitTileY*tileSize) + tileSize
	if math.Abs(px-fx) < fruitPickupDist && math.Abs(py-fy) < fruitPickupDist {
		idx := g.level - 1
		if idx >= len(fruitPoints) {
			idx = len(fruitPoints) - 1
		}
		g.emit(Event{Kind: EventFruitEaten, Points: fruitPoints[idx]})
		g.fruitActive = false
	}
}
