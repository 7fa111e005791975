package entities

import (
	"math"

	"github.com/RetiredWizard/pac-fruitjam/internal/tilemap"
)

type Player struct {
	Actor
}

func NewPlayer() *Player {
	p := &Player{}
	p.Reset()
	return p
}

func (p *Player) Reset() {
	p.TileX, p.TileY = tilemap.SpawnCol, tilemap.SpawnRow
	p.X = tileCenterPos(tilemap.SpawnCol)
	p.Y = tileCenterPos(tilemap.SpawnRow)
	p.Dir = DirNone
	p.NextDir = DirNone
	p.AnimFrame = 0
	p.AnimTimer = 0
}

// CanMove checks whether one frame of travel in dir is legal from the current
// continuous position. Vertical moves are rejected near the lateral edges so
// the tunnel cannot be clipped into from above or below; positions beyond the
// horizontal bounds are in tunnel transit and always legal. Otherwise a probe
// point just ahead of the center decides against the maze, with the house
// gate closed to the player in every direction.
func (p *Player) CanMove(m *tilemap.TileMap, dir Direction) bool {
	if dir == DirNone {
		return false
	}
	dx, dy := DirDelta(dir)
	nextX := p.X + float64(dx)*PlayerSpeed
	nextY := p.Y + float64(dy)*PlayerSpeed

	cx := nextX + TileSize
	cy := nextY + TileSize
	if (cx < TileSize || cx > GameWidth-TileSize) && (dir == DirUp || dir == DirDown) {
		return false
	}
	if nextX < -TileSize || nextX >= GameWidth-TileSize {
		return true
	}

	checkX := cx + float64(dx)*sensorOffset
	checkY := cy + float64(dy)*sensorOffset
	tx := int(math.Floor(checkX / TileSize))
	ty := int(math.Floor(checkY / TileSize))

	if tx < 0 || tx >= m.Width {
		return ty == tilemap.TunnelRow
	}
	if ty < 0 || ty >= m.Height {
		return false
	}
	if m.IsGate(tx, ty) {
		return false
	}
	return !m.IsWall(tx, ty)
}

// CanTurn is the one-tile lookahead used for queued turns: it checks the
// destination tile itself rather than the sensor point, so a turn commits
// only when the next tile over is open.
func (p *Player) CanTurn(m *tilemap.TileMap, dir Direction) bool {
	dx, dy := DirDelta(dir)
	tx := p.TileX + dx
	ty := p.TileY + dy
	if tx < 0 || tx >= m.Width {
		return ty == tilemap.TunnelRow
	}
	if ty < 0 || ty >= m.Height {
		return false
	}
	if m.IsGate(tx, ty) {
		return false
	}
	return !m.IsWall(tx, ty)
}

// Update advances the player one frame. Intent resolution, in priority
// order: an exact reversal commits immediately even mid-tile; a stopped
// player starts as soon as the requested direction is legal; at a tile
// center a queued turn commits after the lookahead passes, and a blocked
// heading stops the player. Either center commitment re-snaps the position.
func (p *Player) Update(m *tilemap.TileMap) {
	switch {
	case p.NextDir != DirNone && IsOpposite(p.Dir, p.NextDir):
		if p.CanMove(m, p.NextDir) {
			p.Dir = p.NextDir
			p.NextDir = DirNone
		}
	case p.Dir == DirNone && p.NextDir != DirNone:
		if p.CanMove(m, p.NextDir) {
			p.Dir = p.NextDir
			p.NextDir = DirNone
		}
	case p.AtTileCenter(PlayerSpeed):
		if p.NextDir != DirNone && p.NextDir != p.Dir && p.CanTurn(m, p.NextDir) {
			p.SnapToCenter()
			p.Dir = p.NextDir
			p.NextDir = DirNone
		}
		if p.Dir != DirNone && !p.CanMove(m, p.Dir) {
			p.SnapToCenter()
			p.Dir = DirNone
		}
	}

	if p.Dir != DirNone && p.CanMove(m, p.Dir) {
		p.advance(p.Dir, PlayerSpeed)
		p.stepAnim(3, 3)
	}
	p.UpdateTile()
}
