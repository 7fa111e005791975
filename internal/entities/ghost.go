package entities

import (
	"math"
	"math/rand"

	"github.com/RetiredWizard/pac-fruitjam/internal/tilemap"
)

// Archetype selects a ghost's targeting personality.
type Archetype int

const (
	Blinky Archetype = iota // direct chaser
	Pinky                   // ambusher, aims ahead of the player
	Inky                    // flanker, mirrors Blinky through a lookahead point
	Clyde                   // opportunist, chases only from a distance
)

type Mode int

const (
	ModeScatter Mode = iota
	ModeChase
	ModeFrightened
	ModeEaten
)

const (
	// FrightenedDuration is how many ticks a power pellet lasts.
	FrightenedDuration = 360
	// Blinking starts this many ticks before frightened mode expires.
	frightenedBlinkLead = 120

	frightenedSpeedFactor = 0.6

	// Tile-center thresholds; the eaten ghost moves fast enough to need a
	// wider window.
	centerThreshold      = 0.7 * TileSize / 8
	eatenCenterThreshold = 1.5 * TileSize / 8

	// House geometry in pixels (sprite-origin coordinates).
	houseExitX  = 13 * TileSize
	houseExitY  = 11*TileSize - TileSize/2
	houseBobY   = 14*TileSize - TileSize/2
	houseBobAmp = 3 * TileSize / 8

	// Clyde switches to his scatter corner inside this squared tile radius.
	clydeRetreatDistSq = 64
)

// houseReturn is the tile an eaten ghost steers for before dropping back in.
const (
	houseReturnCol = 13
	houseReturnRow = 11
)

type Ghost struct {
	Actor
	Type Archetype
	Mode Mode

	InHouse    bool
	HouseTimer int

	// ReversePending forces a direction reversal at the next opportunity,
	// set when the global scatter/chase mode flips.
	ReversePending  bool
	FrightenedTimer int

	startCol, startRow int
	startOffset        float64
}

var ghostSpawns = map[Archetype][3]int{
	Blinky: {13, 11, 0},
	Pinky:  {13, 14, TileSize / 2},
	Inky:   {11, 14, TileSize / 2},
	Clyde:  {15, 14, TileSize / 2},
}

func NewGhost(t Archetype) *Ghost {
	s := ghostSpawns[t]
	g := &Ghost{Type: t, startCol: s[0], startRow: s[1], startOffset: float64(s[2])}
	g.Reset()
	return g
}

func (g *Ghost) Reset() {
	g.TileX, g.TileY = g.startCol, g.startRow
	g.X = tileCenterPos(g.startCol) + g.startOffset
	g.Y = tileCenterPos(g.startRow)
	g.Dir = DirLeft
	g.NextDir = DirNone
	g.InHouse = g.Type != Blinky
	g.HouseTimer = 0
	if g.InHouse {
		if g.Type == Pinky {
			g.Dir = DirDown
		} else {
			g.Dir = DirUp
		}
	}
	g.Mode = ModeScatter
	g.ReversePending = false
	g.FrightenedTimer = 0
	g.AnimFrame = 0
	g.AnimTimer = 0
}

// ScatterTarget is the fixed corner the ghost retreats to in scatter mode.
// The top corners sit above the maze on purpose.
func (g *Ghost) ScatterTarget() (int, int) {
	switch g.Type {
	case Blinky:
		return 25, -3
	case Pinky:
		return 2, -3
	case Inky:
		return 27, 31
	default:
		return 0, 31
	}
}

// ChaseTarget computes the tile this archetype hunts. Inky needs Blinky's
// tile, passed in explicitly so ghosts never hold references to each other.
// Pinky and Inky reproduce the classic overflow quirk: a lookahead past an
// up-facing player also shifts left.
func (g *Ghost) ChaseTarget(p *Player, blinkyX, blinkyY int) (int, int) {
	px, py := p.TileX, p.TileY
	switch g.Type {
	case Blinky:
		return px, py
	case Pinky:
		return lookAhead(px, py, p.Dir, 4)
	case Inky:
		ax, ay := lookAhead(px, py, p.Dir, 2)
		return blinkyX + (ax-blinkyX)*2, blinkyY + (ay-blinkyY)*2
	default: // Clyde
		dx, dy := g.TileX-px, g.TileY-py
		if dx*dx+dy*dy > clydeRetreatDistSq {
			return px, py
		}
		return g.ScatterTarget()
	}
}

func lookAhead(x, y int, dir Direction, n int) (int, int) {
	switch dir {
	case DirUp:
		return x - n, y - n
	case DirDown:
		return x, y + n
	case DirLeft:
		return x - n, y
	case DirRight:
		return x + n, y
	default:
		return x, y
	}
}

// ShouldExit reports whether the ghost's house timer has run out.
func (g *Ghost) ShouldExit() bool {
	switch g.Type {
	case Blinky:
		return g.HouseTimer > 60
	case Pinky:
		return true
	case Inky:
		return g.HouseTimer > 300
	default:
		return g.HouseTimer > 600
	}
}

// Frighten puts the ghost into frightened mode unless it is already eaten.
// A housed ghost is frightened in place and does not reverse.
func (g *Ghost) Frighten() {
	if g.Mode == ModeEaten {
		return
	}
	g.Mode = ModeFrightened
	g.FrightenedTimer = 0
	if !g.InHouse {
		g.ReversePending = true
	}
}

// ApplyGlobalMode adopts a scatter/chase flip from the scheduler. Frightened
// and eaten ghosts keep their override; everyone else turns around at the
// next opportunity.
func (g *Ghost) ApplyGlobalMode(mode Mode) {
	if g.Mode == ModeFrightened || g.Mode == ModeEaten {
		return
	}
	g.Mode = mode
	if !g.InHouse {
		g.ReversePending = true
	}
}

// UpdateFrightened advances the frightened countdown and reverts the ghost
// to the scheduler's current mode when it expires, never to scatter
// unconditionally.
func (g *Ghost) UpdateFrightened(global Mode) {
	if g.Mode != ModeFrightened {
		return
	}
	g.FrightenedTimer++
	if g.FrightenedTimer > FrightenedDuration {
		g.Mode = global
	}
}

// FrightenedBlinking reports whether the frightened visual should flash
// white, near the end of the duration.
func (g *Ghost) FrightenedBlinking() bool {
	return g.Mode == ModeFrightened && g.FrightenedTimer > FrightenedDuration-frightenedBlinkLead
}

func (g *Ghost) speed() float64 {
	switch g.Mode {
	case ModeFrightened:
		return GhostSpeed * frightenedSpeedFactor
	case ModeEaten:
		return EatenSpeed
	default:
		return GhostSpeed
	}
}

func (g *Ghost) alignThreshold() float64 {
	if g.Mode == ModeEaten {
		return eatenCenterThreshold
	}
	return centerThreshold
}

// CanMove mirrors the player's probe with the ghost-specific rules: an eaten
// ghost moves freely inside the house block, and the gate only blocks a
// downward move for a ghost that is neither housed nor eaten.
func (g *Ghost) CanMove(m *tilemap.TileMap, dir Direction) bool {
	if dir == DirNone {
		return false
	}
	speed := GhostSpeed
	if g.Mode == ModeEaten {
		speed = EatenSpeed
	}
	dx, dy := DirDelta(dir)
	nextX := g.X + float64(dx)*speed
	nextY := g.Y + float64(dy)*speed

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
	if g.Mode == ModeEaten && 11 <= ty && ty <= 15 && 10 <= tx && tx <= 17 {
		return true
	}
	if dir == DirDown && m.IsGate(tx, ty) && !g.InHouse && g.Mode != ModeEaten {
		return false
	}
	return !m.IsWall(tx, ty)
}

// Update advances the ghost one frame.
func (g *Ghost) Update(m *tilemap.TileMap, p *Player, blinkyX, blinkyY int, global Mode, rng *rand.Rand) {
	if g.InHouse {
		g.updateInHouse()
		return
	}

	if g.ReversePending {
		g.ReversePending = false
		rev := g.Dir.Opposite()
		if g.CanMove(m, rev) {
			g.Dir = rev
			g.SnapToCenter()
			return
		}
	}

	if g.AtTileCenter(g.alignThreshold()) {
		if g.Mode == ModeEaten && g.decideEaten(global) {
			return
		}
		g.decideDirection(m, p, blinkyX, blinkyY, rng)
		g.SnapToCenter()
	}

	if g.Dir != DirNone && g.CanMove(m, g.Dir) {
		g.advance(g.Dir, g.speed())
		g.stepAnim(10, 2)
	}
	g.UpdateTile()
}

// updateInHouse bobs the ghost around the house centerline at half speed
// until its exit timer fires, then walks it to the gate column and up
// through the gate.
func (g *Ghost) updateInHouse() {
	g.HouseTimer++
	if g.ShouldExit() {
		if math.Abs(g.X-houseExitX) >= GhostSpeed {
			if g.X < houseExitX {
				g.X += GhostSpeed
				g.Dir = DirRight
			} else {
				g.X -= GhostSpeed
				g.Dir = DirLeft
			}
		} else {
			g.X = houseExitX
			g.Y -= GhostSpeed
			g.Dir = DirUp
			if g.Y <= houseExitY {
				g.Y = houseExitY
				g.InHouse = false
				g.Dir = DirLeft
			}
		}
	} else {
		if g.Dir == DirUp {
			g.Y -= GhostSpeed / 2
			if g.Y < houseBobY-houseBobAmp {
				g.Dir = DirDown
			}
		} else {
			g.Y += GhostSpeed / 2
			if g.Y > houseBobY+houseBobAmp {
				g.Dir = DirUp
			}
		}
	}
	g.stepAnim(10, 2)
	g.UpdateTile()
}

// decideEaten handles the arrival side of the eaten state: once the ghost is
// over the house it re-enters, resets its timer and resumes the scheduler's
// mode. Reports true when the ghost was re-housed this frame.
func (g *Ghost) decideEaten(global Mode) bool {
	if g.TileY >= 14 && (g.TileX == 13 || g.TileX == 14) {
		g.Mode = global
		g.InHouse = true
		g.HouseTimer = 0
		g.Dir = DirUp
		g.X = houseExitX
		g.Y = houseBobY
		g.UpdateTile()
		return true
	}
	return false
}

// decideDirection picks a new direction at a tile center. Non-frightened
// ghosts take the legal non-reversing direction minimizing squared tile
// distance to the target, ties broken by the Up, Left, Down, Right scan
// order; frightened ghosts pick uniformly at random. If nothing is legal the
// ghost holds its current direction.
func (g *Ghost) decideDirection(m *tilemap.TileMap, p *Player, blinkyX, blinkyY int, rng *rand.Rand) {
	var tx, ty int
	switch g.Mode {
	case ModeChase:
		tx, ty = g.ChaseTarget(p, blinkyX, blinkyY)
	case ModeScatter:
		tx, ty = g.ScatterTarget()
	case ModeEaten:
		tx, ty = houseReturnCol, houseReturnRow
		if (g.TileY == 11 || g.TileY == 12 || g.TileY == 13) && (g.TileX == 13 || g.TileX == 14) {
			// Aligned above the gate: steer straight down into the house.
			tx, ty = houseReturnCol, g.TileY+3
		}
	}

	bestDist := math.MaxInt
	bestDir := g.Dir
	var validDirs []Direction

	for _, d := range []Direction{DirUp, DirLeft, DirDown, DirRight} {
		if IsOpposite(d, g.Dir) {
			continue
		}
		dx, dy := DirDelta(d)
		nx, ny := g.TileX+dx, g.TileY+dy

		valid := false
		if nx >= 0 && nx < m.Width && ny >= 0 && ny < m.Height {
			if !m.IsWall(nx, ny) {
				valid = true
				if d == DirDown && m.IsGate(nx, ny) && !g.InHouse && g.Mode != ModeEaten {
					valid = false
				}
			}
		} else if ny == tilemap.TunnelRow {
			valid = true
		}
		if !valid {
			continue
		}
		validDirs = append(validDirs, d)
		if g.Mode != ModeFrightened {
			dist := (nx-tx)*(nx-tx) + (ny-ty)*(ny-ty)
			if dist < bestDist {
				bestDist = dist
				bestDir = d
			}
		}
	}

	switch {
	case g.Mode == ModeFrightened:
		if len(validDirs) > 0 {
			g.Dir = validDirs[rng.Intn(len(validDirs))]
		}
	case g.Mode == ModeEaten && (g.TileY == 11 || g.TileY == 12) && (g.TileX == 13 || g.TileX == 14):
		g.Dir = DirDown
	default:
		g.Dir = bestDir
	}
}
