package entities

import "math"

// The maze renders at a 16px tile; the classic metrics below were tuned for
// an 8px tile, so every pixel constant is written as a ratio of TileSize to
// keep the original proportions.
const (
	TileSize  = 16
	MazeCols  = 28
	MazeRows  = 31
	GameWidth = MazeCols * TileSize

	PlayerSpeed = 1.3 * TileSize / 8
	GhostSpeed  = 1.22 * TileSize / 8
	EatenSpeed  = 2.0 * TileSize / 8

	// How far ahead of the actor's center the wall probe sits.
	sensorOffset = 3 * TileSize / 8
)

// Actor is the shared shape of the player and the ghosts: a continuous
// position with a discrete tile projection. X and Y are the sprite origin;
// the sprite spans two tiles, so the actor's center is at
// (X+TileSize, Y+TileSize).
type Actor struct {
	X, Y         float64
	TileX, TileY int
	Dir, NextDir Direction
	AnimFrame    int
	AnimTimer    int
}

func (a *Actor) Center() (float64, float64) {
	return a.X + TileSize, a.Y + TileSize
}

// AtTileCenter reports whether the actor is within threshold of the nearest
// tile center on both axes. The distance is modular so the test stays valid
// during tunnel wrap, and the threshold is the caller's per-frame travel so
// a fast actor cannot overshoot every center between two frames.
func (a *Actor) AtTileCenter(threshold float64) bool {
	cx, cy := a.Center()
	return modDist(cx) <= threshold && modDist(cy) <= threshold
}

func modDist(v float64) float64 {
	d := math.Mod(v-TileSize/2, TileSize)
	if d < 0 {
		d += TileSize
	}
	return math.Min(d, TileSize-d)
}

// SnapToCenter pins the actor to the exact center of the tile it occupies.
// Called on every committed turn or stop so float drift never accumulates.
func (a *Actor) SnapToCenter() {
	cx, cy := a.Center()
	tx := math.Floor(cx / TileSize)
	ty := math.Floor(cy / TileSize)
	a.X = tx*TileSize + TileSize/2 - TileSize
	a.Y = ty*TileSize + TileSize/2 - TileSize
}

// UpdateTile recomputes the tile projection from the continuous position.
func (a *Actor) UpdateTile() {
	a.TileX = int(math.Floor((a.X + TileSize) / TileSize))
	a.TileY = int(math.Floor((a.Y + TileSize) / TileSize))
}

// advance moves the actor one frame along dir and wraps through the tunnel.
func (a *Actor) advance(dir Direction, speed float64) {
	dx, dy := DirDelta(dir)
	a.X += float64(dx) * speed
	a.Y += float64(dy) * speed
	if a.X < -2*TileSize {
		a.X = GameWidth
	} else if a.X >= GameWidth {
		a.X = -2 * TileSize
	}
}

// stepAnim advances the animation cycle every `every` ticks over `frames`
// frames. Frozen whenever the actor is not moving (callers skip it then).
func (a *Actor) stepAnim(every, frames int) {
	a.AnimTimer++
	if a.AnimTimer >= every {
		a.AnimTimer = 0
		a.AnimFrame = (a.AnimFrame + 1) % frames
	}
}

func tileCenterPos(tile int) float64 {
	return float64(tile*TileSize + TileSize/2 - TileSize)
}
