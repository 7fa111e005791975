package tilemap

// Item is what the player finds on a tile when passing through its center.
type Item int

const (
	ItemNone Item = iota
	ItemDot
	ItemPower
)

// Player spawn tile; flood-fill origin for pellet placement.
const (
	SpawnCol = 14
	SpawnRow = 23
)

// ResetPellets repopulates every consumable in the maze and returns the total
// count, which the caller uses as the level-complete threshold. Pellets go on
// every corridor tile reachable from the player spawn, except inside the
// ghost house, on the player spawn tiles, and in the tunnel stretches. The
// four power pellet tiles are fixed.
func (m *TileMap) ResetPellets() int {
	reachable := m.floodFill(SpawnCol, SpawnRow)
	total := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Tiles[y][x] == TileWall {
				continue
			}
			m.Tiles[y][x] = TileEmpty
			if !reachable[y][x] {
				continue
			}
			if isPowerPellet(x, y) {
				m.Tiles[y][x] = TilePower
				total++
				continue
			}
			ghostArea := 7 <= x && x <= 20 && 9 <= y && y <= 19
			playerArea := y == SpawnRow && (x == 13 || x == 14)
			tunnel := y == TunnelRow && (x < 6 || x > 21)
			if !ghostArea && !playerArea && !tunnel {
				m.Tiles[y][x] = TilePellet
				total++
			}
		}
	}
	return total
}

// Consume reads and clears the consumable on a tile. Consuming an empty or
// out-of-bounds tile is a no-op.
func (m *TileMap) Consume(x, y int) Item {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return ItemNone
	}
	switch m.Tiles[y][x] {
	case TilePellet:
		m.Tiles[y][x] = TileEmpty
		return ItemDot
	case TilePower:
		m.Tiles[y][x] = TileEmpty
		return ItemPower
	}
	return ItemNone
}

// Reachable reports whether a tile can be walked to from the player spawn.
func (m *TileMap) Reachable(x, y int) bool {
	if y < 0 || y >= m.Height || x < 0 || x >= m.Width {
		return false
	}
	return m.floodFill(SpawnCol, SpawnRow)[y][x]
}

func (m *TileMap) floodFill(startX, startY int) [][]bool {
	seen := make([][]bool, m.Height)
	for i := range seen {
		seen[i] = make([]bool, m.Width)
	}
	queue := [][2]int{{startX, startY}}
	seen[startY][startX] = true
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}} {
			nx, ny := c[0]+d[0], c[1]+d[1]
			if nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
				continue
			}
			if m.Tiles[ny][nx] != TileWall && !seen[ny][nx] {
				seen[ny][nx] = true
				queue = append(queue, [2]int{nx, ny})
			}
		}
	}
	return seen
}

func isPowerPellet(x, y int) bool {
	for _, p := range powerPellets {
		if p[0] == x && p[1] == y {
			return true
		}
	}
	return false
}
