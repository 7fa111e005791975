package tilemap

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	TilePellet
	TilePower
)

const (
	// TunnelRow is the only row where the maze wraps through the side walls.
	TunnelRow = 14
	// GateRow and the gate columns form the 2-tile opening above the ghost
	// house. The opening is not a wall, but entry is forbidden for everything
	// except housed or eaten ghosts.
	GateRow = 12
)

type TileMap struct {
	Width    int
	Height   int
	TileSize int
	Tiles    [][]Tile
}

func NewDefaultMap(tileSize int) *TileMap {
	grid := parseMaze(defaultMaze)
	m := &TileMap{
		Width:    len(grid[0]),
		Height:   len(grid),
		TileSize: tileSize,
		Tiles:    grid,
	}
	m.ResetPellets()
	return m
}

// IsWall reports whether the tile blocks movement. Rows outside the maze are
// always walls; columns outside the maze are open only on the tunnel row.
func (m *TileMap) IsWall(x, y int) bool {
	if y < 0 || y >= m.Height {
		return true
	}
	if x < 0 || x >= m.Width {
		return y != TunnelRow
	}
	return m.Tiles[y][x] == TileWall
}

// IsGate reports whether the tile is part of the house-gate opening.
func (m *TileMap) IsGate(x, y int) bool {
	return y == GateRow && (x == 13 || x == 14)
}

func parseMaze(lines []string) [][]Tile {
	h := len(lines)
	w := len(lines[0])
	grid := make([][]Tile, h)
	for y := 0; y < h; y++ {
		grid[y] = make([]Tile, w)
		for x := 0; x < w; x++ {
			if lines[y][x] == '#' {
				grid[y][x] = TileWall
			} else {
				grid[y][x] = TileEmpty
			}
		}
	}
	return grid
}
