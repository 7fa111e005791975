package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/RetiredWizard/pac-fruitjam/internal/entities"
	tm "github.com/RetiredWizard/pac-fruitjam/internal/tilemap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	tileSize         = entities.TileSize
	updatesPerSecond = 60

	pelletPoints      = 10
	powerPelletPoints = 50
	baseGhostPoints   = 200

	startingLives = 3

	// Non-blocking pause lengths, in ticks.
	readyTicks         = 120
	eatingGhostTicks   = 60
	levelCompleteTicks = 180
	deathFrameTicks    = 8
	deathAnimFrames    = 11
	deathHoldTicks     = 60

	// Proximity thresholds, scaled from the original 8px-tile metrics.
	collisionDist   = 6 * tileSize / 8
	fruitPickupDist = 8 * tileSize / 8

	fruitTileX         = 13
	fruitTileY         = 17
	fruitLifetimeTicks = 500

	pelletBlinkTicks = 15
)

// Bonus fruit value per level, capped at the last entry.
var fruitPoints = []int{100, 300, 500, 500, 700, 700, 1000, 1000, 2000, 2000, 3000, 3000, 5000}

// Dots-eaten counts that spawn the bonus fruit.
var fruitSpawnCounts = map[int]bool{70: true, 170: true}

type Game struct {
	tileMap *tm.TileMap
	player  *entities.Player
	ghosts  []*entities.Ghost
	sched   *ModeScheduler
	rng     *rand.Rand

	audio      *AudioManager
	highScores *HighScoreManager

	state      State
	stateTimer int
	deathFrame int

	score     int
	highScore int
	lives     int
	level     int

	dotsEaten     int
	totalDots     int
	ghostEatCombo int

	fruitActive bool
	fruitTimer  int

	// Player position saved while the eaten-ghost score is displayed.
	savedX, savedY float64
	eatenGhost     *entities.Ghost

	blinkTimer int
	blinkOn    bool

	events []Event

	scale      float64
	fullscreen bool
	paused     bool
	quit       bool
}

func New() *Game {
	g := newWithSeed(time.Now().UnixNano())

	// Fit the window within ~75% of the display.
	nativeW := g.tileMap.Width * tileSize
	nativeH := g.tileMap.Height * tileSize
	sw, sh := ebiten.Monitor().Size()
	fit := 0.75
	scaleW := float64(sw) * fit / float64(nativeW)
	scaleH := float64(sh) * fit / float64(nativeH)
	g.scale = math.Min(scaleW, scaleH)
	if g.scale <= 0 || math.IsNaN(g.scale) || math.IsInf(g.scale, 0) {
		g.scale = 1.0
	}
	return g
}

// newWithSeed builds a game with a deterministic RNG; tests use a fixed seed.
func newWithSeed(seed int64) *Game {
	m := tm.NewDefaultMap(tileSize)
	g := &Game{
		tileMap:    m,
		player:     entities.NewPlayer(),
		sched:      NewModeScheduler(),
		rng:        rand.New(rand.NewSource(seed)),
		audio:      NewAudioManager(),
		highScores: NewHighScoreManager(),
		lives:      startingLives,
		level:      1,
		state:      StateReady,
		blinkOn:    true,
		scale:      1.0,
	}
	for _, t := range []entities.Archetype{entities.Blinky, entities.Pinky, entities.Inky, entities.Clyde} {
		g.ghosts = append(g.ghosts, entities.NewGhost(t))
	}
	g.totalDots = m.ResetPellets()
	g.highScore = g.highScores.Best()
	g.audio.PlayStartup()
	return g
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.tileMap.Width*tileSize) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.tileMap.Height*tileSize) * g.scale)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth(), g.ScreenHeight()
}

func (g *Game) Update() error {
	g.events = g.events[:0]
	g.handleInput()
	if g.quit {
		g.flushHighScore()
		return ebiten.Termination
	}
	if g.paused {
		return nil
	}

	g.blinkTimer++
	if g.blinkTimer >= pelletBlinkTicks {
		g.blinkTimer = 0
		g.blinkOn = !g.blinkOn
	}

	switch g.state {
	case StateReady:
		g.updateReady()
	case StatePlay:
		g.updatePlay()
	case StateDying:
		g.updateDying()
	case StateEatingGhost:
		g.updateEatingGhost()
	case StateLevelComplete:
		g.updateLevelComplete()
	case StateGameOver:
		g.updateGameOver()
	}

	g.processEvents()
	return nil
}

func (g *Game) updatePlay() {
	if g.sched.Tick() {
		for _, gh := range g.ghosts {
			gh.ApplyGlobalMode(g.sched.Mode())
		}
	}

	g.player.Update(g.tileMap)
	g.handlePelletCollision()

	blinkyX, blinkyY := g.ghosts[0].TileX, g.ghosts[0].TileY
	for _, gh := range g.ghosts {
		gh.UpdateFrightened(g.sched.Mode())
		gh.Update(g.tileMap, g.player, blinkyX, blinkyY, g.sched.Mode(), g.rng)
	}

	g.checkGhostCollisions()
	if g.state != StatePlay {
		return
	}
	g.updateFruit()

	if g.dotsEaten >= g.totalDots {
		g.emit(Event{Kind: EventLevelCleared})
		g.setState(StateLevelComplete)
	}
}

func (g *Game) handleInput() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		g.player.NextDir = entities.DirUp
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		g.player.NextDir = entities.DirDown
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		g.player.NextDir = entities.DirLeft
	} else if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		g.player.NextDir = entities.DirRight
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.audio.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
	if g.state == StateGameOver &&
		(inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)) {
		g.resetGame()
	}
}

// processEvents applies scoring and audio for everything raised this tick.
func (g *Game) processEvents() {
	for _, ev := range g.events {
		g.score += ev.Points
		switch ev.Kind {
		case EventDotEaten, EventPowerPelletEaten:
			g.audio.PlayWaka()
		case EventGhostEaten, EventFruitEaten:
			g.audio.PlayGhostEaten()
		case EventPlayerCaught, EventLevelCleared:
			g.audio.Stop()
		}
	}
	if g.score > g.highScore {
		g.highScore = g.score
	}
}

// flushHighScore persists the running score if it qualifies, on quit and on
// game over.
func (g *Game) flushHighScore() {
	if g.score > 0 && g.highScores.IsHighScore(g.score) {
		_ = g.highScores.Add(g.score, defaultPlayerName)
	}
}
