package game

import (
	"testing"

	"github.com/RetiredWizard/pac-fruitjam/internal/entities"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("PACMAN_CONFIG_DIR", t.TempDir())
	return newWithSeed(1)
}

func centerPlayerOn(g *Game, col, row int) {
	g.player.X = float64(col*tileSize + tileSize/2 - tileSize)
	g.player.Y = float64(row*tileSize + tileSize/2 - tileSize)
	g.player.UpdateTile()
}

func eventsOfKind(g *Game, kind EventKind) []Event {
	var out []Event
	for _, ev := range g.Events() {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

func TestDotEatingScores(t *testing.T) {
	g := newTestGame(t)
	centerPlayerOn(g, 1, 1)
	g.handlePelletCollision()

	evs := eventsOfKind(g, EventDotEaten)
	if len(evs) != 1 {
		t.Fatalf("got %d dot events, want 1", len(evs))
	}
	if evs[0].Points != pelletPoints || evs[0].TileX != 1 || evs[0].TileY != 1 {
		t.Fatalf("unexpected dot event: %+v", evs[0])
	}
	if g.dotsEaten != 1 {
		t.Fatalf("dotsEaten = %d, want 1", g.dotsEaten)
	}
	g.processEvents()
	if g.score != pelletPoints {
		t.Fatalf("score = %d, want %d", g.score, pelletPoints)
	}

	// The tile is empty now; crossing it again must be silent.
	g.events = g.events[:0]
	g.handlePelletCollision()
	if len(g.Events()) != 0 {
		t.Fatal("consuming an empty tile raised an event")
	}
}

func TestPowerPelletFrightensGhosts(t *testing.T) {
	g := newTestGame(t)
	centerPlayerOn(g, 1, 3)
	g.handlePelletCollision()

	evs := eventsOfKind(g, EventPowerPelletEaten)
	if len(evs) != 1 || evs[0].Points != powerPelletPoints {
		t.Fatalf("unexpected power pellet events: %+v", g.Events())
	}
	for i, gh := range g.ghosts {
		if gh.Mode != entities.ModeFrightened {
			t.Fatalf("ghost %d mode = %v, want frightened", i, gh.Mode)
		}
		if gh.FrightenedTimer != 0 {
			t.Fatalf("ghost %d timer = %d, want 0", i, gh.FrightenedTimer)
		}
	}
	// Only the free ghost turns around; the housed three stay put.
	if !g.ghosts[0].ReversePending {
		t.Fatal("the free ghost should queue a reversal")
	}
	for _, gh := range g.ghosts[1:] {
		if gh.ReversePending {
			t.Fatal("a housed ghost queued a reversal")
		}
	}
}

func TestFruitSpawnsAtDotCount(t *testing.T) {
	g := newTestGame(t)
	g.dotsEaten = 69
	centerPlayerOn(g, 1, 1)
	g.handlePelletCollision()
	if g.dotsEaten != 70 {
		t.Fatalf("dotsEaten = %d, want 70", g.dotsEaten)
	}
	if !g.fruitActive || g.fruitTimer != 0 {
		t.Fatal("the 70th dot must spawn the fruit")
	}
}

func TestFruitPickup(t *testing.T) {
	g := newTestGame(t)
	g.fruitActive = true
	g.player.X = float64(fruitTileX*tileSize) // center lands on the fruit
	g.player.Y = float64(fruitTileY * tileSize)
	g.updateFruit()

	evs := eventsOfKind(g, EventFruitEaten)
	if len(evs) != 1 || evs[0].Points != fruitPoints[0] {
		t.Fatalf("unexpected fruit events: %+v", g.Events())
	}
	if g.fruitActive {
		t.Fatal("picked-up fruit should despawn")
	}
}

func TestFruitExpires(t *testing.T) {
	g := newTestGame(t)
	g.fruitActive = true
	g.fruitTimer = fruitLifetimeTicks // player is far away at spawn
	g.updateFruit()
	if g.fruitActive {
		t.Fatal("fruit should despawn after its lifetime")
	}
	if len(g.Events()) != 0 {
		t.Fatal("an expired fruit must not score")
	}
}

func TestGhostEatenCombo(t *testing.T) {
	g := newTestGame(t)
	g.setState(StatePlay)

	gh := g.ghosts[0]
	gh.Mode = entities.ModeFrightened
	g.player.X, g.player.Y = gh.X, gh.Y
	g.checkGhostCollisions()

	evs := eventsOfKind(g, EventGhostEaten)
	if len(evs) != 1 || evs[0].Points != baseGhostPoints || evs[0].Combo != 0 {
		t.Fatalf("first eat: %+v", evs)
	}
	if gh.Mode != entities.ModeEaten {
		t.Fatal("eaten ghost should switch to eyes")
	}
	if g.State() != StateEatingGhost {
		t.Fatalf("state = %v, want the eaten-ghost freeze", g.State())
	}

	// Second ghost during the same power pellet doubles the points.
	g.events = g.events[:0]
	g.setState(StatePlay)
	gh2 := g.ghosts[1]
	gh2.InHouse = false
	gh2.Mode = entities.ModeFrightened
	g.player.X, g.player.Y = gh2.X, gh2.Y
	g.checkGhostCollisions()

	evs = eventsOfKind(g, EventGhostEaten)
	if len(evs) != 1 || evs[0].Points != 2*baseGhostPoints || evs[0].Combo != 1 {
		t.Fatalf("second eat: %+v", evs)
	}
}

func TestEatingGhostFreezeRestoresPlayer(t *testing.T) {
	g := newTestGame(t)
	g.setState(StatePlay)
	gh := g.ghosts[0]
	gh.Mode = entities.ModeFrightened
	savedX, savedY := g.player.X, g.player.Y
	g.player.X, g.player.Y = gh.X, gh.Y

	// Collision moves the player onto the ghost to show the score there.
	g.checkGhostCollisions()
	if g.savedX != savedX || g.savedY != savedY {
		t.Fatal("original player position was not saved")
	}
	for i := 0; i < eatingGhostTicks; i++ {
		g.updateEatingGhost()
	}
	if g.State() != StatePlay {
		t.Fatalf("state = %v, want play after the freeze", g.State())
	}
	if g.player.X != savedX || g.player.Y != savedY {
		t.Fatal("player position was not restored after the freeze")
	}
}

func TestEatenGhostPassesThrough(t *testing.T) {
	g := newTestGame(t)
	g.setState(StatePlay)
	gh := g.ghosts[0]
	gh.Mode = entities.ModeEaten
	g.player.X, g.player.Y = gh.X, gh.Y
	g.checkGhostCollisions()
	if len(g.Events()) != 0 || g.State() != StatePlay {
		t.Fatal("eyes on the way home must not collide")
	}
}

func TestPlayerCaughtCostsALife(t *testing.T) {
	g := newTestGame(t)
	g.setState(StatePlay)
	gh := g.ghosts[0] // scatter mode
	g.player.X, g.player.Y = gh.X, gh.Y
	g.checkGhostCollisions()

	if len(eventsOfKind(g, EventPlayerCaught)) != 1 {
		t.Fatal("expected a player-caught event")
	}
	if g.State() != StateDying {
		t.Fatalf("state = %v, want dying", g.State())
	}

	for i := 0; i < deathFrameTicks*deathAnimFrames+deathHoldTicks; i++ {
		g.updateDying()
	}
	if g.lives != startingLives-1 {
		t.Fatalf("lives = %d, want %d", g.lives, startingLives-1)
	}
	if g.State() != StatePlay {
		t.Fatalf("state = %v, want play for the next life", g.State())
	}
	if g.player.TileX != 14 || g.player.TileY != 23 {
		t.Fatal("player was not returned to spawn")
	}
	if g.sched.Mode() != entities.ModeScatter {
		t.Fatal("the mode schedule must restart after a death")
	}
}

func TestGameOverAfterLastLife(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	g.score = 25000
	g.setState(StateDying)
	for i := 0; i < deathFrameTicks*deathAnimFrames+deathHoldTicks; i++ {
		g.updateDying()
	}
	if g.State() != StateGameOver {
		t.Fatalf("state = %v, want game over", g.State())
	}
	// A qualifying score is persisted on the spot.
	if best := NewHighScoreManager().Best(); best != 25000 {
		t.Fatalf("persisted best = %d, want 25000", best)
	}
}

func TestModeFlipReversesFreeGhosts(t *testing.T) {
	g := newTestGame(t)
	flips := 0
	for i := 0; i < 7*updatesPerSecond; i++ {
		if g.sched.Tick() {
			flips++
			for _, gh := range g.ghosts {
				gh.ApplyGlobalMode(g.sched.Mode())
			}
		}
	}
	if flips != 1 {
		t.Fatalf("got %d flips in the first period, want 1", flips)
	}
	if g.ghosts[0].Mode != entities.ModeChase || !g.ghosts[0].ReversePending {
		t.Fatal("the free ghost should adopt chase and queue a reversal")
	}
	for _, gh := range g.ghosts[1:] {
		if gh.Mode != entities.ModeChase || gh.ReversePending {
			t.Fatal("housed ghosts adopt the mode without reversing")
		}
	}
}

func TestLevelClearedAdvancesLevel(t *testing.T) {
	g := newTestGame(t)
	g.setState(StatePlay)
	g.dotsEaten = g.totalDots
	g.updatePlay()

	if len(eventsOfKind(g, EventLevelCleared)) != 1 {
		t.Fatal("clearing the field must raise exactly one event")
	}
	if g.State() != StateLevelComplete {
		t.Fatalf("state = %v, want level complete", g.State())
	}

	for i := 0; i < levelCompleteTicks; i++ {
		g.updateLevelComplete()
	}
	if g.level != 2 {
		t.Fatalf("level = %d, want 2", g.level)
	}
	if g.State() != StateReady {
		t.Fatalf("state = %v, want ready", g.State())
	}
	if g.dotsEaten != 0 || g.totalDots <= 0 {
		t.Fatal("the pellet field was not regenerated")
	}
}

func TestReadyCountsDownIntoPlay(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < readyTicks; i++ {
		g.updateReady()
	}
	if g.State() != StatePlay {
		t.Fatalf("state = %v, want play after the ready pause", g.State())
	}
}

func TestHighScoreTracksRunningScore(t *testing.T) {
	g := newTestGame(t)
	if g.highScore != 10000 {
		t.Fatalf("initial high score = %d, want the factory default", g.highScore)
	}
	g.score = 15000
	g.processEvents()
	if g.highScore != 15000 {
		t.Fatalf("high score = %d, want 15000", g.highScore)
	}
}
