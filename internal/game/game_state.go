package game

// State is the orchestrator's top-level game state. The fixed-length pauses
// of the original cabinet flow (ready, death animation, eaten-ghost freeze,
// level flash) are tick-counted sub-states so the update loop never blocks.
type State int

const (
	StateReady State = iota
	StatePlay
	StateDying
	StateEatingGhost
	StateLevelComplete
	StateGameOver
)

func (g *Game) setState(s State) {
	g.state = s
	g.stateTimer = 0
}

// State exposes the current game state for tests and the HUD.
func (g *Game) State() State {
	return g.state
}

func (g *Game) updateReady() {
	g.stateTimer++
	if g.stateTimer >= readyTicks {
		g.sched.Reset()
		g.setState(StatePlay)
	}
}

func (g *Game) updateDying() {
	g.stateTimer++
	if g.stateTimer%deathFrameTicks == 0 && g.deathFrame < deathAnimFrames {
		g.deathFrame++
		g.audio.PlayDeathNote(g.deathFrame)
	}
	if g.stateTimer < deathFrameTicks*deathAnimFrames+deathHoldTicks {
		return
	}
	g.audio.Stop()
	g.lives--
	if g.lives <= 0 {
		g.flushHighScore()
		g.setState(StateGameOver)
		return
	}
	g.resetAfterDeath()
	g.setState(StatePlay)
}

func (g *Game) updateEatingGhost() {
	g.stateTimer++
	if g.stateTimer >= eatingGhostTicks {
		g.player.X = g.savedX
		g.player.Y = g.savedY
		g.player.UpdateTile()
		g.eatenGhost = nil
		g.setState(StatePlay)
	}
}

func (g *Game) updateLevelComplete() {
	g.stateTimer++
	if g.stateTimer < levelCompleteTicks {
		return
	}
	g.level++
	g.resetLevel()
	g.audio.PlayStartup()
	g.setState(StateReady)
}

func (g *Game) updateGameOver() {
	// Waits for the restart key, handled in handleInput.
}

// resetAfterDeath restores positions for the next life without touching the
// pellet field, score or level.
func (g *Game) resetAfterDeath() {
	g.player.Reset()
	for _, gh := range g.ghosts {
		gh.Reset()
	}
	g.sched.Reset()
	g.ghostEatCombo = 0
	g.fruitActive = false
	g.fruitTimer = 0
	g.deathFrame = 0
}

// resetLevel regenerates the pellet field and restores every actor for a
// fresh level.
func (g *Game) resetLevel() {
	g.dotsEaten = 0
	g.totalDots = g.tileMap.ResetPellets()
	g.player.Reset()
	for _, gh := range g.ghosts {
		gh.Reset()
	}
	g.sched.Reset()
	g.ghostEatCombo = 0
	g.fruitActive = false
	g.fruitTimer = 0
	g.deathFrame = 0
}

// resetGame starts a brand new game from the game-over screen.
func (g *Game) resetGame() {
	g.score = 0
	g.lives = startingLives
	g.level = 1
	g.resetLevel()
	g.audio.PlayStartup()
	g.setState(StateReady)
}
