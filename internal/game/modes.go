package game

import "github.com/RetiredWizard/pac-fruitjam/internal/entities"

// Scatter/chase schedule in ticks. The final entry never expires in
// practice, leaving the ghosts in chase for the rest of the level.
var modeDurations = []int{
	7 * updatesPerSecond,
	20 * updatesPerSecond,
	7 * updatesPerSecond,
	20 * updatesPerSecond,
	5 * updatesPerSecond,
	20 * updatesPerSecond,
	5 * updatesPerSecond,
	999999 * updatesPerSecond,
}

// ModeScheduler walks the scatter/chase duration table. It only ticks while
// the round is in play and resets on level start and life loss; frightened
// interludes run on the ghosts' own counters and do not touch it.
type ModeScheduler struct {
	index   int
	elapsed int
	mode    entities.Mode
}

func NewModeScheduler() *ModeScheduler {
	return &ModeScheduler{mode: entities.ModeScatter}
}

func (s *ModeScheduler) Mode() entities.Mode {
	return s.mode
}

func (s *ModeScheduler) Reset() {
	s.index = 0
	s.elapsed = 0
	s.mode = entities.ModeScatter
}

// Tick advances one frame and reports whether the global mode flipped.
func (s *ModeScheduler) Tick() bool {
	if s.index >= len(modeDurations) {
		return false
	}
	s.elapsed++
	if s.elapsed < modeDurations[s.index] {
		return false
	}
	s.index++
	s.elapsed = 0
	if s.mode == entities.ModeScatter {
		s.mode = entities.ModeChase
	} else {
		s.mode = entities.ModeScatter
	}
	return true
}
