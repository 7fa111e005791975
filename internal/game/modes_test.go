package game

import (
	"testing"

	"github.com/RetiredWizard/pac-fruitjam/internal/entities"
)

func TestSchedulerFirstFlip(t *testing.T) {
	s := NewModeScheduler()
	if s.Mode() != entities.ModeScatter {
		t.Fatal("schedule must open in scatter")
	}
	for i := 0; i < 7*updatesPerSecond-1; i++ {
		if s.Tick() {
			t.Fatalf("flipped early at tick %d", i+1)
		}
	}
	if !s.Tick() {
		t.Fatal("expected the flip exactly when the first period elapses")
	}
	if s.Mode() != entities.ModeChase {
		t.Fatalf("mode after first flip = %v, want chase", s.Mode())
	}
}

func TestSchedulerAlternates(t *testing.T) {
	s := NewModeScheduler()
	want := []entities.Mode{
		entities.ModeChase,
		entities.ModeScatter,
		entities.ModeChase,
		entities.ModeScatter,
		entities.ModeChase,
		entities.ModeScatter,
		entities.ModeChase,
	}
	flips := 0
	// Everything up to the effectively-infinite final period.
	total := 0
	for _, d := range modeDurations[:len(modeDurations)-1] {
		total += d
	}
	for i := 0; i < total; i++ {
		if s.Tick() {
			if s.Mode() != want[flips] {
				t.Fatalf("flip %d landed on %v, want %v", flips, s.Mode(), want[flips])
			}
			flips++
		}
	}
	if flips != len(want) {
		t.Fatalf("got %d flips, want %d", flips, len(want))
	}
	if s.Mode() != entities.ModeChase {
		t.Fatal("the final period must hold chase")
	}
}

func TestSchedulerReset(t *testing.T) {
	s := NewModeScheduler()
	for i := 0; i < 10*updatesPerSecond; i++ {
		s.Tick()
	}
	s.Reset()
	if s.Mode() != entities.ModeScatter {
		t.Fatal("reset must restore scatter")
	}
	for i := 0; i < 7*updatesPerSecond-1; i++ {
		if s.Tick() {
			t.Fatal("reset did not restart the first period")
		}
	}
	if !s.Tick() {
		t.Fatal("expected the first flip again after reset")
	}
}
