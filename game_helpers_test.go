package main

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-agelife/utils"
)

func TestCheckRestartConditions(t *testing.T) {
	config := utils.DefaultConfig()

	tests := []struct {
		name          string
		living        int
		stagnantCount int
		generation    int
		wantRestart   bool
		wantReason    string
	}{
		{"extinct", 0, 0, 10, true, "extinction"},
		{"stagnant", 12, config.StagnationThreshold, 10, true, "stagnation detected"},
		{"periodic", 12, 0, periodicRefresh, true, "periodic refresh"},
		{"first generation", 12, 0, 0, false, ""},
		{"active", 12, 1, 17, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restart, reason := checkRestartConditions(tt.living, tt.stagnantCount, tt.generation, config)
			if restart != tt.wantRestart || reason != tt.wantReason {
				t.Fatalf("got (%v, %q), want (%v, %q)", restart, reason, tt.wantRestart, tt.wantReason)
			}
		})
	}
}

func TestNewGridFromConfig(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width = 30
	config.Height = 20
	config.Seed = 5

	a, err := newGrid(config)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newGrid(config)
	if err != nil {
		t.Fatal(err)
	}
	if a.Hash() != b.Hash() {
		t.Fatal("seeded config produced different grids")
	}

	config.Width = 0
	if _, err = newGrid(config); err == nil {
		t.Fatal("zero width should fail")
	}
}

func TestUpdateGameState(t *testing.T) {
	config := utils.DefaultConfig()
	config.Width = 10
	config.Height = 10
	config.Seed = 9
	config.Patterns = false

	grid, err := newGrid(config)
	if err != nil {
		t.Fatal(err)
	}
	grid.Clear()
	for _, p := range [][2]int{{2, 2}, {2, 3}, {3, 2}, {3, 3}} {
		_ = grid.SetAlive(p[0], p[1])
	}

	stats := utils.NewStats()
	var stagnant bool
	for gen := range 4 {
		var living int
		var status string
		living, _, status, stagnant = updateGameState(grid, gen, time.Now(), stats)
		if living != 4 {
			t.Fatalf("living = %d, want 4", living)
		}
		if gen < 3 && status != "Active" {
			t.Fatalf("status at gen %d = %q", gen, status)
		}
		grid.AdvanceGeneration()
	}
	if !stagnant {
		t.Fatal("block should be reported stagnant")
	}
	if stats.BoundingBoxSize != 4 {
		t.Fatalf("bounding box = %d, want 4", stats.BoundingBoxSize)
	}
}
