package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := ApplyConwayRules(neighbors, true); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}
		wantBorn := neighbors == 3
		if got := ApplyConwayRules(neighbors, false); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name      string
		alive     bool
		age       int
		neighbors int
		wantAlive bool
		wantAge   int
	}{
		{"lonely dies", true, 4, 0, false, 0},
		{"one neighbor dies", true, 1, 1, false, 0},
		{"two neighbors survives", true, 0, 2, true, 1},
		{"three neighbors survives", true, 7, 3, true, 8},
		{"crowded dies", true, 3, 4, false, 0},
		{"fully crowded dies", true, 3, 8, false, 0},
		{"born with three", false, 0, 3, true, 0},
		{"stays dead with two", false, 0, 2, false, 0},
		{"stays dead with four", false, 0, 4, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alive, age := NextState(tt.alive, tt.age, tt.neighbors)
			if alive != tt.wantAlive || age != tt.wantAge {
				t.Fatalf("NextState(%v, %d, %d) = (%v, %d), want (%v, %d)",
					tt.alive, tt.age, tt.neighbors, alive, age, tt.wantAlive, tt.wantAge)
			}
		})
	}
}
