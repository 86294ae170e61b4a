package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestStatsUpdate(t *testing.T) {
	stats := NewStats()
	if _, err := uuid.Parse(stats.RunID); err != nil {
		t.Fatalf("RunID %q is not a uuid: %v", stats.RunID, err)
	}

	stats.Update(1, 100, 100*time.Millisecond)
	if stats.AveragePopulation != 100 {
		t.Fatalf("first average = %v, want 100", stats.AveragePopulation)
	}
	if stats.GenerationsPerSecond != 10 {
		t.Fatalf("gen/sec = %v, want 10", stats.GenerationsPerSecond)
	}

	stats.Update(2, 200, 0)
	if stats.AveragePopulation != 110 {
		t.Fatalf("moving average = %v, want 110", stats.AveragePopulation)
	}
	if stats.GenerationsPerSecond != 10 {
		t.Fatal("zero duration should keep the previous rate")
	}
	if stats.TotalGenerations != 2 || stats.ActiveCells != 200 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestStatsRunIDUnique(t *testing.T) {
	if NewStats().RunID == NewStats().RunID {
		t.Fatal("two runs share a RunID")
	}
}
