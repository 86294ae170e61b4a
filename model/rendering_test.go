package model

import "testing"

func TestStyleOf(t *testing.T) {
	tests := []struct {
		cell Cell
		want Style
	}{
		{Cell{}, StyleDead},
		{Cell{Alive: true}, StyleFresh},
		{Cell{Alive: true, Age: 1}, StyleFresh},
		{Cell{Alive: true, Age: 2}, StyleMature},
		{Cell{Alive: true, Age: 50}, StyleMature},
	}
	for _, tt := range tests {
		if got := StyleOf(tt.cell); got != tt.want {
			t.Fatalf("StyleOf(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestFormat(t *testing.T) {
	g := emptyGrid(t, 3, 2, nil)
	// Row 0 holds a mature block edge, row 2 a fresh cell
	g.current[0][0] = Cell{Row: 0, Column: 0, Alive: true, Age: 3}
	g.current[2][1] = Cell{Row: 2, Column: 1, Alive: true}

	got := Format(g.Snapshot(nil))
	want := "██    \n    ░░\n"
	if got != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
	if Format(nil) != "" {
		t.Fatal("Format(nil) should be empty")
	}
}

func TestSnapshotPool(t *testing.T) {
	g := emptyGrid(t, 4, 4, [][2]int{{1, 1}})
	pool := NewSnapshotPool()

	snap := TakeSnapshot(g, pool)
	if len(snap) != 4 || len(snap[0]) != 4 || !snap[1][1].Alive {
		t.Fatalf("pooled snapshot has wrong contents")
	}
	SnapshotToPool(snap, pool)

	_ = g.SetAlive(2, 2)
	snap = TakeSnapshot(g, pool)
	if !snap[2][2].Alive || !snap[1][1].Alive {
		t.Fatal("reused snapshot not refreshed")
	}

	plain := TakeSnapshot(g, nil)
	if !gridsEqual(snap, plain) {
		t.Fatal("pooled and unpooled snapshots differ")
	}
	SnapshotToPool(plain, nil)
}
