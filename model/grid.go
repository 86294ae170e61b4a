package model

import (
	"crypto/md5"
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-agelife/rules"
)

const (
	// seedThreshold makes roughly one cell in five alive after SeedRandom
	seedThreshold = 0.8

	historySize = 5
)

// Grid is the game board. It owns two buffers of identical shape: current,
// which callers observe, and next, which is written while a generation is
// computed and then copied back into current.
//
// Cells are indexed [row][col] with 0 <= row < width and 0 <= col < height.
// A Grid is not safe for concurrent use.
type Grid struct {
	width      int
	height     int
	current    [][]Cell
	next       [][]Cell
	rng        *rand.Rand
	generation int
	history    []string // Store recent grid states for cycle detection

	parallel bool
	bounded  bool
	skipSeed bool

	// Bounding box of living cells in current
	activeBounds struct {
		minRow, maxRow, minCol, maxCol int
		valid                          bool
	}
}

// NewGrid creates a grid with the specified dimensions and seeds it randomly
func NewGrid(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] width: %d, height: %d", width, height)
	}

	g := &Grid{
		width:   width,
		height:  height,
		current: newBuffer(width, height),
		next:    newBuffer(width, height),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newRand(timeSeed())
	}
	if !g.skipSeed {
		g.SeedRandom()
	}
	return g, nil
}

func newBuffer(width, height int) [][]Cell {
	cells := make([][]Cell, width)
	for row := range cells {
		cells[row] = make([]Cell, height)
		for col := range cells[row] {
			cells[row][col] = Cell{Row: row, Column: col}
		}
	}
	return cells
}

// Width returns the number of rows
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of columns
func (g *Grid) Height() int {
	return g.height
}

// Generation returns the number of generations advanced since the last seed or clear
func (g *Grid) Generation() int {
	return g.generation
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.width && col >= 0 && col < g.height
}

func (g *Grid) checkBounds(op string, row, col int) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] row: %d, col: %d, grid: %dx%d", op, row, col, g.width, g.height)
	}
	return nil
}

// resetTracking forgets everything derived from previous generations
func (g *Grid) resetTracking() {
	g.generation = 0
	g.history = nil
	g.activeBounds.valid = false
}

// SeedRandom overwrites every cell with a random state, about 20% alive
func (g *Grid) SeedRandom() {
	for row := range g.width {
		for col := range g.height {
			cell := &g.current[row][col]
			cell.Alive = g.rng.Float64() > seedThreshold
			cell.Age = 0
			g.next[row][col].kill()
		}
	}
	g.resetTracking()
}

// Clear kills every cell in both buffers
func (g *Grid) Clear() {
	for row := range g.width {
		for col := range g.height {
			g.current[row][col].kill()
			g.next[row][col].kill()
		}
	}
	g.resetTracking()
}

// SetAlive brings a dead cell to life with age 0. Already living cells are left untouched.
func (g *Grid) SetAlive(row, col int) error {
	if err := g.checkBounds("SetAlive", row, col); err != nil {
		return err
	}

	cell := &g.current[row][col]
	if cell.Alive {
		return nil
	}
	cell.Alive = true
	cell.Age = 0
	g.activeBounds.valid = false
	return nil
}

// Cell returns a copy of the cell at the given position
func (g *Grid) Cell(row, col int) (Cell, error) {
	if err := g.checkBounds("Cell", row, col); err != nil {
		return Cell{}, err
	}
	return g.current[row][col], nil
}

// IsAlive reports whether the cell at the given position is alive
func (g *Grid) IsAlive(row, col int) (bool, error) {
	if err := g.checkBounds("IsAlive", row, col); err != nil {
		return false, err
	}
	return g.current[row][col].Alive, nil
}

// Age returns the number of consecutive generations the cell has survived
func (g *Grid) Age(row, col int) (int, error) {
	if err := g.checkBounds("Age", row, col); err != nil {
		return 0, err
	}
	return g.current[row][col].Age, nil
}

// CountNeighbors returns how many of the up to 8 surrounding cells are alive
func (g *Grid) CountNeighbors(row, col int) (int, error) {
	if err := g.checkBounds("CountNeighbors", row, col); err != nil {
		return 0, err
	}
	return g.countNeighbors(row, col), nil
}

// countNeighbors reads only current. Edges are hard: off-grid positions are not counted.
func (g *Grid) countNeighbors(row, col int) int {
	count := 0

	// Calculate bounds once
	minRow := max(0, row-1)
	maxRow := min(g.width-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.height-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		cells := g.current[r]
		for c := minCol; c <= maxCol; c++ {
			if cells[c].Alive {
				count++
			}
		}
	}

	// The window includes the cell itself
	if g.current[row][col].Alive {
		count--
	}
	return count
}

// AdvanceGeneration moves the grid forward by one generation. Every cell's
// next state is computed from current into next before any of it is copied
// back, so the order of computation never affects the result.
func (g *Grid) AdvanceGeneration() {
	minRow, maxRow := 0, g.width-1
	minCol, maxCol := 0, g.height-1

	if g.bounded {
		if !g.activeBounds.valid {
			g.calculateActiveBounds()
		}
		// Nothing alive, nothing can be born
		if !g.activeBounds.valid {
			g.generation++
			return
		}

		// Process only the active region + 1 margin
		minRow = max(0, g.activeBounds.minRow-1)
		maxRow = min(g.width-1, g.activeBounds.maxRow+1)
		minCol = max(0, g.activeBounds.minCol-1)
		maxCol = min(g.height-1, g.activeBounds.maxCol+1)
	}

	if g.parallel {
		g.computeNextParallel(minRow, maxRow, minCol, maxCol)
	} else {
		g.computeNext(minRow, maxRow, minCol, maxCol)
	}
	g.commitNext(minRow, maxRow, minCol, maxCol)
	g.generation++
}

// computeNext fills next for rows [startRow, endRow] and cols [minCol, maxCol]
func (g *Grid) computeNext(startRow, endRow, minCol, maxCol int) {
	for row := startRow; row <= endRow; row++ {
		cur, nxt := g.current[row], g.next[row]
		for col := minCol; col <= maxCol; col++ {
			nxt[col].Alive, nxt[col].Age = rules.NextState(cur[col].Alive, cur[col].Age, g.countNeighbors(row, col))
		}
	}
}

// computeNextParallel splits the rows into bands, one per CPU. Workers only
// read current and each writes its own rows of next.
func (g *Grid) computeNextParallel(minRow, maxRow, minCol, maxCol int) {
	var (
		eg            errgroup.Group
		rows          = maxRow - minRow + 1
		numWorkers    = runtime.NumCPU()
		rowsPerWorker = (rows + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = minRow + i*rowsPerWorker
			endRow   = min(startRow+rowsPerWorker-1, maxRow)
		)
		if startRow > maxRow {
			break
		}

		eg.Go(func() error {
			g.computeNext(startRow, endRow, minCol, maxCol)
			return nil
		})
	}

	// Workers never return an error
	_ = eg.Wait()
}

// commitNext copies alive and age from next into current and rebuilds the
// active bounds. Cells outside the region are dead in both buffers.
func (g *Grid) commitNext(minRow, maxRow, minCol, maxCol int) {
	g.activeBounds.valid = false

	for row := minRow; row <= maxRow; row++ {
		cur, nxt := g.current[row], g.next[row]
		for col := minCol; col <= maxCol; col++ {
			cur[col].Alive = nxt[col].Alive
			cur[col].Age = nxt[col].Age
			if cur[col].Alive {
				g.extendActiveBounds(row, col)
			}
		}
	}
}

func (g *Grid) extendActiveBounds(row, col int) {
	if !g.activeBounds.valid {
		g.activeBounds.minRow = row
		g.activeBounds.maxRow = row
		g.activeBounds.minCol = col
		g.activeBounds.maxCol = col
		g.activeBounds.valid = true
		return
	}
	g.activeBounds.minRow = min(g.activeBounds.minRow, row)
	g.activeBounds.maxRow = max(g.activeBounds.maxRow, row)
	g.activeBounds.minCol = min(g.activeBounds.minCol, col)
	g.activeBounds.maxCol = max(g.activeBounds.maxCol, col)
}

// calculateActiveBounds calculates the bounding box of living cells
func (g *Grid) calculateActiveBounds() {
	g.activeBounds.valid = false

	for row := range g.width {
		for col := range g.height {
			if g.current[row][col].Alive {
				g.extendActiveBounds(row, col)
			}
		}
	}
}

// BoundingBoxSize returns the size of the active region
func (g *Grid) BoundingBoxSize() int {
	if !g.activeBounds.valid {
		g.calculateActiveBounds()
	}
	if !g.activeBounds.valid {
		return 0
	}
	return (g.activeBounds.maxRow - g.activeBounds.minRow + 1) *
		(g.activeBounds.maxCol - g.activeBounds.minCol + 1)
}

// Snapshot copies current into dst, reallocating it if its shape does not
// match the grid, and returns it. The result never aliases grid state.
func (g *Grid) Snapshot(dst [][]Cell) [][]Cell {
	if len(dst) != g.width {
		dst = make([][]Cell, g.width)
	}
	for row := range g.width {
		if len(dst[row]) != g.height {
			dst[row] = make([]Cell, g.height)
		}
		copy(dst[row], g.current[row])
	}
	return dst
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for row := range g.width {
		for col := range g.height {
			if g.current[row][col].Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 hash of the alive pattern. Ages are ignored so a
// still life hashes the same every generation.
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, g.height)
	for row := range g.width {
		for col := range g.height {
			buf[col] = 0
			if g.current[row][col].Alive {
				buf[col] = 1
			}
		}
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds current state to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Hash())

	if len(g.history) > historySize {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a static state or a cycle of period 2 or 3
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	currentHash := g.Hash()
	for i := 1; i <= 3; i++ {
		if g.history[len(g.history)-i] == currentHash {
			return true
		}
	}
	return false
}

// InjectRandomLife brings up to count random cells to life to break stagnation
func (g *Grid) InjectRandomLife(count int) {
	for range count {
		// Coordinates are always in range
		_ = g.SetAlive(g.rng.IntN(g.width), g.rng.IntN(g.height))
	}
}

// stamp brings the live cells of pattern to life with pattern[dc][dr] placed
// at (row+dr, col+dc). Off-grid parts are skipped.
func (g *Grid) stamp(row, col int, pattern [][]bool) {
	for dc, line := range pattern {
		for dr, alive := range line {
			if alive && g.inBounds(row+dr, col+dc) {
				_ = g.SetAlive(row+dr, col+dc)
			}
		}
	}
}

// AddGlider adds a glider pattern with its top-left corner at the given position
func (g *Grid) AddGlider(row, col int) {
	g.stamp(row, col, [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	})
}

// AddBlinker adds a horizontal blinker oscillator
func (g *Grid) AddBlinker(row, col int) {
	g.stamp(row, col, [][]bool{
		{true, true, true},
	})
}

// ResetWithInterestingPatterns reseeds the grid and stamps a few known patterns over it
func (g *Grid) ResetWithInterestingPatterns() {
	g.SeedRandom()

	if g.width < 10 || g.height < 10 {
		return
	}

	g.AddGlider(5, 5)
	if g.width >= 20 && g.height >= 15 {
		g.AddGlider(g.width-8, 5)
	}

	g.AddBlinker(g.width/4, g.height/4)
	if g.width >= 30 {
		g.AddBlinker(3*g.width/4, 3*g.height/4)
	}
}
