package main

import (
	"fmt"
	"time"

	"github.com/sheikhrachel/go-agelife/model"
	"github.com/sheikhrachel/go-agelife/utils"
)

// periodicRefresh restarts the game every this many generations when auto restart is on
const periodicRefresh = 200

// newGrid builds a grid from config. A zero seed seeds from the clock.
func newGrid(config utils.Config) (*model.Grid, error) {
	opts := []model.Option{
		model.WithParallel(config.UseParallel),
		model.WithBounded(config.UseBoundedGrid),
	}
	if config.Seed != 0 {
		opts = append(opts, model.WithSeed(config.Seed))
	}

	grid, err := model.NewGrid(config.Width, config.Height, opts...)
	if err != nil {
		return nil, err
	}
	if config.Patterns {
		grid.ResetWithInterestingPatterns()
	}
	return grid, nil
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (
	*model.Grid,
	*model.SnapshotPool,
	*model.TerminalRenderer,
	*utils.Stats,
	error,
) {
	var pool *model.SnapshotPool
	if config.UseMemoryPool {
		pool = model.NewSnapshotPool()
	}

	grid, err := newGrid(config)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	return grid, pool, renderer, stats, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(config utils.Config, grid *model.Grid, stats *utils.Stats) {
	fmt.Printf("Run: %s\n", stats.RunID)
	fmt.Printf("Features: Memory Pool: %v, Bounded: %v, Parallel: %v\n",
		config.UseMemoryPool, config.UseBoundedGrid, config.UseParallel)
	fmt.Printf("Grid: %dx%d | Initial living cells: %d\n",
		grid.Width(), grid.Height(), grid.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
}

// updateGameState updates the game state and returns status information
func updateGameState(
	grid *model.Grid,
	generation int,
	lastFrameTime time.Time,
	stats *utils.Stats,
) (int, float64, string, bool) {
	livingCells := grid.CountLivingCells()
	density := float64(livingCells) / float64(grid.Width()*grid.Height()) * 100

	// Update performance stats
	frameDuration := time.Since(lastFrameTime)
	stats.Update(generation, livingCells, frameDuration)
	stats.BoundingBoxSize = grid.BoundingBoxSize()

	// Compare against earlier generations before recording this one
	isStagnant := grid.IsStagnant()
	grid.UpdateHistory()

	status := "Active"
	if isStagnant {
		status = fmt.Sprintf("Stagnant since gen %d", generation)
	}
	if livingCells == 0 {
		status = "Extinct"
	}

	return livingCells, density, status, isStagnant
}

// displayGameStatus shows the current game status
func displayGameStatus(
	generation, livingCells int,
	density float64,
	status string,
	config utils.Config,
	stats *utils.Stats,
	lastRestartGen int,
) {

	// Show bounding box info for bounded grids
	boundingInfo := ""
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", stats.BoundingBoxSize)
	}

	fmt.Printf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n",
		generation, livingCells, density, status, boundingInfo)
	fmt.Printf("Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, time.Since(stats.StartTime).Seconds())

	// Show time since last restart
	if generation > lastRestartGen {
		fmt.Printf("Generations since restart: %d\n", generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(
	livingCells, stagnantCount, generation int,
	config utils.Config,
) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	if generation > 0 && generation%periodicRefresh == 0 {
		return true, "periodic refresh"
	}
	return false, ""
}

// restartGame reseeds the grid in place
func restartGame(config utils.Config, grid *model.Grid) {
	fmt.Printf("\n🔄 Restarting...\n")

	if config.Patterns {
		grid.ResetWithInterestingPatterns()
	} else {
		grid.SeedRandom()
	}

	fmt.Printf("✨ New patterns loaded! Living cells: %d\n", grid.CountLivingCells())
}
