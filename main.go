package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/go-agelife/model"
	"github.com/sheikhrachel/go-agelife/tui"
	"github.com/sheikhrachel/go-agelife/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	grid, pool, renderer, stats, err := initializeGame(config)
	if err != nil {
		log.Fatalf("failed to create grid: %+v", err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		runInteractive(ctx, config, grid, pool)
		return
	}

	displayGameInfo(config, grid, stats)
	time.Sleep(2 * time.Second)
	runTerminal(ctx, config, grid, pool, renderer, stats)
}

// runInteractive hands the grid to the tcell front end
func runInteractive(ctx context.Context, config utils.Config, grid *model.Grid, pool *model.SnapshotPool) {
	view, err := tui.NewTerminal(pool)
	if err != nil {
		log.Fatalf("failed to open terminal: %+v", err)
	}
	defer view.Close()

	view.Run(ctx, grid, config.FrameRate)
}

// runTerminal is the non-interactive loop printing every generation to stdout
func runTerminal(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	pool *model.SnapshotPool,
	renderer *model.TerminalRenderer,
	stats *utils.Stats,
) {
	var (
		generation     = 0
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Shutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				stats.GenerationsPerSecond, stats.AveragePopulation)
			return
		default:
			// Continue with game loop
		}

		frameStart := time.Now()
		renderer.Clear()

		livingCells, density, status, isStagnant := updateGameState(grid, generation, lastFrameTime, stats)
		lastFrameTime = frameStart

		if isStagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(generation, livingCells, density, status, config, stats, lastRestartGen)
		snapshot := model.TakeSnapshot(grid, pool)
		renderer.Display(snapshot)
		model.SnapshotToPool(snapshot, pool)

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Printf("\n🏁 Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		shouldRestart, restartReason := checkRestartConditions(livingCells, stagnantCount, generation, config)

		if shouldRestart && config.AutoRestart {
			fmt.Printf("🔄 Restarting due to %s...\n", restartReason)
			restartGame(config, grid)
			lastRestartGen = generation
			stagnantCount = 0
		} else if stagnantCount >= 2 && stagnantCount < config.StagnationThreshold {
			// Inject some life to try to break the stagnation
			grid.InjectRandomLife(config.InjectionCount)
		}

		grid.AdvanceGeneration()
		generation++

		// Wait before next frame
		time.Sleep(config.FrameRate)
	}
}
