package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

func main() {
	cfg := game.DefaultConfig()
	game.BindFlags(flag.CommandLine, &cfg)
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	step := flag.Duration("step", 50*time.Millisecond, "Simulated time per frame.")
	botRate := flag.Float64("bot-rate", 0.5, "Fraction of frames on which the bot issues a command.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting blockfall stress test...")

	report := &Report{
		Duration:       *duration,
		Step:           *step,
		BotRate:        *botRate,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	session, err := game.New(cfg, game.WithListener(report.Events.Record))
	if err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}
	report.Config = session.Config()

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	restarts := &RestartSystem{}
	scheduler := engine.NewScheduler(session)
	scheduler.Register(&BotSystem{Rng: rand.New(rand.NewPCG(seed, seed>>1)), Rate: *botRate})
	scheduler.Register(&engine.GravitySystem{})
	scheduler.Register(restarts)

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			scheduler.Once(*step)
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Scheduler = scheduler.GetStats()
	report.Games = len(restarts.Scores)
	for _, score := range append(restarts.Scores, session.Score()) {
		report.BestScore = max(report.BestScore, score)
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
