package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MRuhan17/premier-league-simulator/internal/config"
	"github.com/MRuhan17/premier-league-simulator/internal/ingest"
	"github.com/MRuhan17/premier-league-simulator/internal/output"
	"github.com/MRuhan17/premier-league-simulator/internal/simulator"
	"github.com/MRuhan17/premier-league-simulator/internal/strength"
	"github.com/MRuhan17/premier-league-simulator/pkg/logger"
)

func main() {
	startTime := time.Now()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize structured logger
	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithComponent("simulate").WithFields(logrus.Fields{
		"environment":    cfg.Env,
		"team_stats":     cfg.TeamStatsPath,
		"output_dir":     cfg.OutputDir,
		"n_sims":         cfg.NSims,
		"home_advantage": cfg.HomeAdvantage,
		"random_seed":    cfg.RandomSeed,
	}).Info("Starting season simulation")

	// SIGINT/SIGTERM cancel the batch; a cancelled batch writes nothing.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load the team strength table
	stats, err := ingest.LoadTeamStats(cfg.TeamStatsPath)
	if err != nil {
		log.Fatalf("Failed to load team stats: %v", err)
	}
	logger.WithComponent("ingest").WithField("teams", len(stats)).Info("Loaded team stats")

	// Estimate attack/defense strengths
	league, err := strength.Estimate(stats)
	if err != nil {
		log.Fatalf("Strength estimation failed: %v", err)
	}
	logStrengths(league, cfg.HomeAdvantage)

	// Run the Monte Carlo batch
	engine, err := simulator.NewEngine(league, simulator.Config{
		NSims:         cfg.NSims,
		HomeAdvantage: cfg.HomeAdvantage,
		Workers:       cfg.SimulationWorkers,
		Seed:          cfg.RandomSeed,
	}, log)
	if err != nil {
		log.Fatalf("Failed to initialize simulation engine: %v", err)
	}

	batch, err := engine.Run(ctx)
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	summaries, err := simulator.Summarize(batch)
	if err != nil {
		log.Fatalf("Aggregation failed: %v", err)
	}

	// Persist artifacts
	summaryPath, err := output.WriteSummary(cfg.OutputDir, summaries)
	if err != nil {
		log.Fatalf("Failed to write probability summary: %v", err)
	}
	if cfg.WriteBatch {
		batchPath, err := output.WriteBatch(cfg.OutputDir, batch)
		if err != nil {
			log.Fatalf("Failed to write simulation batch: %v", err)
		}
		logger.WithBatch(batch.BatchID.String()).WithField("path", batchPath).Info("Wrote simulation batch")
	}

	logger.WithBatch(batch.BatchID.String()).WithFields(logrus.Fields{
		"path":           summaryPath,
		"teams":          len(summaries),
		"execution_time": time.Since(startTime),
	}).Info("Wrote position probabilities")
}

// logStrengths logs each team's ratings and implied per-match lambdas
// against a league-average opponent. Audit aid only; the simulator does not
// consume these.
func logStrengths(league *strength.League, homeAdvantage float64) {
	for _, team := range league.Teams {
		logger.WithTeam(team.Team).WithFields(logrus.Fields{
			"attack_strength":  team.Attack,
			"defense_strength": team.Defense,
			"lambda_home":      homeAdvantage * team.Attack * league.MeanXG,
			"lambda_away":      team.Attack * league.MeanXG,
		}).Debug("Estimated team strength")
	}
}
