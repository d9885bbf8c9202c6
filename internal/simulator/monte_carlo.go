package simulator

import (
	"context"
	"fmt"
	"hash/crc32"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/MRuhan17/premier-league-simulator/internal/strength"
	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

// Config holds the Monte Carlo run parameters.
type Config struct {
	NSims         int
	HomeAdvantage float64
	Workers       int   // 0 = one worker per CPU
	Seed          int64 // 0 = seed from the clock; runs are reproducible only with an explicit seed
}

// Engine runs the Monte Carlo season simulation. It is stateless between
// calls: every Run loads nothing, caches nothing, and leaves nothing behind.
type Engine struct {
	league *strength.League
	config Config
	logger *logrus.Logger
}

// NewEngine validates the configuration up front so a bad parameter aborts
// before any season is simulated.
func NewEngine(league *strength.League, config Config, logger *logrus.Logger) (*Engine, error) {
	if league == nil || league.TeamCount() < 2 {
		return nil, fmt.Errorf("monte carlo engine: need a league with at least 2 teams")
	}
	if config.NSims <= 0 {
		return nil, &types.InvalidConfigurationError{
			Param:  "n_sims",
			Reason: fmt.Sprintf("must be a positive integer, got %d", config.NSims),
		}
	}
	if !validRate(config.HomeAdvantage) {
		return nil, &types.InvalidConfigurationError{
			Param:  "home_advantage",
			Reason: fmt.Sprintf("must be finite and > 0, got %v", config.HomeAdvantage),
		}
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	return &Engine{
		league: league,
		config: config,
		logger: logger,
	}, nil
}

type seasonResult struct {
	standings types.SeasonStandings
	err       error
}

// Run simulates the full batch. Seasons are embarrassingly parallel: each
// worker reads only the shared immutable strength table and every season
// draws from its own seeded stream, so concurrent seasons never share RNG
// state. Aggregation waits for every season; if the context is cancelled or
// any season fails, the whole batch is discarded rather than aggregated
// short, since a truncated batch would silently bias the probabilities.
func (e *Engine) Run(ctx context.Context) (*types.SimulationBatch, error) {
	startTime := time.Now()
	batchID := uuid.New()

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"batch_id": batchID.String(),
			"n_sims":   e.config.NSims,
			"teams":    e.league.TeamCount(),
			"workers":  e.config.Workers,
		}).Info("Starting Monte Carlo season simulation")
	}

	jobs := make(chan int)
	results := make(chan seasonResult, e.config.Workers)

	var wg sync.WaitGroup
	for w := 0; w < e.config.Workers; w++ {
		wg.Add(1)
		go e.simulationWorker(jobs, results, &wg)
	}

	go func() {
		defer close(jobs)
		for i := 0; i < e.config.NSims; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	seasons := make([]types.SeasonStandings, 0, e.config.NSims)
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		seasons = append(seasons, res.standings)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("simulation batch interrupted after %d of %d seasons, discarding partial results: %w",
			len(seasons), e.config.NSims, err)
	}
	if firstErr != nil {
		return nil, fmt.Errorf("simulation batch failed, discarding partial results: %w", firstErr)
	}
	if len(seasons) != e.config.NSims {
		return nil, fmt.Errorf("simulation batch incomplete: got %d of %d seasons, discarding", len(seasons), e.config.NSims)
	}

	// Canonical season order keeps the batch artifact byte-stable for a
	// fixed seed regardless of worker scheduling.
	sort.Slice(seasons, func(i, j int) bool {
		return seasons[i].SimulationID < seasons[j].SimulationID
	})

	batch := &types.SimulationBatch{
		BatchID: batchID,
		NSims:   e.config.NSims,
		Seasons: seasons,
	}

	if e.logger != nil {
		e.logger.WithFields(logrus.Fields{
			"batch_id":       batchID.String(),
			"n_sims":         e.config.NSims,
			"execution_time": time.Since(startTime),
		}).Info("Monte Carlo season simulation completed")
	}

	return batch, nil
}

func (e *Engine) simulationWorker(jobs <-chan int, results chan<- seasonResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for sim := range jobs {
		standings, err := SimulateSeason(e.league, e.config.HomeAdvantage, sim, seasonSeed(e.config.Seed, sim))
		results <- seasonResult{standings: standings, err: err}
	}
}

// seasonSeed derives an independent stream seed for one season from the
// master seed and the simulation index. Correlated streams across
// "parallel" seasons would break the independence assumption behind the
// Monte Carlo estimate.
func seasonSeed(master int64, sim int) uint64 {
	h := crc32.NewIEEE()
	fmt.Fprintf(h, "%d:%d", master, sim)
	return uint64(master)<<32 ^ uint64(sim)<<16 ^ uint64(h.Sum32())
}
