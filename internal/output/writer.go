// Package output persists the simulation artifacts as flat CSV files.
// Every file is written to a temp file and renamed into place, so a failed
// or interrupted run never leaves a partial artifact behind.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

const (
	SummaryFileName = "position_probabilities.csv"
	BatchFileName   = "simulation_batch.csv"
)

// WriteSummary persists the ProbabilitySummary table and returns the final
// file path.
func WriteSummary(dir string, summaries []types.TeamSummary) (string, error) {
	if len(summaries) == 0 {
		return "", fmt.Errorf("write summary: nothing to write")
	}

	rows := make([][]string, 0, len(summaries)+1)
	rows = append(rows, []string{"team", "title_prob", "top4_prob", "midtable_prob", "relegation_prob", "avg_rank"})
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Team,
			formatProb(s.TitleProb),
			formatProb(s.Top4Prob),
			formatProb(s.MidtableProb),
			formatProb(s.RelegationProb),
			strconv.FormatFloat(s.AvgRank, 'f', 4, 64),
		})
	}

	return writeCSV(dir, SummaryFileName, rows)
}

// WriteBatch persists the raw SimulationBatch audit table, one row per team
// per simulated season.
func WriteBatch(dir string, batch *types.SimulationBatch) (string, error) {
	if batch == nil || len(batch.Seasons) == 0 {
		return "", fmt.Errorf("write batch: nothing to write")
	}

	rows := make([][]string, 0, len(batch.Seasons)*len(batch.Seasons[0].Table)+1)
	rows = append(rows, []string{"batch_id", "simulation_id", "team", "points", "goals_scored", "goals_against", "goal_diff", "rank"})
	id := batch.BatchID.String()
	for _, season := range batch.Seasons {
		for _, standing := range season.Table {
			rows = append(rows, []string{
				id,
				strconv.Itoa(season.SimulationID),
				standing.Team,
				strconv.Itoa(standing.Points),
				strconv.Itoa(standing.GoalsScored),
				strconv.Itoa(standing.GoalsAgainst),
				strconv.Itoa(standing.GoalDiff),
				strconv.Itoa(standing.Rank),
			})
		}
	}

	return writeCSV(dir, BatchFileName, rows)
}

func writeCSV(dir, name string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	writer := csv.NewWriter(tmp)
	if err := writer.WriteAll(rows); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("flushing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}

	final := filepath.Join(dir, name)
	if err := os.Rename(tmpName, final); err != nil {
		return "", fmt.Errorf("renaming %s into place: %w", name, err)
	}
	return final, nil
}

func formatProb(p float64) string {
	return strconv.FormatFloat(p, 'f', 6, 64)
}
