// Package ingest loads the team-strength input table. The schema is an
// explicit contract at the simulator boundary: required columns team,
// avg_xG, avg_xGA, optional points. Any other columns are ignored.
// Per-team blank or unparseable cells are tolerated (they become NaN and
// fall back to neutral strength downstream); a column that is absent from
// the file entirely is a MissingFeatureError.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

const (
	colTeam   = "team"
	colAvgXG  = "avg_xG"
	colAvgXGA = "avg_xGA"
	colPoints = "points"
)

// LoadTeamStats reads the TeamStats table from a CSV file. Row order is
// preserved; it is the deterministic fallback order the simulator relies on.
func LoadTeamStats(path string) ([]types.TeamStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening team stats file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading team stats header: %w", err)
	}

	cols := indexColumns(header)
	teamIdx, ok := cols[strings.ToLower(colTeam)]
	if !ok {
		return nil, &types.MissingFeatureError{Column: colTeam}
	}
	xgIdx, ok := cols[strings.ToLower(colAvgXG)]
	if !ok {
		return nil, &types.MissingFeatureError{Column: colAvgXG}
	}
	xgaIdx, ok := cols[strings.ToLower(colAvgXGA)]
	if !ok {
		return nil, &types.MissingFeatureError{Column: colAvgXGA}
	}
	pointsIdx, hasPoints := cols[strings.ToLower(colPoints)]

	var stats []types.TeamStats
	seen := make(map[string]bool)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading team stats line %d: %w", line+1, err)
		}
		line++

		team := strings.TrimSpace(field(record, teamIdx))
		if team == "" {
			return nil, fmt.Errorf("team stats line %d: empty team name", line)
		}
		if seen[team] {
			return nil, fmt.Errorf("team stats line %d: duplicate team %q", line, team)
		}
		seen[team] = true

		ts := types.TeamStats{
			Team:   team,
			AvgXG:  parseFloatOrNaN(field(record, xgIdx)),
			AvgXGA: parseFloatOrNaN(field(record, xgaIdx)),
			Points: math.NaN(),
		}
		if hasPoints {
			ts.Points = parseFloatOrNaN(field(record, pointsIdx))
		}
		stats = append(stats, ts)
	}

	if len(stats) < 2 {
		return nil, fmt.Errorf("team stats file %s: need at least 2 teams, got %d", path, len(stats))
	}

	return stats, nil
}

// indexColumns maps lower-cased header names to their positions. Matching is
// case-insensitive on the canonical names only; there is no format sniffing.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, exists := cols[key]; !exists {
			cols[key] = i
		}
	}
	return cols
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseFloatOrNaN(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "na") || strings.EqualFold(s, "nan") {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
