package ingest

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "team_stats.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTeamStats_ReadsSchemaColumns(t *testing.T) {
	path := writeTempCSV(t, `team,avg_xG,avg_xGA,points,manager
Man City,2.4,0.8,91,Guardiola
Arsenal,2.0,1.0,84,Arteta
Luton,1.0,2.1,26,Edwards
`)

	stats, err := LoadTeamStats(path)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, "Man City", stats[0].Team)
	assert.Equal(t, 2.4, stats[0].AvgXG)
	assert.Equal(t, 0.8, stats[0].AvgXGA)
	assert.Equal(t, 91.0, stats[0].Points)

	// Pass-through columns like "manager" are ignored, row order preserved
	assert.Equal(t, "Luton", stats[2].Team)
}

func TestLoadTeamStats_HeaderMatchingIsCaseInsensitive(t *testing.T) {
	path := writeTempCSV(t, `Team,AVG_XG,Avg_xGA
Chelsea,1.7,1.3
Wolves,1.2,1.5
`)

	stats, err := LoadTeamStats(path)
	require.NoError(t, err)
	assert.Len(t, stats, 2)
}

func TestLoadTeamStats_BlankCellsBecomeNaN(t *testing.T) {
	path := writeTempCSV(t, `team,avg_xG,avg_xGA
Newcastle,1.8,1.2
Promoted FC,,NA
`)

	stats, err := LoadTeamStats(path)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.True(t, math.IsNaN(stats[1].AvgXG))
	assert.True(t, math.IsNaN(stats[1].AvgXGA))
}

func TestLoadTeamStats_MissingColumnFailsBeforeSimulation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		column  string
	}{
		{"no avg_xG", "team,avg_xGA\nArsenal,1.0\nSpurs,1.4\n", "avg_xG"},
		{"no avg_xGA", "team,avg_xG\nArsenal,2.0\nSpurs,1.7\n", "avg_xGA"},
		{"no team", "avg_xG,avg_xGA\n2.0,1.0\n1.7,1.4\n", "team"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, tc.content)
			_, err := LoadTeamStats(path)
			require.Error(t, err)
			var missing *types.MissingFeatureError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.column, missing.Column)
		})
	}
}

func TestLoadTeamStats_RejectsDuplicateTeams(t *testing.T) {
	path := writeTempCSV(t, `team,avg_xG,avg_xGA
Everton,1.1,1.4
Everton,1.2,1.3
`)

	_, err := LoadTeamStats(path)
	assert.ErrorContains(t, err, "duplicate team")
}

func TestLoadTeamStats_RequiresAtLeastTwoTeams(t *testing.T) {
	path := writeTempCSV(t, `team,avg_xG,avg_xGA
Lonely FC,1.1,1.4
`)

	_, err := LoadTeamStats(path)
	assert.Error(t, err)
}

func TestLoadTeamStats_MissingFile(t *testing.T) {
	_, err := LoadTeamStats(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
