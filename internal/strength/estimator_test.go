package strength

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

func TestEstimate_NormalizesAgainstLeagueMeans(t *testing.T) {
	stats := []types.TeamStats{
		{Team: "Man City", AvgXG: 2.4, AvgXGA: 0.8},
		{Team: "Arsenal", AvgXG: 2.0, AvgXGA: 1.0},
		{Team: "Luton", AvgXG: 1.0, AvgXGA: 2.1},
	}

	league, err := Estimate(stats)
	require.NoError(t, err)
	require.Len(t, league.Teams, 3)

	meanXG := (2.4 + 2.0 + 1.0) / 3
	meanXGA := (0.8 + 1.0 + 2.1) / 3
	assert.InDelta(t, meanXG, league.MeanXG, 1e-12)
	assert.InDelta(t, meanXGA, league.MeanXGA, 1e-12)

	city, ok := league.Strength("Man City")
	require.True(t, ok)
	assert.InDelta(t, 2.4/meanXG, city.Attack, 1e-12)
	assert.InDelta(t, meanXGA/0.8, city.Defense, 1e-12)

	// Input row order is preserved
	assert.Equal(t, "Man City", league.Teams[0].Team)
	assert.Equal(t, "Luton", league.Teams[2].Team)
}

func TestEstimate_NeutralDefaultsForMissingValues(t *testing.T) {
	stats := []types.TeamStats{
		{Team: "Newcastle", AvgXG: 1.8, AvgXGA: 1.2},
		{Team: "Promoted FC", AvgXG: math.NaN(), AvgXGA: math.NaN()},
		{Team: "Fulham", AvgXG: 1.3, AvgXGA: 1.5},
	}

	league, err := Estimate(stats)
	require.NoError(t, err)

	// League means ignore the missing rows entirely
	assert.InDelta(t, (1.8+1.3)/2, league.MeanXG, 1e-12)

	promoted, ok := league.Strength("Promoted FC")
	require.True(t, ok)
	assert.Equal(t, NeutralStrength, promoted.Attack)
	assert.Equal(t, NeutralStrength, promoted.Defense)

	// Every rating is finite and positive, never NaN
	for _, team := range league.Teams {
		assert.False(t, math.IsNaN(team.Attack) || math.IsInf(team.Attack, 0))
		assert.False(t, math.IsNaN(team.Defense) || math.IsInf(team.Defense, 0))
		assert.Greater(t, team.Attack, 0.0)
		assert.Greater(t, team.Defense, 0.0)
	}
}

func TestEstimate_ZeroXGATreatedAsMissing(t *testing.T) {
	stats := []types.TeamStats{
		{Team: "Bournemouth", AvgXG: 1.4, AvgXGA: 0},
		{Team: "Brentford", AvgXG: 1.2, AvgXGA: 1.3},
	}

	league, err := Estimate(stats)
	require.NoError(t, err)

	cherries, ok := league.Strength("Bournemouth")
	require.True(t, ok)
	assert.Equal(t, NeutralStrength, cherries.Defense, "zero xGA must not divide")
}

func TestEstimate_FailsWhenFeatureUnusableEverywhere(t *testing.T) {
	cases := []struct {
		name   string
		stats  []types.TeamStats
		column string
	}{
		{
			"all xG missing",
			[]types.TeamStats{
				{Team: "A", AvgXG: math.NaN(), AvgXGA: 1.0},
				{Team: "B", AvgXG: math.NaN(), AvgXGA: 1.2},
			},
			"avg_xG",
		},
		{
			"all xGA zero",
			[]types.TeamStats{
				{Team: "A", AvgXG: 1.1, AvgXGA: 0},
				{Team: "B", AvgXG: 1.2, AvgXGA: 0},
			},
			"avg_xGA",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Estimate(tc.stats)
			require.Error(t, err)
			var missing *types.MissingFeatureError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.column, missing.Column)
		})
	}
}

func TestEstimate_EmptyTable(t *testing.T) {
	_, err := Estimate(nil)
	assert.Error(t, err)
}
