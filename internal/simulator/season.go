package simulator

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/MRuhan17/premier-league-simulator/internal/strength"
	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

// Fixtures enumerates the season schedule: the Cartesian product of the
// team list with itself minus self-pairs. Every unordered pair appears
// twice, once per home assignment. That is a double round-robin, the real
// Premier League structure (380 fixtures for 20 teams). Order is
// deterministic in the input team order.
func Fixtures(teams []types.TeamStrength) []types.Fixture {
	fixtures := make([]types.Fixture, 0, len(teams)*(len(teams)-1))
	for i := range teams {
		for j := range teams {
			if i == j {
				continue
			}
			fixtures = append(fixtures, types.Fixture{
				Home: teams[i].Team,
				Away: teams[j].Team,
			})
		}
	}
	return fixtures
}

// SimulateSeason plays out one full season from a dedicated random stream.
// It is a pure function of (league, homeAdvantage, seed): it reads only the
// immutable strength table and touches no shared state, so seasons can be
// simulated concurrently without coordination.
func SimulateSeason(league *strength.League, homeAdvantage float64, simID int, seed uint64) (types.SeasonStandings, error) {
	src := rand.NewSource(seed)

	table := make([]types.TeamStanding, len(league.Teams))
	index := make(map[string]int, len(league.Teams))
	for i, team := range league.Teams {
		table[i] = types.TeamStanding{Team: team.Team}
		index[team.Team] = i
	}

	for _, fixture := range Fixtures(league.Teams) {
		homeIdx, awayIdx := index[fixture.Home], index[fixture.Away]
		result, err := simulateMatch(src, league.Teams[homeIdx], league.Teams[awayIdx], league.MeanXG, homeAdvantage)
		if err != nil {
			return types.SeasonStandings{}, fmt.Errorf("simulation %d: %w", simID, err)
		}

		home := &table[homeIdx]
		away := &table[awayIdx]
		home.Points += result.HomePoints
		home.GoalsScored += result.HomeGoals
		home.GoalsAgainst += result.AwayGoals
		away.Points += result.AwayPoints
		away.GoalsScored += result.AwayGoals
		away.GoalsAgainst += result.HomeGoals
	}

	for i := range table {
		table[i].GoalDiff = table[i].GoalsScored - table[i].GoalsAgainst
	}
	rankTable(table)

	return types.SeasonStandings{SimulationID: simID, Table: table}, nil
}

// rankTable orders a season table and assigns distinct ranks 1..N. The
// tie-break contract is explicit: points, then goal difference, then goals
// scored, then team name ascending as the deterministic fallback. Rank
// never depends on incidental input ordering.
func rankTable(table []types.TeamStanding) {
	sort.Slice(table, func(i, j int) bool {
		a, b := table[i], table[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDiff != b.GoalDiff {
			return a.GoalDiff > b.GoalDiff
		}
		if a.GoalsScored != b.GoalsScored {
			return a.GoalsScored > b.GoalsScored
		}
		return a.Team < b.Team
	})
	for i := range table {
		table[i].Rank = i + 1
	}
}
