package simulator

import (
	"fmt"
	"sort"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

// Finishing-position bands for a 20-team league. The bands clamp to the
// actual team count so small test leagues still aggregate sanely.
const (
	top4Rank        = 4
	midtableLowRank = 5
	midtableTopRank = 10
	relegationSpots = 3
)

type rankTally struct {
	title      int
	top4       int
	midtable   int
	relegation int
	rankSum    int
}

// Summarize folds a complete SimulationBatch into the per-team probability
// table: empirical frequencies of finishing bands plus the expected rank.
// Output is sorted by avg_rank ascending (best expected finish first), team
// name breaking exact ties. Counting is integer arithmetic over a
// canonically ordered batch, so a fixed seed yields bit-identical output.
func Summarize(batch *types.SimulationBatch) ([]types.TeamSummary, error) {
	if batch == nil || len(batch.Seasons) == 0 {
		return nil, fmt.Errorf("summarize: empty simulation batch")
	}

	teamCount := len(batch.Seasons[0].Table)
	top4 := top4Rank
	if top4 > teamCount {
		top4 = teamCount
	}
	midHi := midtableTopRank
	if midHi > teamCount {
		midHi = teamCount
	}
	relegation := teamCount - relegationSpots + 1
	if relegation < 1 {
		relegation = 1
	}

	tallies := make(map[string]*rankTally, teamCount)
	for _, standing := range batch.Seasons[0].Table {
		tallies[standing.Team] = &rankTally{}
	}

	for _, season := range batch.Seasons {
		if len(season.Table) != teamCount {
			return nil, fmt.Errorf("summarize: simulation %d has %d teams, expected %d",
				season.SimulationID, len(season.Table), teamCount)
		}
		for _, standing := range season.Table {
			tally, ok := tallies[standing.Team]
			if !ok {
				return nil, fmt.Errorf("summarize: simulation %d contains unknown team %q",
					season.SimulationID, standing.Team)
			}
			if standing.Rank < 1 || standing.Rank > teamCount {
				return nil, fmt.Errorf("summarize: simulation %d team %q has rank %d outside [1,%d]",
					season.SimulationID, standing.Team, standing.Rank, teamCount)
			}

			tally.rankSum += standing.Rank
			if standing.Rank == 1 {
				tally.title++
			}
			if standing.Rank <= top4 {
				tally.top4++
			}
			if standing.Rank >= midtableLowRank && standing.Rank <= midHi {
				tally.midtable++
			}
			if standing.Rank >= relegation {
				tally.relegation++
			}
		}
	}

	nSims := float64(len(batch.Seasons))
	summaries := make([]types.TeamSummary, 0, teamCount)
	for team, tally := range tallies {
		summaries = append(summaries, types.TeamSummary{
			Team:           team,
			TitleProb:      float64(tally.title) / nSims,
			Top4Prob:       float64(tally.top4) / nSims,
			MidtableProb:   float64(tally.midtable) / nSims,
			RelegationProb: float64(tally.relegation) / nSims,
			AvgRank:        float64(tally.rankSum) / nSims,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].AvgRank != summaries[j].AvgRank {
			return summaries[i].AvgRank < summaries[j].AvgRank
		}
		return summaries[i].Team < summaries[j].Team
	})

	return summaries, nil
}
