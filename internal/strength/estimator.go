// Package strength derives per-team attack and defense ratings from
// aggregated expected-goals data. Ratings are dimensionless multipliers
// normalized against the league average, so a neutral team is exactly 1.0
// on both sides of the ball.
package strength

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

// NeutralStrength substitutes for any team whose xG inputs are missing or
// non-finite, so a Poisson rate can never pick up a NaN.
const NeutralStrength = 1.0

// League is the augmented strength table the simulator runs on. Teams keep
// the input row order; that order is the deterministic tie-break fallback.
type League struct {
	Teams   []types.TeamStrength
	MeanXG  float64
	MeanXGA float64

	index map[string]int
}

// Estimate computes league-wide mean xG / xGA over teams with usable values
// and normalizes every team against those means. It is a pure function of
// the input table.
func Estimate(stats []types.TeamStats) (*League, error) {
	if len(stats) == 0 {
		return nil, fmt.Errorf("strength estimation: empty team stats table")
	}

	meanXG := finiteMean(stats, func(ts types.TeamStats) float64 { return ts.AvgXG })
	if !(meanXG > 0) || math.IsInf(meanXG, 0) {
		return nil, &types.MissingFeatureError{
			Column: "avg_xG",
			Reason: "no usable values in any row, league mean is undefined",
		}
	}
	meanXGA := finiteMean(stats, func(ts types.TeamStats) float64 { return ts.AvgXGA })
	if !(meanXGA > 0) || math.IsInf(meanXGA, 0) {
		return nil, &types.MissingFeatureError{
			Column: "avg_xGA",
			Reason: "no usable values in any row, league mean is undefined",
		}
	}

	league := &League{
		Teams:   make([]types.TeamStrength, len(stats)),
		MeanXG:  meanXG,
		MeanXGA: meanXGA,
		index:   make(map[string]int, len(stats)),
	}

	for i, ts := range stats {
		attack := NeutralStrength
		if usable(ts.AvgXG) {
			attack = ts.AvgXG / meanXG
		}
		defense := NeutralStrength
		if usable(ts.AvgXGA) {
			defense = meanXGA / ts.AvgXGA
		}

		// Post-condition of the neutral-default rule. A violation here is a
		// bug in the estimator, not bad input.
		if !usable(attack) || !usable(defense) {
			return nil, fmt.Errorf("strength estimation: team %q produced non-finite ratings (attack=%v defense=%v)",
				ts.Team, attack, defense)
		}

		league.Teams[i] = types.TeamStrength{
			Team:    ts.Team,
			Attack:  attack,
			Defense: defense,
		}
		league.index[ts.Team] = i
	}

	return league, nil
}

// Strength looks up one team's ratings by name.
func (l *League) Strength(team string) (types.TeamStrength, bool) {
	idx, ok := l.index[team]
	if !ok {
		return types.TeamStrength{}, false
	}
	return l.Teams[idx], true
}

func (l *League) TeamCount() int {
	return len(l.Teams)
}

// finiteMean averages only the rows whose value is finite and positive,
// matching the "mean over teams with non-missing values" contract.
func finiteMean(stats []types.TeamStats, get func(types.TeamStats) float64) float64 {
	values := make([]float64, 0, len(stats))
	for _, ts := range stats {
		if v := get(ts); usable(v) {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}
