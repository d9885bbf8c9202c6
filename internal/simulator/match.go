package simulator

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/MRuhan17/premier-league-simulator/internal/types"
)

// DefaultHomeAdvantage is the multiplier applied to the home side's
// expected goals. 1.15 matches the long-run home uplift observed in
// Premier League xG data.
const DefaultHomeAdvantage = 1.15

// simulateMatch draws one scoreline from the two-independent-Poisson goal
// model:
//
//	lambda_home = homeAdvantage * home.Attack * away.Defense * leagueMeanXG
//	lambda_away = away.Attack * home.Defense * leagueMeanXG
//
// Goals for each side are independent given the rates; no correlation term
// is modeled. Points follow the standard 3/1/0 rule.
func simulateMatch(src rand.Source, home, away types.TeamStrength, leagueMeanXG, homeAdvantage float64) (types.MatchResult, error) {
	lambdaHome := homeAdvantage * home.Attack * away.Defense * leagueMeanXG
	lambdaAway := away.Attack * home.Defense * leagueMeanXG

	// Strength estimation guarantees finite positive ratings, so a bad rate
	// here is an internal-consistency failure, never a recoverable input
	// problem.
	if !validRate(lambdaHome) || !validRate(lambdaAway) {
		return types.MatchResult{}, fmt.Errorf(
			"internal consistency: invalid Poisson rates for %s vs %s (home=%v away=%v)",
			home.Team, away.Team, lambdaHome, lambdaAway)
	}

	homeGoals := int(distuv.Poisson{Lambda: lambdaHome, Src: src}.Rand())
	awayGoals := int(distuv.Poisson{Lambda: lambdaAway, Src: src}.Rand())

	result := types.MatchResult{
		HomeTeam:  home.Team,
		AwayTeam:  away.Team,
		HomeGoals: homeGoals,
		AwayGoals: awayGoals,
	}
	switch {
	case homeGoals > awayGoals:
		result.HomePoints = 3
	case homeGoals < awayGoals:
		result.AwayPoints = 3
	default:
		result.HomePoints = 1
		result.AwayPoints = 1
	}

	return result, nil
}

func validRate(lambda float64) bool {
	return !math.IsNaN(lambda) && !math.IsInf(lambda, 0) && lambda > 0
}
