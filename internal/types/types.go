package types

import (
	"github.com/google/uuid"
)

// TeamStats is one row of the team-strength input table. AvgXG and AvgXGA
// are NaN when the source cell was blank or unparseable; the strength
// estimator substitutes a neutral rating for those teams.
type TeamStats struct {
	Team   string  `json:"team"`
	AvgXG  float64 `json:"avg_xg"`
	AvgXGA float64 `json:"avg_xga"`
	Points float64 `json:"points"` // pass-through, sanity data only
}

// TeamStrength holds the normalized ratings derived from TeamStats.
// Both multipliers are finite and > 0 once estimation has run.
type TeamStrength struct {
	Team    string  `json:"team"`
	Attack  float64 `json:"attack_strength"`
	Defense float64 `json:"defense_strength"`
}

// Fixture is a single scheduled match. Home != Away always.
type Fixture struct {
	Home string `json:"home_team"`
	Away string `json:"away_team"`
}

// MatchResult is one simulated scoreline with points already awarded.
type MatchResult struct {
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	HomeGoals  int    `json:"home_goals"`
	AwayGoals  int    `json:"away_goals"`
	HomePoints int    `json:"home_points"`
	AwayPoints int    `json:"away_points"`
}

// TeamStanding is one team's line in a simulated season table.
type TeamStanding struct {
	Team         string `json:"team"`
	Points       int    `json:"points"`
	GoalsScored  int    `json:"goals_scored"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Rank         int    `json:"rank"` // 1 = champion, distinct within a season
}

// SeasonStandings is the final table of one simulated season.
type SeasonStandings struct {
	SimulationID int            `json:"simulation_id"`
	Table        []TeamStanding `json:"table"`
}

// SimulationBatch collects every season of one Monte Carlo run. Seasons are
// ordered by SimulationID and the batch is immutable once the run completes;
// a run that is cancelled or errors produces no batch at all.
type SimulationBatch struct {
	BatchID uuid.UUID         `json:"batch_id"`
	NSims   int               `json:"n_sims"`
	Seasons []SeasonStandings `json:"seasons"`
}

// TeamSummary is one team's line in the final probability table.
// Probabilities are empirical frequencies over the batch, each in [0,1].
type TeamSummary struct {
	Team           string  `json:"team"`
	TitleProb      float64 `json:"title_prob"`
	Top4Prob       float64 `json:"top4_prob"`
	MidtableProb   float64 `json:"midtable_prob"`
	RelegationProb float64 `json:"relegation_prob"`
	AvgRank        float64 `json:"avg_rank"`
}
