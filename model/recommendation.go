package model

// Recommendation is one entry of a ranked candidate list for the team
// on the clock. The order recommendations arrive in is the order they
// are presented in: the advisor weighs strategy, not just raw points,
// so re-sorting by ProjectedPoints would throw that judgement away.
type Recommendation struct {
	PlayerID        string   `json:"player_id"`
	PlayerName      string   `json:"player_name"`
	PlayerTeam      string   `json:"player_team"`
	Positions       string   `json:"positions"`
	IsPitcher       bool     `json:"is_pitcher"`
	Rank            int      `json:"rank"`
	ADP             *float64 `json:"adp,omitempty"`
	ProjectedPoints float64  `json:"projected_points"`
	Explanation     string   `json:"explanation"`
}
