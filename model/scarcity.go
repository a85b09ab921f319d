package model

type ScarcityLevel string

const (
	ScarcityCritical ScarcityLevel = "CRITICAL"
	ScarcityHigh     ScarcityLevel = "HIGH"
	ScarcityMedium   ScarcityLevel = "MEDIUM"
	ScarcityLow      ScarcityLevel = "LOW"
)

// RatedPlayer is a draft-pool entry with its market and scoring data
// attached: the input to scarcity analysis and advisor requests.
type RatedPlayer struct {
	PlayerID        string     `json:"id"`
	Name            string     `json:"name"`
	Team            string     `json:"team"`
	Positions       []Position `json:"positions"`
	PrimaryPosition Position   `json:"primary_position"`
	IsPitcher       bool       `json:"is_pitcher"`
	Rank            *int32     `json:"rank,omitempty"`
	ADP             *float64   `json:"adp,omitempty"`
	ProjectedPoints float64    `json:"projected_points"`
}

// ScarcityReport describes how thin one position is in the remaining
// player pool. TierDropPoints is the gap between the best and
// second-best player at the position: a big gap means missing the best
// player is expensive.
type ScarcityReport struct {
	Level            ScarcityLevel   `json:"scarcity_level"`
	SlotsNeeded      int             `json:"slots_needed"`
	PlayersAvailable int             `json:"players_available"`
	TierDropPoints   float64         `json:"tier_drop_points"`
	AvailabilityNote string          `json:"availability_prediction"`
	Top              []ScarcityEntry `json:"top_3"`
}

// ScarcityEntry is one of the best remaining players at a position.
type ScarcityEntry struct {
	Name   string   `json:"name"`
	Points float64  `json:"points"`
	ADP    *float64 `json:"adp,omitempty"`
}
