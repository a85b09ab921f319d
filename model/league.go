package model

type League struct {
	ID        int32
	Name      string
	NumTeams  int
	Positions []RosterPosition
	Teams     []Team
}

// RosterPosition is one line of a league's roster template: a position
// code and how many concrete slots of it each team fills.
type RosterPosition struct {
	Code         Position
	SlotCount    int
	DisplayOrder int
}

// TotalRosterSpots is the number of slots each team fills, which is also
// the number of draft rounds.
func (l *League) TotalRosterSpots() int {
	total := 0
	for _, p := range l.Positions {
		total += p.SlotCount
	}
	return total
}

func (l *League) SlotCount(pos Position) int {
	for _, p := range l.Positions {
		if p.Code == pos {
			return p.SlotCount
		}
	}
	return 0
}

// DefaultRosterConfig is the standard points-league roster used when a
// league is created without an explicit template.
func DefaultRosterConfig() []RosterPosition {
	return []RosterPosition{
		{Code: POS_C, SlotCount: 1, DisplayOrder: 1},
		{Code: POS_1B, SlotCount: 1, DisplayOrder: 2},
		{Code: POS_2B, SlotCount: 1, DisplayOrder: 3},
		{Code: POS_SS, SlotCount: 1, DisplayOrder: 4},
		{Code: POS_3B, SlotCount: 1, DisplayOrder: 5},
		{Code: POS_OF, SlotCount: 3, DisplayOrder: 6},
		{Code: POS_UTIL, SlotCount: 3, DisplayOrder: 7},
		{Code: POS_P, SlotCount: 11, DisplayOrder: 8},
	}
}

type Team struct {
	ID        int32
	LeagueID  int32
	Name      string
	DraftSlot int // unique within the league, in [1, NumTeams]
}

const (
	PlayerTypeBatter  = "batter"
	PlayerTypePitcher = "pitcher"
)

// ScoringCategory converts one projected stat into fantasy points.
// Unique per (league, player type, stat code).
type ScoringCategory struct {
	LeagueID      int32
	PlayerType    string
	StatCode      string
	StatName      string
	PointsPerUnit float64
	DisplayOrder  int
	Active        bool
}
