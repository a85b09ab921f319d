package model

import (
	"strings"
	"time"
)

type Player struct {
	ID              string
	Name            string
	Team            *MLBTeam
	Positions       []Position
	PrimaryPosition Position
	IsPitcher       bool
	Created         time.Time
	Updated         time.Time
}

// IsEligibleFor reports whether the player can fill a slot with the
// given position code. Any batter is eligible for UTIL and any pitcher
// for P; everything else is strict membership in the player's position
// list.
func (p *Player) IsEligibleFor(pos Position) bool {
	if pos == POS_UTIL && !p.IsPitcher {
		return true
	}

	if pos == POS_P && p.IsPitcher {
		return true
	}

	for _, pp := range p.Positions {
		if pp == pos {
			return true
		}
	}
	return false
}

// PositionsLabel renders the eligibility list the way it is stored and
// displayed, e.g. "1B,OF".
func (p *Player) PositionsLabel() string {
	parts := make([]string, 0, len(p.Positions))
	for _, pos := range p.Positions {
		parts = append(parts, string(pos))
	}
	return strings.Join(parts, ",")
}

func (p *Player) FormattedCreatedTime() string {
	if p.Created.IsZero() {
		return "unknown"
	}
	return p.Created.Format(time.DateTime)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}

// Ranking is an externally supplied market view of a player for a
// season: an overall rank and an average draft position. ADP feeds the
// scarcity analysis; it is never derived locally.
type Ranking struct {
	PlayerID    string
	Season      int
	Source      string
	OverallRank int32
	ADP         float64
}

// Take a full name, like "Luis Robert Jr." and return "Luis Robert".
func TrimNameSuffix(fullName string) string {
	suffixList := []string{
		"Jr.",
		"Sr.",
		"II",
		"IV",
	}

	for _, s := range suffixList {
		fullName = strings.TrimSuffix(fullName, s)
	}

	return strings.TrimSpace(fullName)
}
