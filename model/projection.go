package model

import "time"

// Projection is a seasonal statistical forecast for one player from one
// named source. At most one projection exists per (player, season,
// source). Every stat is nullable: a nil field means the source did not
// publish that stat, which is different from projecting zero.
type Projection struct {
	PlayerID string
	Season   int
	Source   string

	// Batter stats
	PA      *float64
	AB      *float64
	H       *float64
	Doubles *float64
	Triples *float64
	HR      *float64
	R       *float64
	RBI     *float64
	SB      *float64
	CS      *float64
	HBP     *float64
	AVG     *float64
	OBP     *float64
	SLG     *float64
	OPS     *float64

	// Pitcher stats. K and BB are shared with the batter side: the
	// player type decides how they are read.
	IP   *float64
	W    *float64
	L    *float64
	SV   *float64
	HLD  *float64
	K    *float64
	BB   *float64
	ER   *float64
	QS   *float64
	CG   *float64
	SHO  *float64
	ERA  *float64
	WHIP *float64

	ImportedAt time.Time
}

// CategoryPoints is one line of a score breakdown: the projected stat
// value, the league's rate for it, and the points it contributed.
type CategoryPoints struct {
	StatName      string  `json:"stat_name"`
	Value         float64 `json:"value"`
	PointsPerUnit float64 `json:"points_per_unit"`
	Points        float64 `json:"points"`
}

// PlayerScore is a player's projection converted into one league's
// fantasy points. Keyed by (player, league, season, source);
// recalculation overwrites, never duplicates.
type PlayerScore struct {
	PlayerID     string
	LeagueID     int32
	Season       int
	Source       string
	TotalPoints  float64
	Breakdown    map[string]CategoryPoints
	CalculatedAt time.Time

	// Name is filled in when scores are loaded joined with players, for
	// ranked listings.
	Name      string
	IsPitcher bool
}
