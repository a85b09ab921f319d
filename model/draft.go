package model

import (
	"errors"
	"time"
)

type DraftStatus string

const (
	DraftStatusSetup      DraftStatus = "setup"
	DraftStatusInProgress DraftStatus = "in_progress"
	DraftStatusPaused     DraftStatus = "paused"
	DraftStatusCompleted  DraftStatus = "completed"
)

const DraftTypeSnake = "snake"

// The expected, user-correctable failure modes of the draft state
// machine and the roster resolver. They are surfaced to the caller
// verbatim and never leave partial state behind.
var (
	ErrNoCurrentPick          = errors.New("no current pick")
	ErrPickAlreadyMade        = errors.New("this pick has already been made")
	ErrPlayerAlreadyDrafted   = errors.New("player has already been drafted")
	ErrNothingToRevert        = errors.New("no picks to revert")
	ErrNoAssignableSlot       = errors.New("no available roster position for this player")
	ErrNoCategoriesConfigured = errors.New("league has no scoring categories defined")
	ErrDraftNotInProgress     = errors.New("draft is not in progress")
	ErrDraftAlreadyStarted    = errors.New("draft has already been started")
)

type Draft struct {
	ID        int32
	LeagueID  int32
	Name      string
	Status    DraftStatus
	DraftType string

	// The cursor. CurrentPickInRound restarts at 1 each round; once
	// CurrentRound passes TotalRounds the draft is completed and the
	// cursor points past the end.
	CurrentRound       int
	CurrentPickInRound int

	CurrentTeamID *int32
	TotalRounds   int // fixed at creation from the league's roster template
	StartedAt     *time.Time
	CompletedAt   *time.Time
}

func (d *Draft) IsComplete() bool {
	return d.Status == DraftStatusCompleted
}

func (d *Draft) IsInProgress() bool {
	return d.Status == DraftStatusInProgress
}

// DraftPick is one pick slot. Round, PickInRound, OverallPick and TeamID
// are fixed when the draft is initialized; the remaining fields are nil
// until the pick is made and are cleared again when it is reverted.
type DraftPick struct {
	ID          int32
	DraftID     int32
	Round       int
	PickInRound int
	OverallPick int
	TeamID      int32

	PlayerID       *string
	PositionFilled *RosterSlot
	// Opaque advisor payload recorded with the pick, e.g. the candidate
	// list and explanation the advisor returned. Never interpreted here.
	AdvisorContext []byte
	PickedAt       *time.Time
}

func (p *DraftPick) Picked() bool {
	return p.PlayerID != nil
}

// RosterEntry assigns a drafted player to one concrete slot on a team.
// Unique per (draft, team, slot); deleted when its pick is reverted.
type RosterEntry struct {
	ID          int32
	DraftID     int32
	TeamID      int32
	PlayerID    string
	Slot        RosterSlot
	DraftPickID int32

	// Player is filled in when the roster is loaded for display/needs
	// calculations. PlayerName is always set.
	PlayerName string
}

// DraftSummary is a point-in-time progress report for a draft.
type DraftSummary struct {
	TotalPicks        int
	CompletedPicks    int
	RemainingPicks    int
	PitchersPicked    int
	HittersPicked     int
	PitcherPercentage float64
	HitterPercentage  float64
}

// SnakeTeamOrder returns the pick order for one round of a snake draft:
// the teams in slot order for odd rounds, reversed for even rounds.
// teams must already be sorted by draft slot ascending.
func SnakeTeamOrder(teams []Team, round int) []Team {
	if round%2 == 1 {
		return teams
	}

	reversed := make([]Team, len(teams))
	for i, t := range teams {
		reversed[len(teams)-1-i] = t
	}
	return reversed
}

// PicksUntilNextTurn returns how many picks from the team's current one
// until it is on the clock again, counting that next pick itself.
// Standard snake arithmetic: picks remaining in the current round plus
// picks before the team's position in the next round. Because the order
// reverses, those two counts are equal.
func PicksUntilNextTurn(numTeams, round, draftSlot int) int {
	var picksLeftInRound int
	if round%2 == 1 {
		// Odd round: the team picks at its slot position.
		picksLeftInRound = numTeams - draftSlot
	} else {
		// Even round: the team picks at position numTeams-draftSlot+1.
		picksLeftInRound = draftSlot - 1
	}
	return 2*picksLeftInRound + 1
}
