package controller

import (
	"context"

	"github.com/itbasis/go-clock"
	"github.com/santiagoventura/predraft/advisor"
	"github.com/santiagoventura/predraft/db"
	"github.com/santiagoventura/predraft/model"
)

// C encapsulates business logic without worrying about any presentation layers
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	AddLeague(ctx context.Context, league *model.League) error
	SaveScoringCategories(ctx context.Context, leagueID int32, cats []model.ScoringCategory) error

	// InitializeDraft creates a draft for the league with one pick slot
	// per roster spot per team. An empty name gets a timestamped default.
	InitializeDraft(ctx context.Context, leagueID int32, name string) (*model.Draft, error)
	StartDraft(ctx context.Context, draftID int32) (*model.Draft, error)
	PauseDraft(ctx context.Context, draftID int32) error
	ResumeDraft(ctx context.Context, draftID int32) error
	GetDraft(ctx context.Context, draftID int32) (*model.Draft, error)
	CurrentPick(ctx context.Context, draftID int32) (*model.DraftPick, error)

	// MakePick records a player on the current pick. slotLabel is
	// optional: when empty the slot is resolved from the team's open
	// roster spots.
	MakePick(ctx context.Context, draftID int32, playerID, slotLabel string, advisorContext []byte) (*model.DraftPick, error)
	RevertLastPick(ctx context.Context, draftID int32) (*model.DraftPick, error)

	// TeamNeeds returns, per position code, how many slots the team
	// still has to fill. Positions with zero need are omitted.
	TeamNeeds(ctx context.Context, draftID, teamID int32) (map[model.Position]int, error)
	// EligiblePlayers is the available pool filtered to players who can
	// fill at least one needed position for the team.
	EligiblePlayers(ctx context.Context, draftID, teamID int32) ([]model.Player, error)
	DraftSummary(ctx context.Context, draftID int32) (*model.DraftSummary, error)

	CalculatePlayerScore(ctx context.Context, player *model.Player, leagueID int32, proj *model.Projection, batterCats, pitcherCats []model.ScoringCategory) (*model.PlayerScore, error)
	// CalculateLeagueScores scores every player that has a projection
	// for (season, source) and reports progress through the callback.
	// Returns the number of players scored.
	CalculateLeagueScores(ctx context.Context, leagueID int32, season int, source string, progress func(pct int, msg string)) (int, error)

	// GetRecommendations asks the advisor for a ranked candidate list
	// for the team on the clock, falling back to best-available-points
	// when the advisor is unreachable. The advisor's ordering is
	// returned as-is.
	GetRecommendations(ctx context.Context, draftID, teamID int32, n int) ([]model.Recommendation, error)
	// SimulateRounds drives the draft with top recommendations until
	// stopRound is finished.
	SimulateRounds(ctx context.Context, draftID int32, stopRound int, progress func(pick *model.DraftPick, playerName string)) (int, error)
}

type controller struct {
	clock   clock.Clock
	advisor advisor.Client
	db      db.DB
}

func New(clock clock.Clock, advisor advisor.Client, db db.DB) (C, error) {
	c := &controller{
		clock:   clock,
		advisor: advisor,
		db:      db,
	}
	return c, nil
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	return c.db.GetLeague(ctx, id)
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) AddLeague(ctx context.Context, league *model.League) error {
	return c.db.AddLeague(ctx, league)
}

func (c *controller) SaveScoringCategories(ctx context.Context, leagueID int32, cats []model.ScoringCategory) error {
	return c.db.SaveScoringCategories(ctx, leagueID, cats)
}
