package db

import (
	"context"

	"github.com/santiagoventura/predraft/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	ListPlayers(ctx context.Context) ([]model.Player, error)

	// Projections are keyed by (player, season, source). SaveProjection
	// is an upsert: re-importing the same projection overwrites it.
	SaveProjection(ctx context.Context, proj *model.Projection) error
	GetProjection(ctx context.Context, playerID string, season int, source string) (*model.Projection, error)
	ListProjections(ctx context.Context, season int, source string) ([]model.Projection, error)

	SaveRanking(ctx context.Context, r *model.Ranking) error
	GetRanking(ctx context.Context, playerID string, season int, source string) (*model.Ranking, error)
	GetRankings(ctx context.Context, season int, source string) ([]model.Ranking, error)
	// BestRankings returns each player's lowest overall rank for the
	// season across all ranking sources.
	BestRankings(ctx context.Context, season int) ([]model.Ranking, error)

	AddLeague(ctx context.Context, league *model.League) error
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	SaveScoringCategories(ctx context.Context, leagueID int32, cats []model.ScoringCategory) error
	// GetScoringCategories always reads from the database. Category
	// changes must be visible to the very next score calculation, so
	// results are never cached.
	GetScoringCategories(ctx context.Context, leagueID int32, playerType string) ([]model.ScoringCategory, error)

	// UpsertPlayerScore overwrites any existing score for the same
	// (player, league, season, source). Recalculating is idempotent.
	UpsertPlayerScore(ctx context.Context, score *model.PlayerScore) error
	GetPlayerScores(ctx context.Context, leagueID int32, season int, source string) ([]model.PlayerScore, error)
	TopPlayerScores(ctx context.Context, leagueID int32, season int, source string, limit int) ([]model.PlayerScore, error)
	// SeasonPlayerScores is one score per player for the season, latest
	// calculation winning when several sources were scored.
	SeasonPlayerScores(ctx context.Context, leagueID int32, season int) ([]model.PlayerScore, error)

	// CreateDraft inserts the draft and every pick slot for all rounds in
	// snake order in a single transaction.
	CreateDraft(ctx context.Context, league *model.League, name string) (*model.Draft, error)
	GetDraft(ctx context.Context, id int32) (*model.Draft, error)
	GetDraftPicks(ctx context.Context, draftID int32) ([]model.DraftPick, error)
	GetCurrentPick(ctx context.Context, draftID int32) (*model.DraftPick, error)
	StartDraft(ctx context.Context, draftID int32) (*model.Draft, error)
	SetDraftStatus(ctx context.Context, draftID int32, status model.DraftStatus) error

	// MakePick records a player on the current pick, assigns the roster
	// slot, and advances the cursor, all in one transaction. A nil slot
	// means resolve one from the team's open slots.
	MakePick(ctx context.Context, draftID int32, playerID string, slot *model.RosterSlot, advisorContext []byte) (*model.DraftPick, error)
	// RevertLastPick undoes the most recent made pick and moves the
	// cursor back to it, reopening a completed draft if necessary.
	RevertLastPick(ctx context.Context, draftID int32) (*model.DraftPick, error)

	GetTeamRoster(ctx context.Context, draftID, teamID int32) ([]model.RosterEntry, error)
	// GetAvailablePlayers returns every player not attached to a pick in
	// this draft.
	GetAvailablePlayers(ctx context.Context, draftID int32) ([]model.Player, error)
}
