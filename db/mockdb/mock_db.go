package mockdb

import (
	"context"

	"github.com/santiagoventura/predraft/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}

	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	args := db.Called(ctx)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (db *DB) SaveProjection(ctx context.Context, proj *model.Projection) error {
	args := db.Called(ctx, proj)
	return args.Error(0)
}

func (db *DB) GetProjection(ctx context.Context, playerID string, season int, source string) (*model.Projection, error) {
	args := db.Called(ctx, playerID, season, source)

	var p *model.Projection
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Projection)
	}
	return p, args.Error(1)
}

func (db *DB) ListProjections(ctx context.Context, season int, source string) ([]model.Projection, error) {
	args := db.Called(ctx, season, source)

	var r []model.Projection
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Projection)
	}
	return r, args.Error(1)
}

func (db *DB) SaveRanking(ctx context.Context, r *model.Ranking) error {
	args := db.Called(ctx, r)
	return args.Error(0)
}

func (db *DB) GetRanking(ctx context.Context, playerID string, season int, source string) (*model.Ranking, error) {
	args := db.Called(ctx, playerID, season, source)

	var r *model.Ranking
	if args.Get(0) != nil {
		r = args.Get(0).(*model.Ranking)
	}
	return r, args.Error(1)
}

func (db *DB) BestRankings(ctx context.Context, season int) ([]model.Ranking, error) {
	args := db.Called(ctx, season)

	var r []model.Ranking
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Ranking)
	}
	return r, args.Error(1)
}

func (db *DB) GetRankings(ctx context.Context, season int, source string) ([]model.Ranking, error) {
	args := db.Called(ctx, season, source)

	var r []model.Ranking
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Ranking)
	}
	return r, args.Error(1)
}

func (db *DB) AddLeague(ctx context.Context, league *model.League) error {
	args := db.Called(ctx, league)
	return args.Error(0)
}

func (db *DB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := db.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (db *DB) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := db.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (db *DB) SaveScoringCategories(ctx context.Context, leagueID int32, cats []model.ScoringCategory) error {
	args := db.Called(ctx, leagueID, cats)
	return args.Error(0)
}

func (db *DB) GetScoringCategories(ctx context.Context, leagueID int32, playerType string) ([]model.ScoringCategory, error) {
	args := db.Called(ctx, leagueID, playerType)

	var r []model.ScoringCategory
	if args.Get(0) != nil {
		r = args.Get(0).([]model.ScoringCategory)
	}
	return r, args.Error(1)
}

func (db *DB) UpsertPlayerScore(ctx context.Context, score *model.PlayerScore) error {
	args := db.Called(ctx, score)
	return args.Error(0)
}

func (db *DB) GetPlayerScores(ctx context.Context, leagueID int32, season int, source string) ([]model.PlayerScore, error) {
	args := db.Called(ctx, leagueID, season, source)

	var r []model.PlayerScore
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerScore)
	}
	return r, args.Error(1)
}

func (db *DB) TopPlayerScores(ctx context.Context, leagueID int32, season int, source string, limit int) ([]model.PlayerScore, error) {
	args := db.Called(ctx, leagueID, season, source, limit)

	var r []model.PlayerScore
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerScore)
	}
	return r, args.Error(1)
}

func (db *DB) SeasonPlayerScores(ctx context.Context, leagueID int32, season int) ([]model.PlayerScore, error) {
	args := db.Called(ctx, leagueID, season)

	var r []model.PlayerScore
	if args.Get(0) != nil {
		r = args.Get(0).([]model.PlayerScore)
	}
	return r, args.Error(1)
}

func (db *DB) CreateDraft(ctx context.Context, league *model.League, name string) (*model.Draft, error) {
	args := db.Called(ctx, league, name)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (db *DB) GetDraft(ctx context.Context, id int32) (*model.Draft, error) {
	args := db.Called(ctx, id)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (db *DB) GetDraftPicks(ctx context.Context, draftID int32) ([]model.DraftPick, error) {
	args := db.Called(ctx, draftID)

	var r []model.DraftPick
	if args.Get(0) != nil {
		r = args.Get(0).([]model.DraftPick)
	}
	return r, args.Error(1)
}

func (db *DB) GetCurrentPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	args := db.Called(ctx, draftID)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) StartDraft(ctx context.Context, draftID int32) (*model.Draft, error) {
	args := db.Called(ctx, draftID)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (db *DB) SetDraftStatus(ctx context.Context, draftID int32, status model.DraftStatus) error {
	args := db.Called(ctx, draftID, status)
	return args.Error(0)
}

func (db *DB) MakePick(ctx context.Context, draftID int32, playerID string, slot *model.RosterSlot, advisorContext []byte) (*model.DraftPick, error) {
	args := db.Called(ctx, draftID, playerID, slot, advisorContext)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) RevertLastPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	args := db.Called(ctx, draftID)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (db *DB) GetTeamRoster(ctx context.Context, draftID, teamID int32) ([]model.RosterEntry, error) {
	args := db.Called(ctx, draftID, teamID)

	var r []model.RosterEntry
	if args.Get(0) != nil {
		r = args.Get(0).([]model.RosterEntry)
	}
	return r, args.Error(1)
}

func (db *DB) GetAvailablePlayers(ctx context.Context, draftID int32) ([]model.Player, error) {
	args := db.Called(ctx, draftID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}
