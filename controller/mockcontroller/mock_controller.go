package mockcontroller

import (
	"context"

	"github.com/santiagoventura/predraft/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var l *model.League
	if args.Get(0) != nil {
		l = args.Get(0).(*model.League)
	}
	return l, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var r []model.League
	if args.Get(0) != nil {
		r = args.Get(0).([]model.League)
	}
	return r, args.Error(1)
}

func (c *C) AddLeague(ctx context.Context, league *model.League) error {
	args := c.Called(ctx, league)
	return args.Error(0)
}

func (c *C) SaveScoringCategories(ctx context.Context, leagueID int32, cats []model.ScoringCategory) error {
	args := c.Called(ctx, leagueID, cats)
	return args.Error(0)
}

func (c *C) InitializeDraft(ctx context.Context, leagueID int32, name string) (*model.Draft, error) {
	args := c.Called(ctx, leagueID, name)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (c *C) StartDraft(ctx context.Context, draftID int32) (*model.Draft, error) {
	args := c.Called(ctx, draftID)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (c *C) PauseDraft(ctx context.Context, draftID int32) error {
	args := c.Called(ctx, draftID)
	return args.Error(0)
}

func (c *C) ResumeDraft(ctx context.Context, draftID int32) error {
	args := c.Called(ctx, draftID)
	return args.Error(0)
}

func (c *C) GetDraft(ctx context.Context, draftID int32) (*model.Draft, error) {
	args := c.Called(ctx, draftID)

	var d *model.Draft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Draft)
	}
	return d, args.Error(1)
}

func (c *C) CurrentPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	args := c.Called(ctx, draftID)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (c *C) MakePick(ctx context.Context, draftID int32, playerID, slotLabel string, advisorContext []byte) (*model.DraftPick, error) {
	args := c.Called(ctx, draftID, playerID, slotLabel, advisorContext)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (c *C) RevertLastPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	args := c.Called(ctx, draftID)

	var p *model.DraftPick
	if args.Get(0) != nil {
		p = args.Get(0).(*model.DraftPick)
	}
	return p, args.Error(1)
}

func (c *C) TeamNeeds(ctx context.Context, draftID, teamID int32) (map[model.Position]int, error) {
	args := c.Called(ctx, draftID, teamID)

	var needs map[model.Position]int
	if args.Get(0) != nil {
		needs = args.Get(0).(map[model.Position]int)
	}
	return needs, args.Error(1)
}

func (c *C) EligiblePlayers(ctx context.Context, draftID, teamID int32) ([]model.Player, error) {
	args := c.Called(ctx, draftID, teamID)

	var r []model.Player
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Player)
	}
	return r, args.Error(1)
}

func (c *C) DraftSummary(ctx context.Context, draftID int32) (*model.DraftSummary, error) {
	args := c.Called(ctx, draftID)

	var s *model.DraftSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.DraftSummary)
	}
	return s, args.Error(1)
}

func (c *C) CalculatePlayerScore(ctx context.Context, player *model.Player, leagueID int32, proj *model.Projection, batterCats, pitcherCats []model.ScoringCategory) (*model.PlayerScore, error) {
	args := c.Called(ctx, player, leagueID, proj, batterCats, pitcherCats)

	var s *model.PlayerScore
	if args.Get(0) != nil {
		s = args.Get(0).(*model.PlayerScore)
	}
	return s, args.Error(1)
}

func (c *C) CalculateLeagueScores(ctx context.Context, leagueID int32, season int, source string, progress func(pct int, msg string)) (int, error) {
	args := c.Called(ctx, leagueID, season, source, progress)
	return args.Int(0), args.Error(1)
}

func (c *C) GetRecommendations(ctx context.Context, draftID, teamID int32, n int) ([]model.Recommendation, error) {
	args := c.Called(ctx, draftID, teamID, n)

	var r []model.Recommendation
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Recommendation)
	}
	return r, args.Error(1)
}

func (c *C) SimulateRounds(ctx context.Context, draftID int32, stopRound int, progress func(pick *model.DraftPick, playerName string)) (int, error) {
	args := c.Called(ctx, draftID, stopRound, progress)
	return args.Int(0), args.Error(1)
}
