package db

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/santiagoventura/predraft/containers"
	"github.com/santiagoventura/predraft/model"
)

var (
	// A test global db instance to use for all of the tests instead of setting up a new one each time.
	testDB DB

	// a counter to generate new player ids for each test. To help keep them separated.
	idCtr = int32(0)
)

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	container := containers.NewDBContainer()

	clock := clock.New()

	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if container != nil {
				container.Shutdown()
			}
			fmt.Println("panic")
		}
	}()

	var err error
	testDB, err = New(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		fmt.Printf("error connecting to db: %v", err)
		os.Exit(-1)
	}

	code := m.Run()
	container.Shutdown()
	os.Exit(code)
}

func TestDB_playerSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	p := getBatter("Bobby Witt Jr.", model.TEAM_KCR, model.POS_SS)

	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)

	res, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error retreiving player: %v", err)

	assertEquals(t, "ID", p.ID, res.ID)
	assertEquals(t, "Name", p.Name, res.Name)
	assertEquals(t, "PositionsLabel", p.PositionsLabel(), res.PositionsLabel())
	assertEquals(t, "PrimaryPosition", p.PrimaryPosition, res.PrimaryPosition)
	assertEquals(t, "IsPitcher", p.IsPitcher, res.IsPitcher)
	assertTrue(t, "Team", p.Team.Equals(res.Team))

	if res.Created.IsZero() {
		t.Errorf("expected res created time to not be zero")
	}

	// Update the eligibility list and make sure it persists.
	p.Positions = []model.Position{model.POS_SS, model.POS_OF}
	err = testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player after update: %v", err)

	res2, err := testDB.GetPlayer(ctx, p.ID)
	assertFatalf(t, err == nil, "error getting updated player: %v", err)
	assertEquals(t, "PositionsLabel", "SS,OF", res2.PositionsLabel())
	if res2.Updated.IsZero() {
		t.Errorf("expected res2 updated time to not be zero")
	}

	// Lookup a player that doesn't exist
	res3, err := testDB.GetPlayer(ctx, "xx-none")
	assertFatalf(t, err != nil, "should have had an error looking up missing player")
	assertEquals(t, "error type", true, errors.Is(err, ErrPlayerNotFound))
	if res3 != nil {
		t.Errorf("expected res3 to be nil, but was %v", res3)
	}
}

func TestDB_projectionUpsert(t *testing.T) {
	ctx := context.Background()
	p := getBatter("Juan Soto", model.TEAM_NYM, model.POS_OF)

	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)

	proj := &model.Projection{
		PlayerID: p.ID,
		Season:   2026,
		Source:   "steamer",
		H:        f(150),
		Doubles:  f(30),
		HR:       f(35),
	}
	err = testDB.SaveProjection(ctx, proj)
	assertFatalf(t, err == nil, "error saving projection: %v", err)

	res, err := testDB.GetProjection(ctx, p.ID, 2026, "steamer")
	assertFatalf(t, err == nil, "error getting projection: %v", err)
	assertEquals(t, "H", *proj.H, *res.H)
	assertEquals(t, "HR", *proj.HR, *res.HR)
	if res.Triples != nil {
		t.Errorf("expected Triples to be nil, got %v", *res.Triples)
	}
	if res.ImportedAt.IsZero() {
		t.Errorf("expected ImportedAt to be set")
	}

	// Re-importing overwrites, never duplicates.
	proj.HR = f(40)
	err = testDB.SaveProjection(ctx, proj)
	assertFatalf(t, err == nil, "error upserting projection: %v", err)

	list, err := testDB.ListProjections(ctx, 2026, "steamer")
	assertFatalf(t, err == nil, "error listing projections: %v", err)

	count := 0
	for _, pr := range list {
		if pr.PlayerID == p.ID {
			count++
			assertEquals(t, "HR after upsert", 40.0, *pr.HR)
		}
	}
	assertEquals(t, "projection rows", 1, count)

	// A projection that doesn't exist.
	_, err = testDB.GetProjection(ctx, p.ID, 2026, "zips")
	assertEquals(t, "error type", true, errors.Is(err, ErrProjectionNotFound))
}

func TestDB_rankings(t *testing.T) {
	ctx := context.Background()
	p1 := getBatter("Gunnar Henderson", model.TEAM_BAL, model.POS_SS)
	p2 := getBatter("Elly De La Cruz", model.TEAM_CIN, model.POS_SS)

	for _, p := range []*model.Player{p1, p2} {
		err := testDB.SavePlayer(ctx, p)
		assertFatalf(t, err == nil, "error saving player: %v", err)
	}

	err := testDB.SaveRanking(ctx, &model.Ranking{PlayerID: p1.ID, Season: 2026, Source: "adp-test", OverallRank: 4, ADP: 5.2})
	assertFatalf(t, err == nil, "error saving ranking: %v", err)
	err = testDB.SaveRanking(ctx, &model.Ranking{PlayerID: p2.ID, Season: 2026, Source: "adp-test", OverallRank: 2, ADP: 2.8})
	assertFatalf(t, err == nil, "error saving ranking: %v", err)

	rankings, err := testDB.GetRankings(ctx, 2026, "adp-test")
	assertFatalf(t, err == nil, "error listing rankings: %v", err)
	assertEquals(t, "rankings", 2, len(rankings))
	// Ordered by overall rank.
	assertEquals(t, "first", p2.ID, rankings[0].PlayerID)
	assertEquals(t, "second", p1.ID, rankings[1].PlayerID)

	r, err := testDB.GetRanking(ctx, p1.ID, 2026, "adp-test")
	assertFatalf(t, err == nil, "error getting ranking: %v", err)
	assertEquals(t, "ADP", 5.2, r.ADP)

	_, err = testDB.GetRanking(ctx, p1.ID, 2025, "adp-test")
	assertEquals(t, "error type", true, errors.Is(err, ErrRankingNotFound))
}

func TestDB_leagueAddAndGet(t *testing.T) {
	ctx := context.Background()

	league := &model.League{
		Name:     "Test League",
		NumTeams: 4,
		Teams: []model.Team{
			{Name: "Alpha", DraftSlot: 1},
			{Name: "Bravo", DraftSlot: 2},
			{Name: "Charlie", DraftSlot: 3},
			{Name: "Delta", DraftSlot: 4},
		},
	}
	err := testDB.AddLeague(ctx, league)
	assertFatalf(t, err == nil, "error adding league: %v", err)
	assertTrue(t, "league ID set", league.ID > 0)
	assertTrue(t, "team ID set", league.Teams[0].ID > 0)

	res, err := testDB.GetLeague(ctx, league.ID)
	assertFatalf(t, err == nil, "error getting league: %v", err)
	assertEquals(t, "Name", league.Name, res.Name)
	assertEquals(t, "NumTeams", 4, res.NumTeams)
	// The default roster template is applied when none was given.
	assertEquals(t, "TotalRosterSpots", 22, res.TotalRosterSpots())
	assertEquals(t, "teams", 4, len(res.Teams))
	assertEquals(t, "team order", "Alpha", res.Teams[0].Name)

	_, err = testDB.GetLeague(ctx, 99999)
	assertEquals(t, "error type", true, errors.Is(err, ErrLeagueNotFound))
}

func TestDB_scoringCategories(t *testing.T) {
	ctx := context.Background()
	league := addTestLeague(t, 2, nil)

	cats := []model.ScoringCategory{
		{PlayerType: model.PlayerTypeBatter, StatCode: "hr", StatName: "Home Runs", PointsPerUnit: 4, DisplayOrder: 1, Active: true},
		{PlayerType: model.PlayerTypeBatter, StatCode: "sb", StatName: "Stolen Bases", PointsPerUnit: 2, DisplayOrder: 2, Active: true},
		{PlayerType: model.PlayerTypePitcher, StatCode: "k", StatName: "Strikeouts", PointsPerUnit: 1, DisplayOrder: 1, Active: true},
		{PlayerType: model.PlayerTypePitcher, StatCode: "bb", StatName: "Walks", PointsPerUnit: -1, DisplayOrder: 2, Active: false},
	}
	err := testDB.SaveScoringCategories(ctx, league.ID, cats)
	assertFatalf(t, err == nil, "error saving scoring categories: %v", err)

	batting, err := testDB.GetScoringCategories(ctx, league.ID, model.PlayerTypeBatter)
	assertFatalf(t, err == nil, "error getting batting categories: %v", err)
	assertEquals(t, "batting categories", 2, len(batting))
	assertEquals(t, "first stat", "hr", batting[0].StatCode)

	// Inactive categories are filtered out.
	pitching, err := testDB.GetScoringCategories(ctx, league.ID, model.PlayerTypePitcher)
	assertFatalf(t, err == nil, "error getting pitching categories: %v", err)
	assertEquals(t, "pitching categories", 1, len(pitching))

	// Saving replaces the whole set.
	err = testDB.SaveScoringCategories(ctx, league.ID, cats[:1])
	assertFatalf(t, err == nil, "error replacing scoring categories: %v", err)

	batting, err = testDB.GetScoringCategories(ctx, league.ID, model.PlayerTypeBatter)
	assertFatalf(t, err == nil, "error re-reading batting categories: %v", err)
	assertEquals(t, "batting categories after replace", 1, len(batting))
}

func TestDB_scoreUpsertOverwrite(t *testing.T) {
	ctx := context.Background()
	league := addTestLeague(t, 2, nil)
	p := getBatter("Jose Ramirez", model.TEAM_CLE, model.POS_3B)

	err := testDB.SavePlayer(ctx, p)
	assertFatalf(t, err == nil, "error saving player: %v", err)

	score := &model.PlayerScore{
		PlayerID:    p.ID,
		LeagueID:    league.ID,
		Season:      2026,
		Source:      "steamer",
		TotalPoints: 412.5,
		Breakdown: map[string]model.CategoryPoints{
			"hr": {StatName: "Home Runs", Value: 30, PointsPerUnit: 4, Points: 120},
		},
	}
	err = testDB.UpsertPlayerScore(ctx, score)
	assertFatalf(t, err == nil, "error saving score: %v", err)

	// Recalculate with a different total. The row is overwritten.
	score.TotalPoints = 398.0
	err = testDB.UpsertPlayerScore(ctx, score)
	assertFatalf(t, err == nil, "error upserting score: %v", err)

	scores, err := testDB.GetPlayerScores(ctx, league.ID, 2026, "steamer")
	assertFatalf(t, err == nil, "error getting scores: %v", err)
	assertEquals(t, "score rows", 1, len(scores))
	assertEquals(t, "TotalPoints", 398.0, scores[0].TotalPoints)
	assertEquals(t, "Name", "Jose Ramirez", scores[0].Name)
	assertEquals(t, "breakdown", 120.0, scores[0].Breakdown["hr"].Points)

	top, err := testDB.TopPlayerScores(ctx, league.ID, 2026, "steamer", 1)
	assertFatalf(t, err == nil, "error getting top scores: %v", err)
	assertEquals(t, "top rows", 1, len(top))
}

// getBatter inserts nothing, it just builds a player with a unique id.
func getBatter(name string, team *model.MLBTeam, positions ...model.Position) *model.Player {
	id := atomic.AddInt32(&idCtr, 1)
	return &model.Player{
		ID:              fmt.Sprintf("b%04d", id),
		Name:            name,
		Team:            team,
		Positions:       positions,
		PrimaryPosition: positions[0],
		IsPitcher:       false,
	}
}

func getPitcher(name string, team *model.MLBTeam, positions ...model.Position) *model.Player {
	id := atomic.AddInt32(&idCtr, 1)
	return &model.Player{
		ID:              fmt.Sprintf("p%04d", id),
		Name:            name,
		Team:            team,
		Positions:       positions,
		PrimaryPosition: positions[0],
		IsPitcher:       true,
	}
}

// addTestLeague creates a league with numTeams teams and the given
// roster template, or the default template when nil.
func addTestLeague(t *testing.T, numTeams int, template []model.RosterPosition) *model.League {
	t.Helper()

	league := &model.League{
		Name:      fmt.Sprintf("league-%s", t.Name()),
		NumTeams:  numTeams,
		Positions: template,
	}
	for i := 1; i <= numTeams; i++ {
		league.Teams = append(league.Teams, model.Team{
			Name:      fmt.Sprintf("Team %d", i),
			DraftSlot: i,
		})
	}

	if err := testDB.AddLeague(context.Background(), league); err != nil {
		t.Fatalf("error adding league: %v", err)
	}
	return league
}

func f(v float64) *float64 {
	return &v
}

func assertFatalf(t *testing.T, c bool, f string, args ...any) {
	t.Helper()
	if !c {
		t.Fatalf(f, args...)
	}
}

func assertEquals(t *testing.T, field string, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s - expected: '%v', got: '%v'", field, expected, actual)
	}
}

func assertTrue(t *testing.T, field string, cond bool) {
	t.Helper()
	if !cond {
		t.Errorf("%s - expected to be true but it was false", field)
	}
}
