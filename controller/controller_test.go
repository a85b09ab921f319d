package controller

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/santiagoventura/predraft/advisor"
	"github.com/santiagoventura/predraft/model"
	"github.com/santiagoventura/predraft/testutils"
)

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// deadAdvisorURL points at nothing so that advisor calls fail fast and
// exercise the fallback path.
const deadAdvisorURL = "http://127.0.0.1:1"

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

var leagueCtr atomic.Int32

func newTestController(t *testing.T, advisorURL string) C {
	t.Helper()
	c, err := New(testDB.Clock, advisor.NewForTest(advisorURL), testDB.DB)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}
	return c
}

func addTestLeague(t *testing.T, positions []model.RosterPosition) *model.League {
	t.Helper()
	league := &model.League{
		Name:      fmt.Sprintf("league-%d", leagueCtr.Add(1)),
		NumTeams:  2,
		Positions: positions,
		Teams: []model.Team{
			{Name: "Team 1", DraftSlot: 1},
			{Name: "Team 2", DraftSlot: 2},
		},
	}
	if err := testDB.DB.AddLeague(context.Background(), league); err != nil {
		t.Fatalf("error adding league: %v", err)
	}
	return league
}

// flowTemplate is small enough to draft to completion with the sample
// players: one OF and one UTIL slot per team.
func flowTemplate() []model.RosterPosition {
	return []model.RosterPosition{
		{Code: model.POS_OF, SlotCount: 1, DisplayOrder: 1},
		{Code: model.POS_UTIL, SlotCount: 1, DisplayOrder: 2},
	}
}

func TestController_draftFlow(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, deadAdvisorURL)
	league := addTestLeague(t, flowTemplate())

	draft, err := c.InitializeDraft(ctx, league.ID, "")
	assertFatalf(t, err == nil, "error initializing draft: %v", err)
	if !strings.HasPrefix(draft.Name, "Draft - ") {
		t.Errorf("expected default draft name, got %q", draft.Name)
	}
	assertEquals(t, "total rounds", 2, draft.TotalRounds)

	if _, err := c.MakePick(ctx, draft.ID, testutils.AaronJudge.ID, "", nil); !errors.Is(err, model.ErrNoCurrentPick) {
		t.Errorf("expected ErrNoCurrentPick before start, got %v", err)
	}

	draft, err = c.StartDraft(ctx, draft.ID)
	assertFatalf(t, err == nil, "error starting draft: %v", err)
	assertEquals(t, "status", model.DraftStatusInProgress, draft.Status)

	team1 := league.Teams[0]
	team2 := league.Teams[1]

	pick, err := c.CurrentPick(ctx, draft.ID)
	assertFatalf(t, err == nil, "error getting current pick: %v", err)
	assertEquals(t, "first pick team", team1.ID, pick.TeamID)

	needs, err := c.TeamNeeds(ctx, draft.ID, team1.ID)
	assertFatalf(t, err == nil, "error getting team needs: %v", err)
	assertEquals(t, "OF need", 1, needs[model.POS_OF])
	assertEquals(t, "UTIL need", 1, needs[model.POS_UTIL])

	// No pitcher slots in this template so pitchers are never eligible.
	eligible, err := c.EligiblePlayers(ctx, draft.ID, team1.ID)
	assertFatalf(t, err == nil, "error getting eligible players: %v", err)
	assertEquals(t, "eligible count", 6, len(eligible))
	for _, p := range eligible {
		if p.IsPitcher {
			t.Errorf("pitcher %s should not be eligible", p.Name)
		}
	}

	// Pick #1: Judge lands in the OF slot.
	p1, err := c.MakePick(ctx, draft.ID, testutils.AaronJudge.ID, "", nil)
	assertFatalf(t, err == nil, "error making pick 1: %v", err)
	assertEquals(t, "pick 1 slot", "OF1", p1.PositionFilled.Label())

	needs, err = c.TeamNeeds(ctx, draft.ID, team1.ID)
	assertFatalf(t, err == nil, "error getting team needs: %v", err)
	assertEquals(t, "OF need after pick", 0, needs[model.POS_OF])
	assertEquals(t, "UTIL need after pick", 1, needs[model.POS_UTIL])

	// Pick #2: Betts is SS/OF but there is no SS slot, so OF.
	p2, err := c.MakePick(ctx, draft.ID, testutils.MookieBetts.ID, "", nil)
	assertFatalf(t, err == nil, "error making pick 2: %v", err)
	assertEquals(t, "pick 2 team", team2.ID, p2.TeamID)
	assertEquals(t, "pick 2 slot", "OF1", p2.PositionFilled.Label())

	// Round 2 reverses: team 2 again, this time with an explicit slot.
	p3, err := c.MakePick(ctx, draft.ID, testutils.ShoheiOhtani.ID, "UTIL1", nil)
	assertFatalf(t, err == nil, "error making pick 3: %v", err)
	assertEquals(t, "pick 3 team", team2.ID, p3.TeamID)
	assertEquals(t, "pick 3 round", 2, p3.Round)

	if _, err := c.MakePick(ctx, draft.ID, testutils.FreddieFreeman.ID, "XX9", nil); err == nil {
		t.Errorf("expected an error for a bad slot label")
	}

	p4, err := c.MakePick(ctx, draft.ID, testutils.FreddieFreeman.ID, "", nil)
	assertFatalf(t, err == nil, "error making pick 4: %v", err)
	assertEquals(t, "pick 4 team", team1.ID, p4.TeamID)
	assertEquals(t, "pick 4 slot", "UTIL1", p4.PositionFilled.Label())

	// The final pick completed the draft.
	draft, err = c.GetDraft(ctx, draft.ID)
	assertFatalf(t, err == nil, "error getting draft: %v", err)
	assertEquals(t, "final status", model.DraftStatusCompleted, draft.Status)
	assertTrue(t, draft.CompletedAt != nil, "expected completed timestamp")

	if _, err := c.CurrentPick(ctx, draft.ID); !errors.Is(err, model.ErrNoCurrentPick) {
		t.Errorf("expected ErrNoCurrentPick after completion, got %v", err)
	}

	summary, err := c.DraftSummary(ctx, draft.ID)
	assertFatalf(t, err == nil, "error getting summary: %v", err)
	assertEquals(t, "total picks", 4, summary.TotalPicks)
	assertEquals(t, "completed picks", 4, summary.CompletedPicks)
	assertEquals(t, "remaining picks", 0, summary.RemainingPicks)
	assertEquals(t, "hitters picked", 4, summary.HittersPicked)
	assertEquals(t, "hitter pct", 100.0, summary.HitterPercentage)

	// Reverting the last pick reopens the draft at that pick.
	reverted, err := c.RevertLastPick(ctx, draft.ID)
	assertFatalf(t, err == nil, "error reverting pick: %v", err)
	assertEquals(t, "reverted pick", p4.OverallPick, reverted.OverallPick)

	draft, err = c.GetDraft(ctx, draft.ID)
	assertFatalf(t, err == nil, "error getting draft: %v", err)
	assertEquals(t, "reopened status", model.DraftStatusInProgress, draft.Status)
	assertEquals(t, "reopened round", 2, draft.CurrentRound)
	assertEquals(t, "reopened pick in round", 2, draft.CurrentPickInRound)
}

func TestController_pauseAndResume(t *testing.T) {
	ctx := context.Background()
	c := newTestController(t, deadAdvisorURL)
	league := addTestLeague(t, flowTemplate())

	draft, err := c.InitializeDraft(ctx, league.ID, "pause test")
	assertFatalf(t, err == nil, "error initializing draft: %v", err)
	assertEquals(t, "name", "pause test", draft.Name)

	// Can't pause or resume a draft that was never started.
	if err := c.PauseDraft(ctx, draft.ID); !errors.Is(err, model.ErrDraftNotInProgress) {
		t.Errorf("expected ErrDraftNotInProgress pausing unstarted draft, got %v", err)
	}
	if err := c.ResumeDraft(ctx, draft.ID); !errors.Is(err, model.ErrDraftNotInProgress) {
		t.Errorf("expected ErrDraftNotInProgress resuming unstarted draft, got %v", err)
	}

	if _, err := c.StartDraft(ctx, draft.ID); err != nil {
		t.Fatalf("error starting draft: %v", err)
	}
	if err := c.PauseDraft(ctx, draft.ID); err != nil {
		t.Fatalf("error pausing draft: %v", err)
	}

	if _, err := c.MakePick(ctx, draft.ID, testutils.AaronJudge.ID, "", nil); !errors.Is(err, model.ErrDraftNotInProgress) {
		t.Errorf("expected ErrDraftNotInProgress while paused, got %v", err)
	}

	if err := c.ResumeDraft(ctx, draft.ID); err != nil {
		t.Fatalf("error resuming draft: %v", err)
	}
	if _, err := c.MakePick(ctx, draft.ID, testutils.AaronJudge.ID, "", nil); err != nil {
		t.Errorf("expected pick to succeed after resume, got %v", err)
	}
}

func assertFatalf(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

func assertEquals(t *testing.T, name string, expected, actual any) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s incorrect, expected: %v, got: %v", name, expected, actual)
	}
}

func assertTrue(t *testing.T, cond bool, msg string) {
	t.Helper()
	if !cond {
		t.Errorf("%s", msg)
	}
}
