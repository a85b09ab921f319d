package model

import "testing"

func makeTeams(n int) []Team {
	teams := make([]Team, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, Team{ID: int32(i), DraftSlot: i})
	}
	return teams
}

func TestSnakeTeamOrder(t *testing.T) {
	teams := makeTeams(4)

	odd := SnakeTeamOrder(teams, 1)
	for i, team := range odd {
		if team.DraftSlot != i+1 {
			t.Errorf("odd round position %d: expected slot %d, got %d", i, i+1, team.DraftSlot)
		}
	}

	even := SnakeTeamOrder(teams, 2)
	for i, team := range even {
		expected := len(teams) - i
		if team.DraftSlot != expected {
			t.Errorf("even round position %d: expected slot %d, got %d", i, expected, team.DraftSlot)
		}
	}

	// The reversal must not touch the input slice.
	if teams[0].DraftSlot != 1 {
		t.Errorf("input slice was modified: %v", teams)
	}
}

func TestPicksUntilNextTurn(t *testing.T) {
	tests := []struct {
		numTeams  int
		round     int
		draftSlot int
		expected  int
	}{
		// 10 teams, odd round: slot 1 waits the longest.
		{numTeams: 10, round: 1, draftSlot: 1, expected: 19},
		{numTeams: 10, round: 1, draftSlot: 10, expected: 1},
		{numTeams: 10, round: 1, draftSlot: 5, expected: 11},
		// Even round: the wheel turns the other way.
		{numTeams: 10, round: 2, draftSlot: 1, expected: 1},
		{numTeams: 10, round: 2, draftSlot: 10, expected: 19},
		{numTeams: 2, round: 1, draftSlot: 1, expected: 3},
		{numTeams: 2, round: 1, draftSlot: 2, expected: 1},
	}

	for _, tc := range tests {
		a := PicksUntilNextTurn(tc.numTeams, tc.round, tc.draftSlot)
		if a != tc.expected {
			t.Errorf("numTeams=%d round=%d slot=%d: expected %d, got %d",
				tc.numTeams, tc.round, tc.draftSlot, tc.expected, a)
		}
	}
}

func TestLeagueTotalRosterSpots(t *testing.T) {
	l := &League{Positions: DefaultRosterConfig()}
	if spots := l.TotalRosterSpots(); spots != 22 {
		t.Errorf("expected 22 roster spots, got %d", spots)
	}

	empty := &League{}
	if spots := empty.TotalRosterSpots(); spots != 0 {
		t.Errorf("expected 0 roster spots, got %d", spots)
	}
}
