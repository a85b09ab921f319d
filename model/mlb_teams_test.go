package model

import "testing"

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *MLBTeam
	}{
		{input: "FA", expected: TEAM_FA},
		{input: "FA*", expected: TEAM_FA},

		// NL
		{input: "ARI", expected: TEAM_ARI},
		{input: "ATL", expected: TEAM_ATL},
		{input: "CHC", expected: TEAM_CHC},
		{input: "CIN", expected: TEAM_CIN},
		{input: "COL", expected: TEAM_COL},
		{input: "LAD", expected: TEAM_LAD},
		{input: "MIA", expected: TEAM_MIA},
		{input: "MIL", expected: TEAM_MIL},
		{input: "NYM", expected: TEAM_NYM},
		{input: "PHI", expected: TEAM_PHI},
		{input: "PIT", expected: TEAM_PIT},
		{input: "SDP", expected: TEAM_SDP},
		{input: "SFG", expected: TEAM_SFG},
		{input: "STL", expected: TEAM_STL},
		{input: "WSN", expected: TEAM_WSN},

		// AL
		{input: "BAL", expected: TEAM_BAL},
		{input: "BOS", expected: TEAM_BOS},
		{input: "CHW", expected: TEAM_CHW},
		{input: "CLE", expected: TEAM_CLE},
		{input: "DET", expected: TEAM_DET},
		{input: "HOU", expected: TEAM_HOU},
		{input: "KCR", expected: TEAM_KCR},
		{input: "LAA", expected: TEAM_LAA},
		{input: "MIN", expected: TEAM_MIN},
		{input: "NYY", expected: TEAM_NYY},
		{input: "OAK", expected: TEAM_OAK},
		{input: "SEA", expected: TEAM_SEA},
		{input: "TBR", expected: TEAM_TBR},
		{input: "TEX", expected: TEAM_TEX},
		{input: "TOR", expected: TEAM_TOR},

		// Short names
		{input: "AZ", expected: TEAM_ARI},
		{input: "sd", expected: TEAM_SDP},
		{input: "sf", expected: TEAM_SFG},
		{input: "wsh", expected: TEAM_WSN},
		{input: "cws", expected: TEAM_CHW},
		{input: "kc", expected: TEAM_KCR},
		{input: "tb", expected: TEAM_TBR},

		// mascot
		{input: "Diamondbacks", expected: TEAM_ARI},
		{input: "Cubs", expected: TEAM_CHC},
		{input: "Dodgers", expected: TEAM_LAD},
		{input: "Red Sox", expected: TEAM_BOS},
		{input: "White Sox", expected: TEAM_CHW},
		{input: "Guardians", expected: TEAM_CLE},
		{input: "Rays", expected: TEAM_TBR},

		// nicknames
		{input: "Dbacks", expected: TEAM_ARI},
		{input: "Brew Crew", expected: TEAM_MIL},
		{input: "Bucs", expected: TEAM_PIT},
		{input: "Nats", expected: TEAM_WSN},
		{input: "ChiSox", expected: TEAM_CHW},
		{input: "Halos", expected: TEAM_LAA},
		{input: "A's", expected: TEAM_OAK},
		{input: "Jays", expected: TEAM_TOR},

		// unknown falls back to free agency
		{input: "NPB", expected: TEAM_FA},
		{input: "", expected: TEAM_FA},
	}

	for _, tc := range tests {
		if a := ParseTeam(tc.input); !a.Equals(tc.expected) {
			t.Errorf("input: '%s', expected: %s, got: %s", tc.input, tc.expected, a)
		}
	}
}

func TestTeamFriendly(t *testing.T) {
	if f := TEAM_LAD.Friendly(); f != "Los Angeles Dodgers" {
		t.Errorf("expected 'Los Angeles Dodgers', got '%s'", f)
	}

	if f := TEAM_FA.Friendly(); f != "FA" {
		t.Errorf("expected 'FA', got '%s'", f)
	}
}
