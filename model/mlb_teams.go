package model

import (
	"fmt"
	"strings"
)

type MLBTeam struct {
	name   string
	loc    string
	mascot string
	short  string   // If there is a short form of the name, e.g. SD for SDP
	nick   []string // Any other nicknames that are used for the team, e.g. ChiSox for CHW
}

func (t *MLBTeam) String() string {
	return t.name
}

func (t *MLBTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *MLBTeam) Equals(o *MLBTeam) bool {
	if o == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name &&
		t.loc == o.loc &&
		t.mascot == o.mascot &&
		t.short == o.short &&
		arrayEquals(t.nick, o.nick)
}

var (
	TEAM_FA *MLBTeam = &MLBTeam{name: "FA", nick: []string{"FA*"}}

	// National League
	TEAM_ARI *MLBTeam = &MLBTeam{name: "ARI", loc: "Arizona", mascot: "Diamondbacks", short: "AZ", nick: []string{"Dbacks", "D-backs"}}
	TEAM_ATL *MLBTeam = &MLBTeam{name: "ATL", loc: "Atlanta", mascot: "Braves"}
	TEAM_CHC *MLBTeam = &MLBTeam{name: "CHC", loc: "Chicago", mascot: "Cubs", nick: []string{"Cubbies"}}
	TEAM_CIN *MLBTeam = &MLBTeam{name: "CIN", loc: "Cincinnati", mascot: "Reds"}
	TEAM_COL *MLBTeam = &MLBTeam{name: "COL", loc: "Colorado", mascot: "Rockies"}
	TEAM_LAD *MLBTeam = &MLBTeam{name: "LAD", loc: "Los Angeles", mascot: "Dodgers"}
	TEAM_MIA *MLBTeam = &MLBTeam{name: "MIA", loc: "Miami", mascot: "Marlins"}
	TEAM_MIL *MLBTeam = &MLBTeam{name: "MIL", loc: "Milwaukee", mascot: "Brewers", nick: []string{"Brew Crew"}}
	TEAM_NYM *MLBTeam = &MLBTeam{name: "NYM", loc: "New York", mascot: "Mets"}
	TEAM_PHI *MLBTeam = &MLBTeam{name: "PHI", loc: "Philadelphia", mascot: "Phillies", nick: []string{"Phils"}}
	TEAM_PIT *MLBTeam = &MLBTeam{name: "PIT", loc: "Pittsburgh", mascot: "Pirates", nick: []string{"Bucs"}}
	TEAM_SDP *MLBTeam = &MLBTeam{name: "SDP", loc: "San Diego", mascot: "Padres", short: "SD"}
	TEAM_SFG *MLBTeam = &MLBTeam{name: "SFG", loc: "San Francisco", mascot: "Giants", short: "SF"}
	TEAM_STL *MLBTeam = &MLBTeam{name: "STL", loc: "St. Louis", mascot: "Cardinals", nick: []string{"Cards"}}
	TEAM_WSN *MLBTeam = &MLBTeam{name: "WSN", loc: "Washington", mascot: "Nationals", short: "WSH", nick: []string{"Nats"}}

	// American League
	TEAM_BAL *MLBTeam = &MLBTeam{name: "BAL", loc: "Baltimore", mascot: "Orioles", nick: []string{"O's"}}
	TEAM_BOS *MLBTeam = &MLBTeam{name: "BOS", loc: "Boston", mascot: "Red Sox", nick: []string{"Sox"}}
	TEAM_CHW *MLBTeam = &MLBTeam{name: "CHW", loc: "Chicago", mascot: "White Sox", short: "CWS", nick: []string{"ChiSox"}}
	TEAM_CLE *MLBTeam = &MLBTeam{name: "CLE", loc: "Cleveland", mascot: "Guardians"}
	TEAM_DET *MLBTeam = &MLBTeam{name: "DET", loc: "Detroit", mascot: "Tigers"}
	TEAM_HOU *MLBTeam = &MLBTeam{name: "HOU", loc: "Houston", mascot: "Astros", nick: []string{"Stros"}}
	TEAM_KCR *MLBTeam = &MLBTeam{name: "KCR", loc: "Kansas City", mascot: "Royals", short: "KC"}
	TEAM_LAA *MLBTeam = &MLBTeam{name: "LAA", loc: "Los Angeles", mascot: "Angels", nick: []string{"Halos"}}
	TEAM_MIN *MLBTeam = &MLBTeam{name: "MIN", loc: "Minnesota", mascot: "Twins"}
	TEAM_NYY *MLBTeam = &MLBTeam{name: "NYY", loc: "New York", mascot: "Yankees", nick: []string{"Yanks"}}
	TEAM_OAK *MLBTeam = &MLBTeam{name: "OAK", loc: "Oakland", mascot: "Athletics", nick: []string{"A's"}}
	TEAM_SEA *MLBTeam = &MLBTeam{name: "SEA", loc: "Seattle", mascot: "Mariners", nick: []string{"M's"}}
	TEAM_TBR *MLBTeam = &MLBTeam{name: "TBR", loc: "Tampa Bay", mascot: "Rays", short: "TB"}
	TEAM_TEX *MLBTeam = &MLBTeam{name: "TEX", loc: "Texas", mascot: "Rangers"}
	TEAM_TOR *MLBTeam = &MLBTeam{name: "TOR", loc: "Toronto", mascot: "Blue Jays", nick: []string{"Jays"}}

	teamMap map[string]*MLBTeam = buildTeamMap()
)

func ParseTeam(name string) *MLBTeam {
	t := teamMap[strings.ToLower(name)]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*MLBTeam {
	teams := []*MLBTeam{
		// NL
		TEAM_ARI, TEAM_ATL, TEAM_CHC, TEAM_CIN, TEAM_COL, TEAM_LAD, TEAM_MIA, TEAM_MIL,
		TEAM_NYM, TEAM_PHI, TEAM_PIT, TEAM_SDP, TEAM_SFG, TEAM_STL, TEAM_WSN,
		// AL
		TEAM_BAL, TEAM_BOS, TEAM_CHW, TEAM_CLE, TEAM_DET, TEAM_HOU, TEAM_KCR, TEAM_LAA,
		TEAM_MIN, TEAM_NYY, TEAM_OAK, TEAM_SEA, TEAM_TBR, TEAM_TEX, TEAM_TOR,
		// Other
		TEAM_FA,
	}

	teamMap := make(map[string]*MLBTeam)
	for _, t := range teams {
		teamMap[strings.ToLower(t.name)] = t

		if t.mascot != "" {
			teamMap[strings.ToLower(t.mascot)] = t
		}

		if t.short != "" {
			teamMap[strings.ToLower(t.short)] = t
		}

		for _, n := range t.nick {
			teamMap[strings.ToLower(n)] = t
		}
	}
	return teamMap
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
