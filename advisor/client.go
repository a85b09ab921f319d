package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/santiagoventura/predraft/model"
)

// Client talks to the external draft advisor service. The advisor takes
// a full draft context and returns a ranked candidate list; the ranking
// is strategic, not a points sort, and callers must keep its order.
type Client interface {
	GetRecommendations(ctx context.Context, req *Request) ([]model.Recommendation, error)
}

// Request carries everything the advisor needs to rank candidates for
// the team currently on the clock.
type Request struct {
	League   LeagueContext                           `json:"league"`
	Draft    DraftContext                            `json:"draft"`
	Team     TeamContext                             `json:"team"`
	Batters  []model.RatedPlayer                     `json:"batters"`
	Pitchers []model.RatedPlayer                     `json:"pitchers"`
	Scarcity map[model.Position]model.ScarcityReport `json:"positional_scarcity"`
	TopN     int                                     `json:"top_n"`
}

type LeagueContext struct {
	NumTeams       int            `json:"num_teams"`
	BatterScoring  []CategoryRate `json:"batter_scoring"`
	PitcherScoring []CategoryRate `json:"pitcher_scoring"`
	Positions      []PositionSlot `json:"positions"`
}

type CategoryRate struct {
	Stat      string  `json:"stat"`
	PointsPer float64 `json:"points_per"`
}

type PositionSlot struct {
	Position model.Position `json:"position"`
	Slots    int            `json:"slots"`
}

type DraftContext struct {
	CurrentRound       int     `json:"current_round"`
	TotalRounds        int     `json:"total_rounds"`
	CompletedPicks     int     `json:"completed_picks"`
	RemainingPicks     int     `json:"remaining_picks"`
	PitchersPicked     int     `json:"pitchers_picked"`
	HittersPicked      int     `json:"hitters_picked"`
	PitcherPercentage  float64 `json:"pitcher_percentage"`
	CurrentOverallPick int     `json:"current_overall_pick"`
	PicksUntilNextTurn int     `json:"picks_until_next_turn"`
}

type TeamContext struct {
	Name        string                 `json:"name"`
	DraftSlot   int                    `json:"draft_slot"`
	RosterCount int                    `json:"roster_count"`
	Needs       map[model.Position]int `json:"needs"`
	Roster      []RosterLine           `json:"roster"`
}

type RosterLine struct {
	Player   string `json:"player"`
	Position string `json:"position"`
}

type client struct {
	url        string
	httpClient *http.Client
}

func New(url string) (Client, error) {
	if url == "" {
		return nil, fmt.Errorf("advisor url is required")
	}
	c := &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return c, nil
}

// NewForTest returns a client pointed at a fake advisor server.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *client) GetRecommendations(ctx context.Context, r *Request) ([]model.Recommendation, error) {
	body, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("error marshaling advisor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/recommendations", c.url), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var parsed struct {
		Recommendations []model.Recommendation `json:"recommendations"`
	}
	err = json.NewDecoder(resp.Body).Decode(&parsed)
	if err != nil {
		return nil, fmt.Errorf("error parsing response from advisor: %w", err)
	}

	if len(parsed.Recommendations) == 0 {
		return nil, fmt.Errorf("advisor returned no recommendations")
	}

	return parsed.Recommendations, nil
}
