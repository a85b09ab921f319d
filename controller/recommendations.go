package controller

import (
	"context"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/santiagoventura/predraft/advisor"
	"github.com/santiagoventura/predraft/model"
)

// advisorPoolLimit caps how many rated players are sent to the advisor.
// The tail of the pool never gets recommended anyway.
const advisorPoolLimit = 150

func (c *controller) GetRecommendations(ctx context.Context, draftID, teamID int32, n int) ([]model.Recommendation, error) {
	draft, err := c.db.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	league, err := c.db.GetLeague(ctx, draft.LeagueID)
	if err != nil {
		return nil, err
	}

	var team *model.Team
	for i := range league.Teams {
		if league.Teams[i].ID == teamID {
			team = &league.Teams[i]
			break
		}
	}
	if team == nil {
		return nil, fmt.Errorf("team %d is not in league %d", teamID, league.ID)
	}

	needs, err := c.TeamNeeds(ctx, draftID, teamID)
	if err != nil {
		return nil, err
	}
	roster, err := c.db.GetTeamRoster(ctx, draftID, teamID)
	if err != nil {
		return nil, err
	}
	summary, err := c.DraftSummary(ctx, draftID)
	if err != nil {
		return nil, err
	}

	pool, err := c.ratedPool(ctx, draftID, teamID, league.ID)
	if err != nil {
		return nil, err
	}

	picksUntilNextTurn := model.PicksUntilNextTurn(league.NumTeams, draft.CurrentRound, team.DraftSlot)
	currentOverallPick := summary.CompletedPicks + 1
	scarcity := AnalyzeScarcity(pool, needs, picksUntilNextTurn, currentOverallPick)

	batterCats, err := c.db.GetScoringCategories(ctx, league.ID, model.PlayerTypeBatter)
	if err != nil {
		return nil, err
	}
	pitcherCats, err := c.db.GetScoringCategories(ctx, league.ID, model.PlayerTypePitcher)
	if err != nil {
		return nil, err
	}

	var batters, pitchers []model.RatedPlayer
	for _, p := range pool {
		if p.IsPitcher {
			pitchers = append(pitchers, p)
		} else {
			batters = append(batters, p)
		}
	}

	rosterLines := make([]advisor.RosterLine, 0, len(roster))
	for _, entry := range roster {
		rosterLines = append(rosterLines, advisor.RosterLine{
			Player:   entry.PlayerName,
			Position: entry.Slot.Label(),
		})
	}

	positionSlots := make([]advisor.PositionSlot, 0, len(league.Positions))
	for _, rp := range league.Positions {
		positionSlots = append(positionSlots, advisor.PositionSlot{
			Position: rp.Code,
			Slots:    rp.SlotCount,
		})
	}

	req := &advisor.Request{
		League: advisor.LeagueContext{
			NumTeams:       league.NumTeams,
			BatterScoring:  categoryRates(batterCats),
			PitcherScoring: categoryRates(pitcherCats),
			Positions:      positionSlots,
		},
		Draft: advisor.DraftContext{
			CurrentRound:       draft.CurrentRound,
			TotalRounds:        draft.TotalRounds,
			CompletedPicks:     summary.CompletedPicks,
			RemainingPicks:     summary.RemainingPicks,
			PitchersPicked:     summary.PitchersPicked,
			HittersPicked:      summary.HittersPicked,
			PitcherPercentage:  summary.PitcherPercentage,
			CurrentOverallPick: currentOverallPick,
			PicksUntilNextTurn: picksUntilNextTurn,
		},
		Team: advisor.TeamContext{
			Name:        team.Name,
			DraftSlot:   team.DraftSlot,
			RosterCount: len(roster),
			Needs:       needs,
			Roster:      rosterLines,
		},
		Batters:  batters,
		Pitchers: pitchers,
		Scarcity: scarcity,
		TopN:     n,
	}

	recs, err := c.advisor.GetRecommendations(ctx, req)
	if err != nil {
		log.Printf("advisor unavailable for draft %d, using fallback: %v", draftID, err)
		return FallbackRecommendations(pool, needs, draft.CurrentRound, n), nil
	}

	return recs, nil
}

// ratedPool rates every player the team could still draft: the
// league-specific score when one was calculated for the current season,
// otherwise an estimate from the player's best ranking. Sorted by
// points descending and capped.
func (c *controller) ratedPool(ctx context.Context, draftID, teamID, leagueID int32) ([]model.RatedPlayer, error) {
	eligible, err := c.EligiblePlayers(ctx, draftID, teamID)
	if err != nil {
		return nil, err
	}

	season := c.clock.Now().UTC().Year()
	scores, err := c.db.SeasonPlayerScores(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	scoreByPlayer := make(map[string]float64, len(scores))
	for _, s := range scores {
		scoreByPlayer[s.PlayerID] = s.TotalPoints
	}

	rankings, err := c.db.BestRankings(ctx, season)
	if err != nil {
		return nil, err
	}
	rankingByPlayer := make(map[string]model.Ranking, len(rankings))
	for _, r := range rankings {
		rankingByPlayer[r.PlayerID] = r
	}

	pool := make([]model.RatedPlayer, 0, len(eligible))
	for i := range eligible {
		p := &eligible[i]

		rated := model.RatedPlayer{
			PlayerID:        p.ID,
			Name:            p.Name,
			Positions:       p.Positions,
			PrimaryPosition: p.PrimaryPosition,
			IsPitcher:       p.IsPitcher,
		}
		if p.Team != nil {
			rated.Team = p.Team.String()
		}

		if r, ok := rankingByPlayer[p.ID]; ok {
			rank := r.OverallRank
			rated.Rank = &rank
			if r.ADP > 0 {
				adp := r.ADP
				rated.ADP = &adp
			}
		}

		if points, ok := scoreByPlayer[p.ID]; ok {
			rated.ProjectedPoints = round1(points)
		} else if rated.Rank != nil {
			rated.ProjectedPoints = round1(estimatePoints(*rated.Rank, p.IsPitcher))
		}

		pool = append(pool, rated)
	}

	slices.SortStableFunc(pool, func(a, b model.RatedPlayer) int {
		if a.ProjectedPoints > b.ProjectedPoints {
			return -1
		}
		if a.ProjectedPoints < b.ProjectedPoints {
			return 1
		}
		return 0
	})
	if len(pool) > advisorPoolLimit {
		pool = pool[:advisorPoolLimit]
	}

	return pool, nil
}

// estimatePoints is a rough points projection for players that were
// never scored: the top of the draft lands around 600 and falls off
// linearly, with pitchers scoring roughly two thirds of batters.
func estimatePoints(rank int32, isPitcher bool) float64 {
	base := max(100, 600-float64(rank)*3)
	if isPitcher {
		return base * 0.65
	}
	return base
}

// FallbackRecommendations is the advisor-less candidate list: best
// available by projected points, with two corrections so a pure points
// sort does not bury pitchers. An elite pitcher leads the list in the
// early rounds, and one pitcher is always present while the team still
// has pitcher slots to fill.
func FallbackRecommendations(pool []model.RatedPlayer, needs map[model.Position]int, currentRound, n int) []model.Recommendation {
	pitcherSlotsNeeded := 0
	for pos, needed := range needs {
		if pos.IsPitcherPosition() {
			pitcherSlotsNeeded += needed
		}
	}

	sorted := make([]model.RatedPlayer, len(pool))
	copy(sorted, pool)
	slices.SortStableFunc(sorted, func(a, b model.RatedPlayer) int {
		if a.ProjectedPoints > b.ProjectedPoints {
			return -1
		}
		if a.ProjectedPoints < b.ProjectedPoints {
			return 1
		}
		return 0
	})

	var batters, pitchers []model.RatedPlayer
	for _, p := range sorted {
		if p.IsPitcher {
			pitchers = append(pitchers, p)
		} else {
			batters = append(batters, p)
		}
	}

	selected := make([]model.RatedPlayer, 0, n)

	// Elite pitchers are worth an early pick even when raw points say
	// otherwise.
	if currentRound <= 4 && pitcherSlotsNeeded > 0 && len(pitchers) > 0 {
		top := pitchers[0]
		if top.Rank != nil && *top.Rank <= 50 {
			selected = append(selected, top)
		}
	}

	for _, b := range batters {
		if len(selected) >= n {
			break
		}
		selected = append(selected, b)
	}

	if pitcherSlotsNeeded > 0 && len(pitchers) > 0 && !anyPitcher(selected) {
		if len(selected) >= n {
			selected = selected[:len(selected)-1]
		}
		selected = append(selected, pitchers[0])
	}

	if len(selected) > n {
		selected = selected[:n]
	}

	recs := make([]model.Recommendation, 0, len(selected))
	for i, p := range selected {
		playerType := "batter"
		if p.IsPitcher {
			playerType = "pitcher"
		}

		recs = append(recs, model.Recommendation{
			PlayerID:        p.PlayerID,
			PlayerName:      p.Name,
			PlayerTeam:      p.Team,
			Positions:       positionsLabel(p.Positions),
			IsPitcher:       p.IsPitcher,
			Rank:            i + 1,
			ADP:             p.ADP,
			ProjectedPoints: round1(p.ProjectedPoints),
			Explanation:     fmt.Sprintf("Best available %s by projected points.", playerType),
		})
	}

	return recs
}

func anyPitcher(players []model.RatedPlayer) bool {
	for _, p := range players {
		if p.IsPitcher {
			return true
		}
	}
	return false
}

func categoryRates(cats []model.ScoringCategory) []advisor.CategoryRate {
	rates := make([]advisor.CategoryRate, 0, len(cats))
	for _, cat := range cats {
		rates = append(rates, advisor.CategoryRate{
			Stat:      cat.StatCode,
			PointsPer: cat.PointsPerUnit,
		})
	}
	return rates
}

func positionsLabel(positions []model.Position) string {
	labels := make([]string, 0, len(positions))
	for _, p := range positions {
		labels = append(labels, string(p))
	}
	return strings.Join(labels, ",")
}
