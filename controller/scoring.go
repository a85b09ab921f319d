package controller

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/santiagoventura/predraft/model"
)

// CalculatePlayerScore converts one projection into league points using
// the category set matching the player's type, persists the result, and
// returns it. Recalculating overwrites the stored score.
func (c *controller) CalculatePlayerScore(ctx context.Context, player *model.Player, leagueID int32, proj *model.Projection, batterCats, pitcherCats []model.ScoringCategory) (*model.PlayerScore, error) {
	cats := batterCats
	playerType := model.PlayerTypeBatter
	if player.IsPitcher {
		cats = pitcherCats
		playerType = model.PlayerTypePitcher
	}

	total, breakdown := scoreProjection(proj, cats, playerType)

	score := &model.PlayerScore{
		PlayerID:     player.ID,
		LeagueID:     leagueID,
		Season:       proj.Season,
		Source:       proj.Source,
		TotalPoints:  total,
		Breakdown:    breakdown,
		CalculatedAt: c.clock.Now().UTC(),
		Name:         player.Name,
		IsPitcher:    player.IsPitcher,
	}

	if err := c.db.UpsertPlayerScore(ctx, score); err != nil {
		return nil, fmt.Errorf("error saving score for %s: %w", player.ID, err)
	}

	return score, nil
}

// CalculateLeagueScores scores every player with a projection for
// (season, source). Players without one are skipped silently. The
// scoring categories are re-read from the database on every call so
// category edits take effect immediately.
func (c *controller) CalculateLeagueScores(ctx context.Context, leagueID int32, season int, source string, progress func(pct int, msg string)) (int, error) {
	batterCats, err := c.db.GetScoringCategories(ctx, leagueID, model.PlayerTypeBatter)
	if err != nil {
		return 0, fmt.Errorf("error loading batter categories: %w", err)
	}
	pitcherCats, err := c.db.GetScoringCategories(ctx, leagueID, model.PlayerTypePitcher)
	if err != nil {
		return 0, fmt.Errorf("error loading pitcher categories: %w", err)
	}
	if len(batterCats) == 0 && len(pitcherCats) == 0 {
		return 0, model.ErrNoCategoriesConfigured
	}

	projections, err := c.db.ListProjections(ctx, season, source)
	if err != nil {
		return 0, fmt.Errorf("error listing projections: %w", err)
	}

	players, err := c.db.ListPlayers(ctx)
	if err != nil {
		return 0, fmt.Errorf("error listing players: %w", err)
	}
	playersByID := make(map[string]*model.Player, len(players))
	for i := range players {
		playersByID[players[i].ID] = &players[i]
	}

	scored := 0
	for i := range projections {
		proj := &projections[i]
		player, ok := playersByID[proj.PlayerID]
		if !ok {
			log.Printf("projection for unknown player %s, skipping", proj.PlayerID)
			continue
		}

		if _, err := c.CalculatePlayerScore(ctx, player, leagueID, proj, batterCats, pitcherCats); err != nil {
			return scored, err
		}
		scored++

		if progress != nil {
			pct := (i + 1) * 100 / len(projections)
			progress(pct, fmt.Sprintf("scored %s", player.Name))
		}
	}

	return scored, nil
}

// scoreProjection is the pure scoring computation: for each active
// category, look up the projected stat, multiply by the category rate,
// and accumulate. Stats the source did not publish are left out of the
// breakdown entirely.
func scoreProjection(proj *model.Projection, cats []model.ScoringCategory, playerType string) (float64, map[string]model.CategoryPoints) {
	total := 0.0
	breakdown := make(map[string]model.CategoryPoints, len(cats))

	for _, cat := range cats {
		value := statValue(proj, cat.StatCode, playerType)
		if value == nil {
			continue
		}

		points := *value * cat.PointsPerUnit
		total += points
		breakdown[cat.StatCode] = model.CategoryPoints{
			StatName:      cat.StatName,
			Value:         *value,
			PointsPerUnit: cat.PointsPerUnit,
			Points:        round2(points),
		}
	}

	return round2(total), breakdown
}

// statValue maps a category stat code onto the projection. A nil return
// means the stat is absent, which is different from zero. Singles are
// never published directly and are always derived from the other hit
// stats.
func statValue(proj *model.Projection, statCode, playerType string) *float64 {
	code := strings.ToUpper(strings.TrimSpace(statCode))

	if playerType == model.PlayerTypeBatter {
		switch code {
		case "1B":
			singles := math.Max(0, orZero(proj.H)-orZero(proj.Doubles)-orZero(proj.Triples)-orZero(proj.HR))
			return &singles
		case "AB":
			return proj.AB
		case "PA":
			return proj.PA
		case "H":
			return proj.H
		case "2B":
			return proj.Doubles
		case "3B":
			return proj.Triples
		case "HR":
			return proj.HR
		case "R":
			return proj.R
		case "RBI":
			return proj.RBI
		case "SB":
			return proj.SB
		case "CS":
			return proj.CS
		case "BB":
			return proj.BB
		case "K", "SO":
			return proj.K
		case "HBP":
			return proj.HBP
		case "AVG":
			return proj.AVG
		case "OBP":
			return proj.OBP
		case "SLG":
			return proj.SLG
		case "OPS":
			return proj.OPS
		}
		return nil
	}

	switch code {
	case "IP":
		return proj.IP
	case "W":
		return proj.W
	case "L":
		return proj.L
	case "SV":
		return proj.SV
	case "HLD":
		return proj.HLD
	case "K", "SO":
		return proj.K
	case "BB":
		return proj.BB
	case "H":
		return proj.H
	case "ER":
		return proj.ER
	case "QS":
		return proj.QS
	case "CG":
		return proj.CG
	case "SHO":
		return proj.SHO
	case "ERA":
		return proj.ERA
	case "WHIP":
		return proj.WHIP
	}
	return nil
}

func orZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
