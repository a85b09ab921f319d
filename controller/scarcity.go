package controller

import (
	"fmt"
	"math"
	"slices"

	"github.com/santiagoventura/predraft/model"
)

// scarcityPositions is every position the analyzer reports on. UTIL is
// deliberately absent: every batter fills UTIL, so it is never scarce.
var scarcityPositions = []model.Position{
	model.POS_C, model.POS_1B, model.POS_2B, model.POS_3B, model.POS_SS,
	model.POS_OF, model.POS_DH, model.POS_SP, model.POS_RP, model.POS_P,
}

// AnalyzeScarcity rates how thin each position is in the remaining
// pool. The tier drop is the points gap between the best and
// second-best player at the position; the availability note predicts
// whether the second-best will survive until the team's next turn,
// judged by ADP against the upcoming pick number.
func AnalyzeScarcity(pool []model.RatedPlayer, needs map[model.Position]int, picksUntilNextTurn, currentOverallPick int) map[model.Position]model.ScarcityReport {
	reports := make(map[model.Position]model.ScarcityReport)

	for _, pos := range scarcityPositions {
		players := playersAtPosition(pool, pos)
		if len(players) == 0 {
			continue
		}

		slices.SortStableFunc(players, func(a, b model.RatedPlayer) int {
			if a.ProjectedPoints > b.ProjectedPoints {
				return -1
			}
			if a.ProjectedPoints < b.ProjectedPoints {
				return 1
			}
			return 0
		})

		tierDrop := 0.0
		if len(players) >= 2 {
			tierDrop = round1(players[0].ProjectedPoints - players[1].ProjectedPoints)
		}

		note := ""
		if picksUntilNextTurn > 0 && len(players) >= 2 {
			note = availabilityNote(&players[1], currentOverallPick+picksUntilNextTurn)
		}

		top := make([]model.ScarcityEntry, 0, 3)
		for _, p := range players[:min(3, len(players))] {
			top = append(top, model.ScarcityEntry{
				Name:   p.Name,
				Points: p.ProjectedPoints,
				ADP:    p.ADP,
			})
		}

		reports[pos] = model.ScarcityReport{
			Level:            scarcityLevel(tierDrop),
			SlotsNeeded:      needs[pos],
			PlayersAvailable: len(players),
			TierDropPoints:   tierDrop,
			AvailabilityNote: note,
			Top:              top,
		}
	}

	return reports
}

func playersAtPosition(pool []model.RatedPlayer, pos model.Position) []model.RatedPlayer {
	result := make([]model.RatedPlayer, 0, 16)
	for _, p := range pool {
		if pos.IsPitcherPosition() {
			// Any pitcher counts for the P pool; SP/RP need the listing.
			if p.IsPitcher && (containsPosition(p.Positions, pos) || containsPosition(p.Positions, model.POS_P) || pos == model.POS_P) {
				result = append(result, p)
			}
			continue
		}
		if containsPosition(p.Positions, pos) {
			result = append(result, p)
		}
	}
	return result
}

func containsPosition(positions []model.Position, pos model.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

// availabilityNote judges whether the second-best player at a position
// will still be on the board at the team's next pick.
func availabilityNote(second *model.RatedPlayer, nextPickNumber int) string {
	adp := 999.0
	if second.ADP != nil {
		adp = *second.ADP
	} else if second.Rank != nil {
		adp = float64(*second.Rank)
	}

	if adp < float64(nextPickNumber) {
		return fmt.Sprintf("%s (ADP %.1f) likely gone by your next pick (#%d)", second.Name, adp, nextPickNumber)
	}
	if adp < float64(nextPickNumber+5) {
		return fmt.Sprintf("%s at risk, ADP %.1f is close to next pick #%d", second.Name, adp, nextPickNumber)
	}
	return "options likely available next round"
}

func scarcityLevel(tierDrop float64) model.ScarcityLevel {
	switch {
	case tierDrop >= 50:
		return model.ScarcityCritical
	case tierDrop >= 30:
		return model.ScarcityHigh
	case tierDrop >= 15:
		return model.ScarcityMedium
	default:
		return model.ScarcityLow
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
