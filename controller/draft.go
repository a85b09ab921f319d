package controller

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santiagoventura/predraft/model"
)

func (c *controller) InitializeDraft(ctx context.Context, leagueID int32, name string) (*model.Draft, error) {
	league, err := c.db.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	if name == "" {
		name = fmt.Sprintf("Draft - %s", c.clock.Now().UTC().Format("2006-01-02 15:04"))
	}

	return c.db.CreateDraft(ctx, league, name)
}

func (c *controller) StartDraft(ctx context.Context, draftID int32) (*model.Draft, error) {
	return c.db.StartDraft(ctx, draftID)
}

func (c *controller) PauseDraft(ctx context.Context, draftID int32) error {
	draft, err := c.db.GetDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if !draft.IsInProgress() {
		return model.ErrDraftNotInProgress
	}

	return c.db.SetDraftStatus(ctx, draftID, model.DraftStatusPaused)
}

func (c *controller) ResumeDraft(ctx context.Context, draftID int32) error {
	draft, err := c.db.GetDraft(ctx, draftID)
	if err != nil {
		return err
	}
	if draft.Status != model.DraftStatusPaused {
		return model.ErrDraftNotInProgress
	}

	return c.db.SetDraftStatus(ctx, draftID, model.DraftStatusInProgress)
}

func (c *controller) GetDraft(ctx context.Context, draftID int32) (*model.Draft, error) {
	return c.db.GetDraft(ctx, draftID)
}

func (c *controller) CurrentPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	return c.db.GetCurrentPick(ctx, draftID)
}

func (c *controller) MakePick(ctx context.Context, draftID int32, playerID, slotLabel string, advisorContext []byte) (*model.DraftPick, error) {
	var slot *model.RosterSlot
	if slotLabel != "" {
		s, err := model.ParseRosterSlot(slotLabel)
		if err != nil {
			return nil, err
		}
		slot = &s
	}

	return c.db.MakePick(ctx, draftID, playerID, slot, advisorContext)
}

func (c *controller) RevertLastPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	return c.db.RevertLastPick(ctx, draftID)
}

func (c *controller) TeamNeeds(ctx context.Context, draftID, teamID int32) (map[model.Position]int, error) {
	draft, err := c.db.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	league, err := c.db.GetLeague(ctx, draft.LeagueID)
	if err != nil {
		return nil, err
	}
	roster, err := c.db.GetTeamRoster(ctx, draftID, teamID)
	if err != nil {
		return nil, err
	}

	filled := make(map[model.Position]int, len(league.Positions))
	for _, entry := range roster {
		filled[entry.Slot.Code()]++
	}

	needs := make(map[model.Position]int, len(league.Positions))
	for _, rp := range league.Positions {
		need := rp.SlotCount - filled[rp.Code]
		if need > 0 {
			needs[rp.Code] = need
		}
	}

	return needs, nil
}

func (c *controller) EligiblePlayers(ctx context.Context, draftID, teamID int32) ([]model.Player, error) {
	needs, err := c.TeamNeeds(ctx, draftID, teamID)
	if err != nil {
		return nil, err
	}

	available, err := c.db.GetAvailablePlayers(ctx, draftID)
	if err != nil {
		return nil, err
	}

	eligible := make([]model.Player, 0, len(available))
	for _, p := range available {
		for pos := range needs {
			if p.IsEligibleFor(pos) {
				eligible = append(eligible, p)
				break
			}
		}
	}

	return eligible, nil
}

func (c *controller) DraftSummary(ctx context.Context, draftID int32) (*model.DraftSummary, error) {
	picks, err := c.db.GetDraftPicks(ctx, draftID)
	if err != nil {
		return nil, err
	}

	summary := &model.DraftSummary{TotalPicks: len(picks)}
	for _, pick := range picks {
		if !pick.Picked() {
			continue
		}
		summary.CompletedPicks++

		player, err := c.db.GetPlayer(ctx, *pick.PlayerID)
		if err != nil {
			return nil, fmt.Errorf("error loading picked player %s: %w", *pick.PlayerID, err)
		}
		if player.IsPitcher {
			summary.PitchersPicked++
		} else {
			summary.HittersPicked++
		}
	}
	summary.RemainingPicks = summary.TotalPicks - summary.CompletedPicks

	if summary.CompletedPicks > 0 {
		summary.PitcherPercentage = round1(float64(summary.PitchersPicked) * 100 / float64(summary.CompletedPicks))
		summary.HitterPercentage = round1(float64(summary.HittersPicked) * 100 / float64(summary.CompletedPicks))
	}

	return summary, nil
}

// SimulateRounds makes the top recommendation for every remaining pick
// until stopRound is finished or the draft completes. The advisor's
// candidate list is recorded on each pick so simulated drafts can be
// reviewed afterwards.
func (c *controller) SimulateRounds(ctx context.Context, draftID int32, stopRound int, progress func(pick *model.DraftPick, playerName string)) (int, error) {
	draft, err := c.db.GetDraft(ctx, draftID)
	if err != nil {
		return 0, err
	}
	if stopRound < 1 || stopRound > draft.TotalRounds {
		return 0, fmt.Errorf("stop round %d is outside 1..%d", stopRound, draft.TotalRounds)
	}
	if !draft.IsInProgress() {
		return 0, model.ErrDraftNotInProgress
	}

	made := 0
	for draft.IsInProgress() && draft.CurrentRound <= stopRound {
		pick, err := c.db.GetCurrentPick(ctx, draftID)
		if err != nil {
			return made, err
		}

		recs, err := c.GetRecommendations(ctx, draftID, pick.TeamID, 5)
		if err != nil {
			return made, err
		}
		if len(recs) == 0 {
			return made, fmt.Errorf("no candidates left for pick %d", pick.OverallPick)
		}

		advisorContext, err := json.Marshal(recs)
		if err != nil {
			return made, fmt.Errorf("error encoding advisor context: %w", err)
		}

		makePick, err := c.db.MakePick(ctx, draftID, recs[0].PlayerID, nil, advisorContext)
		if err != nil {
			return made, err
		}
		made++

		if progress != nil {
			progress(makePick, recs[0].PlayerName)
		}

		draft, err = c.db.GetDraft(ctx, draftID)
		if err != nil {
			return made, err
		}
	}

	return made, nil
}
