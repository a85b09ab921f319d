package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/santiagoventura/predraft/model"
)

// CreateDraft inserts the draft and one pick row for every selection in
// the entire draft, in snake order, in a single transaction. The number
// of rounds comes from the league's roster template, so a full draft
// exactly fills every roster.
func (db *postgresDB) CreateDraft(ctx context.Context, league *model.League, name string) (*model.Draft, error) {
	if league == nil {
		return nil, errors.New("CreateDraft - league is nil")
	}
	if len(league.Teams) == 0 || len(league.Teams) != league.NumTeams {
		return nil, fmt.Errorf("league %d has %d teams, expected %d", league.ID, len(league.Teams), league.NumTeams)
	}

	const insertDraft = `INSERT INTO drafts (league_id, name, status, draft_type, total_rounds)
		VALUES (@leagueID, @name, @status, @draftType, @totalRounds) RETURNING id`
	const insertPick = `INSERT INTO draft_picks (draft_id, round, pick_in_round, overall_pick, team_id)
		VALUES (@draftID, @round, @pickInRound, @overallPick, @teamID)`

	totalRounds := league.TotalRosterSpots()

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	d := &model.Draft{
		LeagueID:           league.ID,
		Name:               name,
		Status:             model.DraftStatusSetup,
		DraftType:          model.DraftTypeSnake,
		CurrentRound:       1,
		CurrentPickInRound: 1,
		TotalRounds:        totalRounds,
	}

	args := pgx.NamedArgs{
		"leagueID":    d.LeagueID,
		"name":        d.Name,
		"status":      string(d.Status),
		"draftType":   d.DraftType,
		"totalRounds": d.TotalRounds,
	}
	if err := tx.QueryRow(ctx, insertDraft, args).Scan(&d.ID); err != nil {
		return nil, fmt.Errorf("error inserting draft: %w", err)
	}

	overall := 1
	for round := 1; round <= totalRounds; round++ {
		for pickInRound, team := range model.SnakeTeamOrder(league.Teams, round) {
			args := pgx.NamedArgs{
				"draftID":     d.ID,
				"round":       round,
				"pickInRound": pickInRound + 1,
				"overallPick": overall,
				"teamID":      team.ID,
			}
			if _, err := tx.Exec(ctx, insertPick, args); err != nil {
				return nil, fmt.Errorf("error inserting pick %d: %w", overall, err)
			}
			overall++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error commiting draft transaction: %w", err)
	}

	return d, nil
}

const draftColumns = `id, league_id, name, status, draft_type, current_round,
		current_pick_in_round, current_team_id, total_rounds, started, completed`

func (db *postgresDB) GetDraft(ctx context.Context, id int32) (*model.Draft, error) {
	const query = `SELECT ` + draftColumns + ` FROM drafts WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	d, err := scanDraft(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("error scanning draft %d: %w", id, err)
	}
	return d, nil
}

const draftPickColumns = `id, draft_id, round, pick_in_round, overall_pick,
		team_id, player_id, position_filled, advisor_context, picked`

func (db *postgresDB) GetDraftPicks(ctx context.Context, draftID int32) ([]model.DraftPick, error) {
	const query = `SELECT ` + draftPickColumns + ` FROM draft_picks
					WHERE draft_id=@draftID ORDER BY overall_pick`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"draftID": draftID})
	if err != nil {
		return nil, fmt.Errorf("error querying draft picks: %w", err)
	}

	results := make([]model.DraftPick, 0, 64)
	for rows.Next() {
		p, err := scanDraftPick(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

// GetCurrentPick returns the pick the draft cursor points at, or
// ErrNoCurrentPick when the draft is finished and the cursor is past the
// last round.
func (db *postgresDB) GetCurrentPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	d, err := db.GetDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}

	return db.currentPick(ctx, db.pool, d)
}

// querier lets currentPick run against the pool or inside a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (db *postgresDB) currentPick(ctx context.Context, q querier, d *model.Draft) (*model.DraftPick, error) {
	if d.IsComplete() || d.CurrentRound > d.TotalRounds {
		return nil, model.ErrNoCurrentPick
	}

	const query = `SELECT ` + draftPickColumns + ` FROM draft_picks
					WHERE draft_id=@draftID AND round=@round AND pick_in_round=@pickInRound`

	args := pgx.NamedArgs{
		"draftID":     d.ID,
		"round":       d.CurrentRound,
		"pickInRound": d.CurrentPickInRound,
	}
	p, err := scanDraftPick(q.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoCurrentPick
		}
		return nil, fmt.Errorf("error scanning current pick: %w", err)
	}
	return p, nil
}

// StartDraft moves a draft from setup to in_progress and puts the team
// holding the first overall pick on the clock.
func (db *postgresDB) StartDraft(ctx context.Context, draftID int32) (*model.Draft, error) {
	const update = `UPDATE drafts
		SET status=@status, started=@started, current_team_id=@teamID
		WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	d, err := db.lockDraft(ctx, tx, draftID)
	if err != nil {
		return nil, err
	}
	if d.Status != model.DraftStatusSetup {
		return nil, model.ErrDraftAlreadyStarted
	}

	first, err := db.currentPick(ctx, tx, d)
	if err != nil {
		return nil, err
	}

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":     draftID,
		"status": string(model.DraftStatusInProgress),
		"teamID": first.TeamID,
		"started": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := tx.Exec(ctx, update, args); err != nil {
		return nil, fmt.Errorf("error starting draft %d: %w", draftID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error commiting draft start: %w", err)
	}

	d.Status = model.DraftStatusInProgress
	d.CurrentTeamID = &first.TeamID
	d.StartedAt = &now
	return d, nil
}

func (db *postgresDB) SetDraftStatus(ctx context.Context, draftID int32, status model.DraftStatus) error {
	const update = `UPDATE drafts SET status=@status WHERE id=@id`

	args := pgx.NamedArgs{
		"id":     draftID,
		"status": string(status),
	}
	tag, err := db.pool.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error setting draft %d status: %w", draftID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDraftNotFound
	}
	return nil
}

// MakePick records playerID on the current pick. Everything happens in
// one transaction with the draft row locked: validation, slot
// resolution, the roster entry, and the cursor advance either all land
// or none do. A nil slot is resolved from the team's open slots.
func (db *postgresDB) MakePick(ctx context.Context, draftID int32, playerID string, slot *model.RosterSlot, advisorContext []byte) (*model.DraftPick, error) {
	const updatePick = `UPDATE draft_picks
		SET player_id=@playerID, position_filled=@positionFilled,
			advisor_context=@advisorContext, picked=@picked
		WHERE id=@id`
	const insertRosterEntry = `INSERT INTO team_rosters (draft_id, team_id, player_id, slot, draft_pick_id)
		VALUES (@draftID, @teamID, @playerID, @slot, @draftPickID)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	d, err := db.lockDraft(ctx, tx, draftID)
	if err != nil {
		return nil, err
	}
	if !d.IsInProgress() {
		// A draft that never started or already finished has no pick on
		// the clock. Paused is the one state that keeps its cursor.
		if d.Status == model.DraftStatusPaused {
			return nil, model.ErrDraftNotInProgress
		}
		return nil, model.ErrNoCurrentPick
	}

	pick, err := db.currentPick(ctx, tx, d)
	if err != nil {
		return nil, err
	}
	if pick.Picked() {
		return nil, model.ErrPickAlreadyMade
	}

	if err := db.checkPlayerUndrafted(ctx, tx, draftID, playerID); err != nil {
		return nil, err
	}

	if slot == nil {
		resolved, err := db.resolveSlot(ctx, tx, d, pick.TeamID, playerID)
		if err != nil {
			return nil, err
		}
		slot = &resolved
	}

	now := db.clock.Now().UTC()
	args := pgx.NamedArgs{
		"id":             pick.ID,
		"playerID":       playerID,
		"positionFilled": &DBRosterSlot{slot: slot},
		"advisorContext": advisorContext,
		"picked": pgtype.Timestamptz{
			Time:             now,
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := tx.Exec(ctx, updatePick, args); err != nil {
		return nil, fmt.Errorf("error recording pick %d: %w", pick.OverallPick, err)
	}

	args = pgx.NamedArgs{
		"draftID":     draftID,
		"teamID":      pick.TeamID,
		"playerID":    playerID,
		"slot":        slot.Label(),
		"draftPickID": pick.ID,
	}
	if _, err := tx.Exec(ctx, insertRosterEntry, args); err != nil {
		return nil, fmt.Errorf("error inserting roster entry for %s: %w", playerID, err)
	}

	if err := db.advanceCursor(ctx, tx, d); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error commiting pick: %w", err)
	}

	pick.PlayerID = &playerID
	pick.PositionFilled = slot
	pick.AdvisorContext = advisorContext
	pick.PickedAt = &now
	return pick, nil
}

// lockDraft reads the draft row FOR UPDATE so concurrent picks against
// the same draft serialize.
func (db *postgresDB) lockDraft(ctx context.Context, tx pgx.Tx, draftID int32) (*model.Draft, error) {
	const query = `SELECT ` + draftColumns + ` FROM drafts WHERE id=@id FOR UPDATE`

	d, err := scanDraft(tx.QueryRow(ctx, query, pgx.NamedArgs{"id": draftID}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("error locking draft %d: %w", draftID, err)
	}
	return d, nil
}

// checkPlayerUndrafted fails with a descriptive error naming the team
// and overall pick when the player is already on a pick in this draft.
func (db *postgresDB) checkPlayerUndrafted(ctx context.Context, tx pgx.Tx, draftID int32, playerID string) error {
	const query = `SELECT p.overall_pick, t.name FROM draft_picks AS p
					INNER JOIN teams AS t ON p.team_id=t.id
					WHERE p.draft_id=@draftID AND p.player_id=@playerID`

	args := pgx.NamedArgs{
		"draftID":  draftID,
		"playerID": playerID,
	}
	var overallPick int
	var teamName string
	err := tx.QueryRow(ctx, query, args).Scan(&overallPick, &teamName)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking drafted players: %w", err)
	}

	return fmt.Errorf("%w: taken by %s with pick %d", model.ErrPlayerAlreadyDrafted, teamName, overallPick)
}

// resolveSlot loads the league template, the team's filled slots, and
// the player, then applies the standard slot priority.
func (db *postgresDB) resolveSlot(ctx context.Context, tx pgx.Tx, d *model.Draft, teamID int32, playerID string) (model.RosterSlot, error) {
	const playerQuery = `SELECT id, name, team, positions, primary_position, is_pitcher, created, updated
					FROM players WHERE id=@id`
	const filledQuery = `SELECT slot FROM team_rosters WHERE draft_id=@draftID AND team_id=@teamID`

	p, err := scanPlayer(tx.QueryRow(ctx, playerQuery, pgx.NamedArgs{"id": playerID}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.RosterSlot{}, ErrPlayerNotFound
		}
		return model.RosterSlot{}, fmt.Errorf("error loading player %s: %w", playerID, err)
	}

	template, err := db.getLeaguePositions(ctx, d.LeagueID)
	if err != nil {
		return model.RosterSlot{}, err
	}

	args := pgx.NamedArgs{
		"draftID": d.ID,
		"teamID":  teamID,
	}
	rows, err := tx.Query(ctx, filledQuery, args)
	if err != nil {
		return model.RosterSlot{}, fmt.Errorf("error querying filled slots: %w", err)
	}

	filled := make([]model.RosterSlot, 0, 8)
	for rows.Next() {
		var s DBRosterSlot
		if err := rows.Scan(&s); err != nil {
			return model.RosterSlot{}, fmt.Errorf("error scanning filled slot: %w", err)
		}
		if s.slot != nil {
			filled = append(filled, *s.slot)
		}
	}
	if err := rows.Err(); err != nil {
		return model.RosterSlot{}, fmt.Errorf("error with rows: %w", err)
	}

	return model.ResolveSlot(template, filled, p)
}

// advanceCursor moves the draft to the next pick, marking the draft
// completed when the cursor walks off the final round.
func (db *postgresDB) advanceCursor(ctx context.Context, tx pgx.Tx, d *model.Draft) error {
	const update = `UPDATE drafts
		SET current_round=@round, current_pick_in_round=@pickInRound,
			current_team_id=@teamID, status=@status, completed=@completed
		WHERE id=@id`
	const nextTeamQuery = `SELECT team_id FROM draft_picks
		WHERE draft_id=@draftID AND round=@round AND pick_in_round=@pickInRound`

	league, err := db.GetLeague(ctx, d.LeagueID)
	if err != nil {
		return err
	}

	round := d.CurrentRound
	pickInRound := d.CurrentPickInRound + 1
	if pickInRound > league.NumTeams {
		round++
		pickInRound = 1
	}

	status := d.Status
	completed := pgtype.Timestamptz{}
	var teamID *int32

	if round > d.TotalRounds {
		status = model.DraftStatusCompleted
		completed = pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		}
	} else {
		args := pgx.NamedArgs{
			"draftID":     d.ID,
			"round":       round,
			"pickInRound": pickInRound,
		}
		var id int32
		if err := tx.QueryRow(ctx, nextTeamQuery, args).Scan(&id); err != nil {
			return fmt.Errorf("error finding next pick team: %w", err)
		}
		teamID = &id
	}

	args := pgx.NamedArgs{
		"id":          d.ID,
		"round":       round,
		"pickInRound": pickInRound,
		"teamID":      teamID,
		"status":      string(status),
		"completed":   completed,
	}
	if _, err := tx.Exec(ctx, update, args); err != nil {
		return fmt.Errorf("error advancing draft cursor: %w", err)
	}

	return nil
}

// RevertLastPick undoes the most recent made pick: the roster entry is
// deleted, the pick's player fields are cleared, and the cursor moves
// back to the reopened pick. Reverting the final pick of a completed
// draft puts it back in progress.
func (db *postgresDB) RevertLastPick(ctx context.Context, draftID int32) (*model.DraftPick, error) {
	const lastPickQuery = `SELECT ` + draftPickColumns + ` FROM draft_picks
		WHERE draft_id=@draftID AND player_id IS NOT NULL
		ORDER BY overall_pick DESC LIMIT 1`
	const deleteRosterEntry = `DELETE FROM team_rosters WHERE draft_pick_id=@draftPickID`
	const clearPick = `UPDATE draft_picks
		SET player_id=NULL, position_filled=NULL, advisor_context=NULL, picked=NULL
		WHERE id=@id`
	const resetCursor = `UPDATE drafts
		SET current_round=@round, current_pick_in_round=@pickInRound,
			current_team_id=@teamID, status=@status, completed=NULL
		WHERE id=@id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := db.lockDraft(ctx, tx, draftID); err != nil {
		return nil, err
	}

	pick, err := scanDraftPick(tx.QueryRow(ctx, lastPickQuery, pgx.NamedArgs{"draftID": draftID}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNothingToRevert
		}
		return nil, fmt.Errorf("error finding last pick: %w", err)
	}

	if _, err := tx.Exec(ctx, deleteRosterEntry, pgx.NamedArgs{"draftPickID": pick.ID}); err != nil {
		return nil, fmt.Errorf("error deleting roster entry for pick %d: %w", pick.OverallPick, err)
	}

	if _, err := tx.Exec(ctx, clearPick, pgx.NamedArgs{"id": pick.ID}); err != nil {
		return nil, fmt.Errorf("error clearing pick %d: %w", pick.OverallPick, err)
	}

	args := pgx.NamedArgs{
		"id":          draftID,
		"round":       pick.Round,
		"pickInRound": pick.PickInRound,
		"teamID":      pick.TeamID,
		"status":      string(model.DraftStatusInProgress),
	}
	if _, err := tx.Exec(ctx, resetCursor, args); err != nil {
		return nil, fmt.Errorf("error resetting draft cursor: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error commiting revert: %w", err)
	}

	pick.PlayerID = nil
	pick.PositionFilled = nil
	pick.AdvisorContext = nil
	pick.PickedAt = nil
	return pick, nil
}

func (db *postgresDB) GetTeamRoster(ctx context.Context, draftID, teamID int32) ([]model.RosterEntry, error) {
	const query = `SELECT r.id, r.draft_id, r.team_id, r.player_id, r.slot, r.draft_pick_id, p.name
					FROM team_rosters AS r
					INNER JOIN players AS p ON r.player_id=p.id
					WHERE r.draft_id=@draftID AND r.team_id=@teamID
					ORDER BY r.id`

	args := pgx.NamedArgs{
		"draftID": draftID,
		"teamID":  teamID,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying team roster: %w", err)
	}

	results := make([]model.RosterEntry, 0, 22)
	for rows.Next() {
		var e model.RosterEntry
		var slot DBRosterSlot
		err := rows.Scan(&e.ID, &e.DraftID, &e.TeamID, &e.PlayerID, &slot, &e.DraftPickID, &e.PlayerName)
		if err != nil {
			return nil, fmt.Errorf("error scanning roster entry: %w", err)
		}
		if slot.slot != nil {
			e.Slot = *slot.slot
		}
		results = append(results, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) GetAvailablePlayers(ctx context.Context, draftID int32) ([]model.Player, error) {
	const query = `SELECT id, name, team, positions, primary_position, is_pitcher, created, updated
					FROM players AS p
					WHERE NOT EXISTS (
						SELECT 1 FROM draft_picks AS dp
						WHERE dp.draft_id=@draftID AND dp.player_id=p.id
					)
					ORDER BY p.name`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"draftID": draftID})
	if err != nil {
		return nil, fmt.Errorf("error querying available players: %w", err)
	}

	results := make([]model.Player, 0, 64)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func scanDraft(row pgx.Row) (*model.Draft, error) {
	var d model.Draft
	var status string
	var started, completed pgtype.Timestamptz
	err := row.Scan(
		&d.ID,
		&d.LeagueID,
		&d.Name,
		&status,
		&d.DraftType,
		&d.CurrentRound,
		&d.CurrentPickInRound,
		&d.CurrentTeamID,
		&d.TotalRounds,
		&started,
		&completed)

	if err != nil {
		return nil, err
	}

	d.Status = model.DraftStatus(status)
	if started.Valid {
		t := started.Time
		d.StartedAt = &t
	}
	if completed.Valid {
		t := completed.Time
		d.CompletedAt = &t
	}

	return &d, nil
}

func scanDraftPick(row pgx.Row) (*model.DraftPick, error) {
	var p model.DraftPick
	var slot DBRosterSlot
	var picked pgtype.Timestamptz
	err := row.Scan(
		&p.ID,
		&p.DraftID,
		&p.Round,
		&p.PickInRound,
		&p.OverallPick,
		&p.TeamID,
		&p.PlayerID,
		&slot,
		&p.AdvisorContext,
		&picked)

	if err != nil {
		return nil, err
	}

	p.PositionFilled = slot.slot
	if picked.Valid {
		t := picked.Time
		p.PickedAt = &t
	}

	return &p, nil
}
