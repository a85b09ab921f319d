package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/santiagoventura/predraft/model"
)

// AddLeague inserts the league, its roster template, and its teams in a
// single transaction. The generated league and team IDs are written back
// onto the passed-in structs.
func (db *postgresDB) AddLeague(ctx context.Context, league *model.League) error {
	if league == nil {
		return errors.New("AddLeague - league is nil")
	}
	if len(league.Positions) == 0 {
		league.Positions = model.DefaultRosterConfig()
	}

	const insertLeague = `INSERT INTO leagues (name, num_teams) VALUES (@name, @numTeams) RETURNING id`
	const insertPosition = `INSERT INTO league_positions (league_id, code, slot_count, display_order)
		VALUES (@leagueID, @code, @slotCount, @displayOrder)`
	const insertTeam = `INSERT INTO teams (league_id, name, draft_slot)
		VALUES (@leagueID, @name, @draftSlot) RETURNING id`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{
		"name":     league.Name,
		"numTeams": league.NumTeams,
	}
	if err := tx.QueryRow(ctx, insertLeague, args).Scan(&league.ID); err != nil {
		return fmt.Errorf("error inserting league: %w", err)
	}

	for _, p := range league.Positions {
		args := pgx.NamedArgs{
			"leagueID":     league.ID,
			"code":         &DBPosition{position: p.Code},
			"slotCount":    p.SlotCount,
			"displayOrder": p.DisplayOrder,
		}
		if _, err := tx.Exec(ctx, insertPosition, args); err != nil {
			return fmt.Errorf("error inserting league position %s: %w", p.Code, err)
		}
	}

	for i := range league.Teams {
		t := &league.Teams[i]
		t.LeagueID = league.ID
		args := pgx.NamedArgs{
			"leagueID":  league.ID,
			"name":      t.Name,
			"draftSlot": t.DraftSlot,
		}
		if err := tx.QueryRow(ctx, insertTeam, args).Scan(&t.ID); err != nil {
			return fmt.Errorf("error inserting team %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting league transaction: %w", err)
	}

	return nil
}

// GetLeague loads the league with its roster template and its teams
// sorted by draft slot.
func (db *postgresDB) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	const query = `SELECT id, name, num_teams FROM leagues WHERE id=@id`

	var l model.League
	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	if err := row.Scan(&l.ID, &l.Name, &l.NumTeams); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrLeagueNotFound
		}
		return nil, fmt.Errorf("error scanning league %d: %w", id, err)
	}

	positions, err := db.getLeaguePositions(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Positions = positions

	teams, err := db.getLeagueTeams(ctx, id)
	if err != nil {
		return nil, err
	}
	l.Teams = teams

	return &l, nil
}

func (db *postgresDB) ListLeagues(ctx context.Context) ([]model.League, error) {
	const query = `SELECT id, name, num_teams FROM leagues ORDER BY id`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing leagues: %w", err)
	}

	results := make([]model.League, 0, 4)
	for rows.Next() {
		var l model.League
		if err := rows.Scan(&l.ID, &l.Name, &l.NumTeams); err != nil {
			return nil, fmt.Errorf("error scanning league: %w", err)
		}
		results = append(results, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) getLeaguePositions(ctx context.Context, leagueID int32) ([]model.RosterPosition, error) {
	const query = `SELECT code, slot_count, display_order FROM league_positions
					WHERE league_id=@leagueID ORDER BY display_order`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying league positions: %w", err)
	}

	results := make([]model.RosterPosition, 0, 8)
	for rows.Next() {
		var p model.RosterPosition
		var code DBPosition
		if err := rows.Scan(&code, &p.SlotCount, &p.DisplayOrder); err != nil {
			return nil, fmt.Errorf("error scanning league position: %w", err)
		}
		p.Code = code.position
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) getLeagueTeams(ctx context.Context, leagueID int32) ([]model.Team, error) {
	const query = `SELECT id, league_id, name, draft_slot FROM teams
					WHERE league_id=@leagueID ORDER BY draft_slot`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"leagueID": leagueID})
	if err != nil {
		return nil, fmt.Errorf("error querying teams: %w", err)
	}

	results := make([]model.Team, 0, 12)
	for rows.Next() {
		var t model.Team
		if err := rows.Scan(&t.ID, &t.LeagueID, &t.Name, &t.DraftSlot); err != nil {
			return nil, fmt.Errorf("error scanning team: %w", err)
		}
		results = append(results, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

// SaveScoringCategories replaces the league's category set. Replacing
// and re-reading is how category edits become visible to the next score
// run; nothing holds categories in memory.
func (db *postgresDB) SaveScoringCategories(ctx context.Context, leagueID int32, cats []model.ScoringCategory) error {
	const del = `DELETE FROM league_scoring_categories WHERE league_id=@leagueID`
	const insert = `INSERT INTO league_scoring_categories
			(league_id, player_type, stat_code, stat_name, points_per_unit, display_order, active)
		VALUES (@leagueID, @playerType, @statCode, @statName, @pointsPerUnit, @displayOrder, @active)`

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, del, pgx.NamedArgs{"leagueID": leagueID}); err != nil {
		return fmt.Errorf("error clearing scoring categories: %w", err)
	}

	for _, c := range cats {
		args := pgx.NamedArgs{
			"leagueID":      leagueID,
			"playerType":    c.PlayerType,
			"statCode":      c.StatCode,
			"statName":      c.StatName,
			"pointsPerUnit": c.PointsPerUnit,
			"displayOrder":  c.DisplayOrder,
			"active":        c.Active,
		}
		if _, err := tx.Exec(ctx, insert, args); err != nil {
			return fmt.Errorf("error inserting scoring category %s/%s: %w", c.PlayerType, c.StatCode, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting scoring categories: %w", err)
	}

	return nil
}

func (db *postgresDB) GetScoringCategories(ctx context.Context, leagueID int32, playerType string) ([]model.ScoringCategory, error) {
	const query = `SELECT league_id, player_type, stat_code, stat_name, points_per_unit, display_order, active
					FROM league_scoring_categories
					WHERE league_id=@leagueID AND player_type=@playerType AND active
					ORDER BY display_order`

	args := pgx.NamedArgs{
		"leagueID":   leagueID,
		"playerType": playerType,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying scoring categories: %w", err)
	}

	results := make([]model.ScoringCategory, 0, 12)
	for rows.Next() {
		var c model.ScoringCategory
		err := rows.Scan(&c.LeagueID, &c.PlayerType, &c.StatCode, &c.StatName,
			&c.PointsPerUnit, &c.DisplayOrder, &c.Active)
		if err != nil {
			return nil, fmt.Errorf("error scanning scoring category: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}
