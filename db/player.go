package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/santiagoventura/predraft/model"
)

func (db *postgresDB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	const query = `SELECT id, name, team, positions, primary_position, is_pitcher, created, updated
					FROM players WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("error scanning player %s: %w", id, err)
	}
	return p, nil
}

func (db *postgresDB) SavePlayer(ctx context.Context, p *model.Player) error {
	if p == nil {
		return errors.New("SavePlayer - player is nil")
	}

	const query = `INSERT INTO players (
			id,
			name,
			team,
			positions,
			primary_position,
			is_pitcher
		) VALUES (
			@id,
			@name,
			@team,
			@positions,
			@primaryPosition,
			@isPitcher
		) ON CONFLICT (id) DO UPDATE
			SET name=@name,
				team=@team,
				positions=@positions,
				primary_position=@primaryPosition,
				is_pitcher=@isPitcher,
				updated=@updated`

	args := pgx.NamedArgs{
		"id":              p.ID,
		"name":            p.Name,
		"team":            &DBMLBTeam{team: p.Team},
		"positions":       &DBPositionList{positions: p.Positions},
		"primaryPosition": &DBPosition{position: p.PrimaryPosition},
		"isPitcher":       p.IsPitcher,
		"updated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving player(%s): %w", p.ID, err)
	}
	return nil
}

func (db *postgresDB) ListPlayers(ctx context.Context) ([]model.Player, error) {
	const query = `SELECT id, name, team, positions, primary_position, is_pitcher, created, updated
					FROM players ORDER BY name`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing players: %w", err)
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

func scanPlayer(row pgx.Row) (*model.Player, error) {
	var result model.Player
	var team DBMLBTeam
	var positions DBPositionList
	var primary DBPosition
	var created, updated pgtype.Timestamptz
	err := row.Scan(
		&result.ID,
		&result.Name,
		&team,
		&positions,
		&primary,
		&result.IsPitcher,
		&created,
		&updated)

	if err != nil {
		return nil, err
	}

	result.Team = team.team
	result.Positions = positions.positions
	result.PrimaryPosition = primary.position
	result.Created = created.Time
	result.Updated = updated.Time

	return &result, nil
}

const projectionColumns = `player_id, season, source,
		pa, ab, h, doubles, triples, hr, r, rbi, sb, cs, hbp, avg, obp, slg, ops,
		ip, w, l, sv, hld, k, bb, er, qs, cg, sho, era, whip, imported`

func (db *postgresDB) SaveProjection(ctx context.Context, proj *model.Projection) error {
	if proj == nil {
		return errors.New("SaveProjection - projection is nil")
	}

	const query = `INSERT INTO player_projections (` + projectionColumns + `)
		VALUES (
			@playerID, @season, @source,
			@pa, @ab, @h, @doubles, @triples, @hr, @r, @rbi, @sb, @cs, @hbp, @avg, @obp, @slg, @ops,
			@ip, @w, @l, @sv, @hld, @k, @bb, @er, @qs, @cg, @sho, @era, @whip, @imported
		) ON CONFLICT (player_id, season, source) DO UPDATE
			SET pa=@pa, ab=@ab, h=@h, doubles=@doubles, triples=@triples, hr=@hr,
				r=@r, rbi=@rbi, sb=@sb, cs=@cs, hbp=@hbp, avg=@avg, obp=@obp, slg=@slg, ops=@ops,
				ip=@ip, w=@w, l=@l, sv=@sv, hld=@hld, k=@k, bb=@bb, er=@er,
				qs=@qs, cg=@cg, sho=@sho, era=@era, whip=@whip, imported=@imported`

	args := pgx.NamedArgs{
		"playerID": proj.PlayerID,
		"season":   proj.Season,
		"source":   proj.Source,
		"pa":       proj.PA,
		"ab":       proj.AB,
		"h":        proj.H,
		"doubles":  proj.Doubles,
		"triples":  proj.Triples,
		"hr":       proj.HR,
		"r":        proj.R,
		"rbi":      proj.RBI,
		"sb":       proj.SB,
		"cs":       proj.CS,
		"hbp":      proj.HBP,
		"avg":      proj.AVG,
		"obp":      proj.OBP,
		"slg":      proj.SLG,
		"ops":      proj.OPS,
		"ip":       proj.IP,
		"w":        proj.W,
		"l":        proj.L,
		"sv":       proj.SV,
		"hld":      proj.HLD,
		"k":        proj.K,
		"bb":       proj.BB,
		"er":       proj.ER,
		"qs":       proj.QS,
		"cg":       proj.CG,
		"sho":      proj.SHO,
		"era":      proj.ERA,
		"whip":     proj.WHIP,
		"imported": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving projection for %s (%d, %s): %w", proj.PlayerID, proj.Season, proj.Source, err)
	}
	return nil
}

func (db *postgresDB) GetProjection(ctx context.Context, playerID string, season int, source string) (*model.Projection, error) {
	const query = `SELECT ` + projectionColumns + ` FROM player_projections
					WHERE player_id=@playerID AND season=@season AND source=@source`

	args := pgx.NamedArgs{
		"playerID": playerID,
		"season":   season,
		"source":   source,
	}
	row := db.pool.QueryRow(ctx, query, args)
	proj, err := scanProjection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProjectionNotFound
		}
		return nil, fmt.Errorf("error scanning projection for %s: %w", playerID, err)
	}
	return proj, nil
}

func (db *postgresDB) ListProjections(ctx context.Context, season int, source string) ([]model.Projection, error) {
	const query = `SELECT ` + projectionColumns + ` FROM player_projections
					WHERE season=@season AND source=@source ORDER BY player_id`

	args := pgx.NamedArgs{
		"season": season,
		"source": source,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing projections: %w", err)
	}

	results := make([]model.Projection, 0, 64)
	for rows.Next() {
		proj, err := scanProjection(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func scanProjection(row pgx.Row) (*model.Projection, error) {
	var result model.Projection
	var imported pgtype.Timestamptz
	err := row.Scan(
		&result.PlayerID,
		&result.Season,
		&result.Source,
		&result.PA,
		&result.AB,
		&result.H,
		&result.Doubles,
		&result.Triples,
		&result.HR,
		&result.R,
		&result.RBI,
		&result.SB,
		&result.CS,
		&result.HBP,
		&result.AVG,
		&result.OBP,
		&result.SLG,
		&result.OPS,
		&result.IP,
		&result.W,
		&result.L,
		&result.SV,
		&result.HLD,
		&result.K,
		&result.BB,
		&result.ER,
		&result.QS,
		&result.CG,
		&result.SHO,
		&result.ERA,
		&result.WHIP,
		&imported)

	if err != nil {
		return nil, err
	}

	result.ImportedAt = imported.Time
	return &result, nil
}

func (db *postgresDB) SaveRanking(ctx context.Context, r *model.Ranking) error {
	if r == nil {
		return errors.New("SaveRanking - ranking is nil")
	}

	const query = `INSERT INTO player_rankings (player_id, season, source, overall_rank, adp)
		VALUES (@playerID, @season, @source, @overallRank, @adp)
		ON CONFLICT (player_id, season, source) DO UPDATE
			SET overall_rank=@overallRank, adp=@adp`

	args := pgx.NamedArgs{
		"playerID":    r.PlayerID,
		"season":      r.Season,
		"source":      r.Source,
		"overallRank": r.OverallRank,
		"adp":         r.ADP,
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error saving ranking for %s: %w", r.PlayerID, err)
	}
	return nil
}

func (db *postgresDB) GetRanking(ctx context.Context, playerID string, season int, source string) (*model.Ranking, error) {
	const query = `SELECT player_id, season, source, overall_rank, adp FROM player_rankings
					WHERE player_id=@playerID AND season=@season AND source=@source`

	args := pgx.NamedArgs{
		"playerID": playerID,
		"season":   season,
		"source":   source,
	}
	var r model.Ranking
	row := db.pool.QueryRow(ctx, query, args)
	if err := row.Scan(&r.PlayerID, &r.Season, &r.Source, &r.OverallRank, &r.ADP); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRankingNotFound
		}
		return nil, fmt.Errorf("error scanning ranking for %s: %w", playerID, err)
	}
	return &r, nil
}

func (db *postgresDB) GetRankings(ctx context.Context, season int, source string) ([]model.Ranking, error) {
	const query = `SELECT player_id, season, source, overall_rank, adp FROM player_rankings
					WHERE season=@season AND source=@source ORDER BY overall_rank`

	args := pgx.NamedArgs{
		"season": season,
		"source": source,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing rankings: %w", err)
	}

	results := make([]model.Ranking, 0, 64)
	for rows.Next() {
		var r model.Ranking
		if err := rows.Scan(&r.PlayerID, &r.Season, &r.Source, &r.OverallRank, &r.ADP); err != nil {
			return nil, fmt.Errorf("error scanning ranking: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

// BestRankings returns one ranking per player for the season: the one
// with the lowest overall rank across sources.
func (db *postgresDB) BestRankings(ctx context.Context, season int) ([]model.Ranking, error) {
	const query = `SELECT DISTINCT ON (player_id) player_id, season, source, overall_rank, adp
					FROM player_rankings
					WHERE season=@season
					ORDER BY player_id, overall_rank`

	rows, err := db.pool.Query(ctx, query, pgx.NamedArgs{"season": season})
	if err != nil {
		return nil, fmt.Errorf("error listing best rankings: %w", err)
	}

	results := make([]model.Ranking, 0, 64)
	for rows.Next() {
		var r model.Ranking
		if err := rows.Scan(&r.PlayerID, &r.Season, &r.Source, &r.OverallRank, &r.ADP); err != nil {
			return nil, fmt.Errorf("error scanning ranking: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}

func (db *postgresDB) UpsertPlayerScore(ctx context.Context, score *model.PlayerScore) error {
	if score == nil {
		return errors.New("UpsertPlayerScore - score is nil")
	}

	const query = `INSERT INTO player_scores (player_id, league_id, season, source, total_points, breakdown, calculated)
		VALUES (@playerID, @leagueID, @season, @source, @totalPoints, @breakdown, @calculated)
		ON CONFLICT (player_id, league_id, season, source) DO UPDATE
			SET total_points=@totalPoints, breakdown=@breakdown, calculated=@calculated`

	breakdown, err := json.Marshal(score.Breakdown)
	if err != nil {
		return fmt.Errorf("error marshaling score breakdown for %s: %w", score.PlayerID, err)
	}

	args := pgx.NamedArgs{
		"playerID":    score.PlayerID,
		"leagueID":    score.LeagueID,
		"season":      score.Season,
		"source":      score.Source,
		"totalPoints": score.TotalPoints,
		"breakdown":   breakdown,
		"calculated": pgtype.Timestamptz{
			Time:             db.clock.Now().UTC(),
			InfinityModifier: pgtype.Finite,
			Valid:            true,
		},
	}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error upserting score for %s in league %d: %w", score.PlayerID, score.LeagueID, err)
	}
	return nil
}

const playerScoreQuery = `SELECT s.player_id, s.league_id, s.season, s.source,
			s.total_points, s.breakdown, s.calculated, p.name, p.is_pitcher
		FROM player_scores AS s
		INNER JOIN players AS p ON s.player_id=p.id
		WHERE s.league_id=@leagueID AND s.season=@season AND s.source=@source
		ORDER BY s.total_points DESC`

func (db *postgresDB) GetPlayerScores(ctx context.Context, leagueID int32, season int, source string) ([]model.PlayerScore, error) {
	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"season":   season,
		"source":   source,
	}
	rows, err := db.pool.Query(ctx, playerScoreQuery, args)
	if err != nil {
		return nil, fmt.Errorf("error querying player scores: %w", err)
	}
	return collectScores(rows)
}

func (db *postgresDB) TopPlayerScores(ctx context.Context, leagueID int32, season int, source string, limit int) ([]model.PlayerScore, error) {
	const query = playerScoreQuery + ` LIMIT @limit`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"season":   season,
		"source":   source,
		"limit":    limit,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying top player scores: %w", err)
	}
	return collectScores(rows)
}

// SeasonPlayerScores returns one score per player for the league and
// season, regardless of source. When a player was scored from several
// sources the most recently calculated one wins.
func (db *postgresDB) SeasonPlayerScores(ctx context.Context, leagueID int32, season int) ([]model.PlayerScore, error) {
	const query = `SELECT s.player_id, s.league_id, s.season, s.source,
				s.total_points, s.breakdown, s.calculated, p.name, p.is_pitcher
			FROM (
				SELECT DISTINCT ON (player_id) *
				FROM player_scores
				WHERE league_id=@leagueID AND season=@season
				ORDER BY player_id, calculated DESC
			) AS s
			INNER JOIN players AS p ON s.player_id=p.id
			ORDER BY s.total_points DESC`

	args := pgx.NamedArgs{
		"leagueID": leagueID,
		"season":   season,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error querying season player scores: %w", err)
	}
	return collectScores(rows)
}

func collectScores(rows pgx.Rows) ([]model.PlayerScore, error) {
	results := make([]model.PlayerScore, 0, 32)
	for rows.Next() {
		var s model.PlayerScore
		var breakdown []byte
		var calculated pgtype.Timestamptz
		err := rows.Scan(&s.PlayerID, &s.LeagueID, &s.Season, &s.Source,
			&s.TotalPoints, &breakdown, &calculated, &s.Name, &s.IsPitcher)
		if err != nil {
			return nil, fmt.Errorf("error scanning player score: %w", err)
		}

		if len(breakdown) > 0 {
			if err := json.Unmarshal(breakdown, &s.Breakdown); err != nil {
				return nil, fmt.Errorf("error unmarshaling score breakdown for %s: %w", s.PlayerID, err)
			}
		}
		s.CalculatedAt = calculated.Time

		results = append(results, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error with rows: %w", err)
	}

	return results, nil
}
