package db

import (
	"context"
	"errors"

	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/santiagoventura/predraft/model"
)

var (
	ErrPlayerNotFound     error = errors.New("player not found")
	ErrLeagueNotFound     error = errors.New("league not found")
	ErrDraftNotFound      error = errors.New("draft not found")
	ErrProjectionNotFound error = errors.New("projection not found")
	ErrRankingNotFound    error = errors.New("ranking not found")
)

func New(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

// DBPosition adapts model.Position to pgx text scanning.
type DBPosition struct {
	position model.Position
}

func (p *DBPosition) ScanText(v pgtype.Text) error {
	p.position = model.ParsePosition(v.String)
	return nil
}

func (p *DBPosition) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.position),
		Valid:  true,
	}, nil
}

// DBPositionList stores a player's eligibility list as a comma separated
// string, e.g. "1B,OF".
type DBPositionList struct {
	positions []model.Position
}

func (l *DBPositionList) ScanText(v pgtype.Text) error {
	l.positions = model.ParsePositionList(v.String)
	return nil
}

func (l *DBPositionList) TextValue() (pgtype.Text, error) {
	p := model.Player{Positions: l.positions}
	return pgtype.Text{
		String: p.PositionsLabel(),
		Valid:  true,
	}, nil
}

type DBMLBTeam struct {
	team *model.MLBTeam
}

func (t *DBMLBTeam) ScanText(v pgtype.Text) error {
	t.team = model.ParseTeam(v.String)
	return nil
}

func (t *DBMLBTeam) TextValue() (pgtype.Text, error) {
	team := t.team
	if team == nil {
		team = model.TEAM_FA
	}
	return pgtype.Text{
		String: team.String(),
		Valid:  true,
	}, nil
}

// DBRosterSlot stores a roster slot by its label, e.g. "OF2". A NULL
// column scans to a nil slot.
type DBRosterSlot struct {
	slot *model.RosterSlot
}

func (s *DBRosterSlot) ScanText(v pgtype.Text) error {
	if !v.Valid || v.String == "" {
		s.slot = nil
		return nil
	}
	slot, err := model.ParseRosterSlot(v.String)
	if err != nil {
		return err
	}
	s.slot = &slot
	return nil
}

func (s *DBRosterSlot) TextValue() (pgtype.Text, error) {
	if s.slot == nil {
		return pgtype.Text{}, nil
	}
	return pgtype.Text{
		String: s.slot.Label(),
		Valid:  true,
	}, nil
}
