package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"

	"github.com/lucasveiga/palpiteiro/internal/domain/match"
	"github.com/lucasveiga/palpiteiro/internal/domain/standings"
)

type matchTableModel struct {
	ID          string    `db:"id"`
	HomeTeam    string    `db:"home_team"`
	AwayTeam    string    `db:"away_team"`
	MatchDate   string    `db:"match_date"`
	MatchTime   string    `db:"match_time"`
	Competition string    `db:"competition"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type standingsRowModel struct {
	Position int    `db:"position"`
	Team     string `db:"team"`
	Points   int    `db:"points"`
	Played   int    `db:"played"`
	Wins     int    `db:"wins"`
	Draws    int    `db:"draws"`
	Losses   int    `db:"losses"`
}

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) SaveDocument(ctx context.Context, doc *match.Document) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save document: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const upsertMatch = `
INSERT INTO matches (id, home_team, away_team, match_date, match_time, competition)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    match_date = EXCLUDED.match_date,
    match_time = EXCLUDED.match_time,
    competition = EXCLUDED.competition,
    updated_at = now()`

	for _, game := range doc.Matches {
		if _, err := tx.ExecContext(ctx, upsertMatch,
			game.ID, game.HomeTeam, game.AwayTeam, game.Date, game.Time, game.Competition); err != nil {
			return fmt.Errorf("upsert match %s: %w", game.ID, err)
		}
	}

	const upsertStats = `
INSERT INTO match_statistics (match_id, payload)
VALUES ($1, $2)
ON CONFLICT (match_id) DO UPDATE SET
    payload = EXCLUDED.payload,
    updated_at = now()`

	for id, stats := range doc.Statistics {
		payload, err := sonic.Marshal(stats)
		if err != nil {
			return fmt.Errorf("encode statistics %s: %w", id, err)
		}
		if _, err := tx.ExecContext(ctx, upsertStats, id, payload); err != nil {
			return fmt.Errorf("upsert statistics %s: %w", id, err)
		}
	}

	if len(doc.Standings) > 0 {
		if _, err := tx.ExecContext(ctx, `DELETE FROM league_standings`); err != nil {
			return fmt.Errorf("clear standings: %w", err)
		}
		const insertRow = `
INSERT INTO league_standings (position, team, points, played, wins, draws, losses)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
		for _, row := range doc.Standings {
			if _, err := tx.ExecContext(ctx, insertRow,
				row.Position, row.Team, row.Points, row.Played, row.Wins, row.Draws, row.Losses); err != nil {
				return fmt.Errorf("insert standings row %d: %w", row.Position, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save document: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetMatch(ctx context.Context, matchID string) (*match.Match, error) {
	var row matchTableModel
	err := r.db.GetContext(ctx, &row, `SELECT * FROM matches WHERE id = $1`, matchID)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select match %s: %w", matchID, err)
	}

	out := matchFromModel(row)
	return &out, nil
}

func (r *MatchRepository) GetStatistics(ctx context.Context, matchID string) (*match.Statistics, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `SELECT payload FROM match_statistics WHERE match_id = $1`, matchID)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select statistics %s: %w", matchID, err)
	}

	var stats match.Statistics
	if err := sonic.Unmarshal(payload, &stats); err != nil {
		return nil, fmt.Errorf("decode statistics %s: %w", matchID, err)
	}
	return &stats, nil
}

func (r *MatchRepository) ListMatches(ctx context.Context) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT * FROM matches ORDER BY id`); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromModel(row))
	}
	return out, nil
}

// ListStandings returns the latest stored league table.
func (r *MatchRepository) ListStandings(ctx context.Context) ([]standings.Row, error) {
	var rows []standingsRowModel
	if err := r.db.SelectContext(ctx, &rows, `SELECT position, team, points, played, wins, draws, losses FROM league_standings ORDER BY position`); err != nil {
		return nil, fmt.Errorf("select standings: %w", err)
	}

	out := make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.Row{
			Position: row.Position,
			Team:     row.Team,
			Points:   row.Points,
			Played:   row.Played,
			Wins:     row.Wins,
			Draws:    row.Draws,
			Losses:   row.Losses,
		})
	}
	return out, nil
}

func matchFromModel(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		HomeTeam:    row.HomeTeam,
		AwayTeam:    row.AwayTeam,
		Date:        row.MatchDate,
		Time:        row.MatchTime,
		Competition: row.Competition,
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
