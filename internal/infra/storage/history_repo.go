package storage

import (
	"context"
	"database/sql"

	pq "github.com/lib/pq"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
)

type HistoryRepo struct{ db *sql.DB }

func NewHistoryRepo(db *sql.DB) *HistoryRepo { return &HistoryRepo{db: db} }

// Upsert por (player_id, round); element-summary reescribe el GW en curso.
func (r *HistoryRepo) Upsert(ctx context.Context, rows []domain.GameweekHistory) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO gameweek_history (player_id, round, points, minutes, goals, assists, bonus, value)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (player_id, round) DO UPDATE SET
  points  = EXCLUDED.points,
  minutes = EXCLUDED.minutes,
  goals   = EXCLUDED.goals,
  assists = EXCLUDED.assists,
  bonus   = EXCLUDED.bonus,
  value   = EXCLUDED.value,
  updated_at = now()
`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, h := range rows {
		if _, err := stmt.ExecContext(ctx,
			h.PlayerID, h.Round, h.Points, h.Minutes, h.Goals, h.Assists, h.Bonus, h.Value,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ByPlayerIDs: devuelve mapa player_id -> historial ordenado por round.
func (r *HistoryRepo) ByPlayerIDs(ctx context.Context, ids []int) (map[int][]domain.GameweekHistory, error) {
	out := map[int][]domain.GameweekHistory{}
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.db.QueryContext(ctx, `
SELECT player_id, round, points, minutes, goals, assists, bonus, value
  FROM gameweek_history
 WHERE player_id = ANY($1)
 ORDER BY player_id, round
`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var h domain.GameweekHistory
		if err := rows.Scan(&h.PlayerID, &h.Round, &h.Points, &h.Minutes, &h.Goals, &h.Assists, &h.Bonus, &h.Value); err != nil {
			return nil, err
		}
		out[h.PlayerID] = append(out[h.PlayerID], h)
	}
	return out, rows.Err()
}
