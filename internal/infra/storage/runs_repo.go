package storage

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("not found")

type RunsRepo struct{ db *sql.DB }

func NewRunsRepo(db *sql.DB) *RunsRepo { return &RunsRepo{db: db} }

// Insert abre un run en estado 'running' y devuelve su id.
func (r *RunsRepo) Insert(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
INSERT INTO refresh_runs (status) VALUES ('running') RETURNING id
`).Scan(&id)
	return id, err
}

// Finish cierra el run con su resultado. errText vacío cuando status='ok'.
func (r *RunsRepo) Finish(ctx context.Context, id int64, status string, gameweek, playerCount int, sha, errText string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE refresh_runs
   SET finished_at    = now(),
       status         = $2,
       gameweek       = $3,
       player_count   = $4,
       dataset_sha256 = $5,
       error          = $6
 WHERE id = $1
`, id, status, gameweek, playerCount, sha, errText)
	return err
}

func (r *RunsRepo) Latest(ctx context.Context) (RefreshRun, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
SELECT id, started_at, finished_at, status, gameweek, player_count, dataset_sha256, error
  FROM refresh_runs
 ORDER BY started_at DESC
 LIMIT 1
`))
}

// LatestOK: el último run exitoso; es el que respalda el dataset publicado.
func (r *RunsRepo) LatestOK(ctx context.Context) (RefreshRun, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
SELECT id, started_at, finished_at, status, gameweek, player_count, dataset_sha256, error
  FROM refresh_runs
 WHERE status = 'ok'
 ORDER BY started_at DESC
 LIMIT 1
`))
}

func (r *RunsRepo) scanOne(row *sql.Row) (RefreshRun, error) {
	var run RefreshRun
	err := row.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Status,
		&run.Gameweek, &run.PlayerCount, &run.DatasetSHA256, &run.Error)
	if err == sql.ErrNoRows {
		return RefreshRun{}, ErrNotFound
	}
	return run, err
}
