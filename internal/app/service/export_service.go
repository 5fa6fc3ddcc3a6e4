package service

import (
	"context"
	"fmt"

	"github.com/jose-valero/fpl-stats-tracker/internal/adapters/dataset"
	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/storage"
)

// ExportService regenera el CSV desde el último snapshot guardado,
// sin tocar la API.
type ExportService struct {
	runs  RunsRepo
	snaps SnapshotRepo
}

func NewExportService(runs RunsRepo, snaps SnapshotRepo) *ExportService {
	return &ExportService{runs: runs, snaps: snaps}
}

// Export escribe el CSV en path y devuelve cuántas filas salieron.
func (s *ExportService) Export(ctx context.Context, path string) (int, error) {
	rows, _, err := s.latestRows(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := dataset.NewWriter(path).Write(rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// LatestCSV arma el CSV en memoria (para servirlo por HTTP).
func (s *ExportService) LatestCSV(ctx context.Context) ([]byte, storage.RefreshRun, error) {
	rows, run, err := s.latestRows(ctx)
	if err != nil {
		return nil, storage.RefreshRun{}, err
	}
	data, err := dataset.Render(rows)
	return data, run, err
}

func (s *ExportService) latestRows(ctx context.Context) ([]domain.PlayerStats, storage.RefreshRun, error) {
	run, err := s.runs.LatestOK(ctx)
	if err != nil {
		return nil, storage.RefreshRun{}, fmt.Errorf("sin runs exitosos: %w", err)
	}
	rows, err := s.snaps.ByRun(ctx, run.ID)
	if err != nil {
		return nil, storage.RefreshRun{}, err
	}
	return rows, run, nil
}
