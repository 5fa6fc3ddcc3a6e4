package service

import (
	"context"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/storage"
)

// Lo implementa internal/adapters/fplapi.Client
type FPLAPI interface {
	GetBootstrap(ctx context.Context) (*domain.Bootstrap, error)
	GetPlayerSummary(ctx context.Context, elementID int) ([]domain.GameweekHistory, error)
}

// Lo implementa internal/infra/storage.RunsRepo
type RunsRepo interface {
	Insert(ctx context.Context) (int64, error)
	Finish(ctx context.Context, id int64, status string, gameweek, playerCount int, sha, errText string) error
	Latest(ctx context.Context) (storage.RefreshRun, error)
	LatestOK(ctx context.Context) (storage.RefreshRun, error)
}

// Lo implementa internal/infra/storage.SnapshotRepo
type SnapshotRepo interface {
	InsertBatch(ctx context.Context, runID int64, rows []domain.PlayerStats) error
	ByRun(ctx context.Context, runID int64) ([]domain.PlayerStats, error)
}

// Lo implementa internal/infra/storage.HistoryRepo
type HistoryRepo interface {
	Upsert(ctx context.Context, rows []domain.GameweekHistory) error
}

// Lo implementa internal/adapters/dataset.Writer
type DatasetWriter interface {
	Write(rows []domain.PlayerStats) (string, error)
	Path() string
}

// Lo implementa internal/adapters/gitpub.Publisher (opcional)
type Publisher interface {
	Publish(ctx context.Context) error
}

// Lo implementa internal/adapters/discordnotify.Notifier (opcional)
type Notifier interface {
	Notify(ctx context.Context, msg string) error
}
