package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/storage"
)

func TestExport_FromLatestSnapshot(t *testing.T) {
	runs := newFakeRuns()
	runs.latest = storage.RefreshRun{ID: 3, Status: "ok"}
	snaps := &fakeSnaps{inserted: map[int64][]domain.PlayerStats{
		3: {
			{PlayerID: 11, PlayerName: "Mohamed Salah", ClubName: "Liverpool", PositionName: "MID", TotalPoints: 344},
			{PlayerID: 10, PlayerName: "Bukayo Saka", ClubName: "Arsenal", PositionName: "MID", TotalPoints: 180},
		},
	}}

	svc := NewExportService(runs, snaps)
	path := filepath.Join(t.TempDir(), "out.csv")

	n, err := svc.Export(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "player_name,"))
	assert.Contains(t, string(data), "Mohamed Salah,Liverpool,MID")
}

func TestLatestCSV(t *testing.T) {
	runs := newFakeRuns()
	runs.latest = storage.RefreshRun{ID: 5, Status: "ok", PlayerCount: 1}
	snaps := &fakeSnaps{inserted: map[int64][]domain.PlayerStats{
		5: {{PlayerID: 1, PlayerName: "A Uno", ClubName: "Arsenal", PositionName: "FWD"}},
	}}

	svc := NewExportService(runs, snaps)
	data, run, err := svc.LatestCSV(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 5, run.ID)
	assert.Contains(t, string(data), "A Uno")
}
