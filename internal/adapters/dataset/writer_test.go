package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
)

func sampleRows() []domain.PlayerStats {
	r1 := 1
	return []domain.PlayerStats{
		{
			PlayerID:      11,
			PlayerName:    "Mohamed Salah",
			ClubName:      "Liverpool",
			PositionName:  "MID",
			NowCost:       13.1,
			TotalPoints:   344,
			PointsPerGame: 9.1,
			ExpectedGoals: 23.61,
			News:          "",
			InfluenceRank: &r1,
			// el resto de ranks en nil a propósito
		},
		{
			PlayerID:     12,
			PlayerName:   "Nuevo Fichaje",
			ClubName:     "N/A",
			PositionName: "FWD",
			NowCost:      4.5,
			News:         "Se espera debut, con \"comillas\" y, comas",
		},
	}
}

func TestRender_HeaderAndCells(t *testing.T) {
	data, err := Render(sampleRows())
	require.NoError(t, err)

	recs, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3) // cabecera + 2 filas

	assert.Equal(t, Columns, recs[0])
	require.Len(t, Columns, 46)
	assert.Equal(t, "player_name", Columns[0])
	assert.Equal(t, "ict_index_rank", Columns[45])

	salah := recs[1]
	assert.Equal(t, "Mohamed Salah", salah[0])
	assert.Equal(t, "13.1", salah[3])   // now_cost
	assert.Equal(t, "344", salah[4])    // total_points
	assert.Equal(t, "9.1", salah[6])    // points_per_game
	assert.Equal(t, "23.61", salah[36]) // expected_goals
	assert.Equal(t, "1", salah[42])     // influence_rank
	assert.Equal(t, "", salah[43])      // creativity_rank en nil → celda vacía

	// el encoding csv escapa comillas y comas solo
	nuevo := recs[2]
	assert.Equal(t, `Se espera debut, con "comillas" y, comas`, nuevo[41])
}

func TestWriter_AtomicReplaceAndSHA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fpl_player_statistics.csv")
	w := NewWriter(path)

	// archivo previo con basura: debe quedar reemplazado entero
	require.NoError(t, os.WriteFile(path, []byte("corrupto"), 0o644))

	sha, err := w.Write(sampleRows())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	sum := sha256.Sum256(data)
	assert.Equal(t, hex.EncodeToString(sum[:]), sha)
	assert.True(t, strings.HasPrefix(string(data), "player_name,club_name,"))
	assert.NotContains(t, string(data), "corrupto")
}

func TestWriter_Path(t *testing.T) {
	assert.Equal(t, "x.csv", NewWriter("x.csv").Path())
}
