package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/google/renameio/v2"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
)

// Columns fija el orden y los nombres del CSV publicado. No tocar sin
// avisar a los consumidores del dataset.
var Columns = []string{
	"player_name",
	"club_name",
	"position_name",
	"now_cost",
	"total_points",
	"event_points",
	"points_per_game",
	"selected_by_percent",
	"goals_scored",
	"assists",
	"minutes",
	"clean_sheets",
	"goals_conceded",
	"own_goals",
	"penalties_saved",
	"penalties_missed",
	"saves",
	"yellow_cards",
	"red_cards",
	"bonus",
	"influence",
	"creativity",
	"threat",
	"ict_index",
	"form",
	"dreamteam_count",
	"value_form",
	"value_season",
	"transfers_in",
	"transfers_out",
	"transfers_in_event",
	"transfers_out_event",
	"cost_change_start",
	"cost_change_start_fall",
	"cost_change_event",
	"cost_change_event_fall",
	"expected_goals",
	"expected_assists",
	"expected_goal_involvements",
	"expected_goals_conceded",
	"starts",
	"news",
	"influence_rank",
	"creativity_rank",
	"threat_rank",
	"ict_index_rank",
}

// Render arma el CSV completo en memoria (cabecera + filas).
func Render(rows []domain.PlayerStats) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(Columns); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(record(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type Writer struct{ path string }

func NewWriter(path string) *Writer { return &Writer{path: path} }

func (w *Writer) Path() string { return w.path }

// Write reemplaza el archivo de forma atómica (renameio) para que nadie
// lea un CSV a medias. Devuelve el sha256 de lo escrito.
func (w *Writer) Write(rows []domain.PlayerStats) (string, error) {
	data, err := Render(rows)
	if err != nil {
		return "", err
	}
	if err := renameio.WriteFile(w.path, data, 0o644); err != nil {
		return "", fmt.Errorf("dataset write: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func record(r domain.PlayerStats) []string {
	return []string{
		r.PlayerName,
		r.ClubName,
		r.PositionName,
		ffmt(r.NowCost),
		strconv.Itoa(r.TotalPoints),
		strconv.Itoa(r.EventPoints),
		ffmt(r.PointsPerGame),
		ffmt(r.SelectedByPercent),
		strconv.Itoa(r.GoalsScored),
		strconv.Itoa(r.Assists),
		strconv.Itoa(r.Minutes),
		strconv.Itoa(r.CleanSheets),
		strconv.Itoa(r.GoalsConceded),
		strconv.Itoa(r.OwnGoals),
		strconv.Itoa(r.PenaltiesSaved),
		strconv.Itoa(r.PenaltiesMissed),
		strconv.Itoa(r.Saves),
		strconv.Itoa(r.YellowCards),
		strconv.Itoa(r.RedCards),
		strconv.Itoa(r.Bonus),
		ffmt(r.Influence),
		ffmt(r.Creativity),
		ffmt(r.Threat),
		ffmt(r.IctIndex),
		ffmt(r.Form),
		strconv.Itoa(r.DreamteamCount),
		ffmt(r.ValueForm),
		ffmt(r.ValueSeason),
		strconv.Itoa(r.TransfersIn),
		strconv.Itoa(r.TransfersOut),
		strconv.Itoa(r.TransfersInEvent),
		strconv.Itoa(r.TransfersOutEvent),
		ffmt(r.CostChangeStart),
		ffmt(r.CostChangeStartFall),
		ffmt(r.CostChangeEvent),
		ffmt(r.CostChangeEventFall),
		ffmt(r.ExpectedGoals),
		ffmt(r.ExpectedAssists),
		ffmt(r.ExpectedGoalInvolvements),
		ffmt(r.ExpectedGoalsConceded),
		strconv.Itoa(r.Starts),
		r.News,
		rank(r.InfluenceRank),
		rank(r.CreativityRank),
		rank(r.ThreatRank),
		rank(r.IctIndexRank),
	}
}

func ffmt(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// rank null → celda vacía
func rank(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
