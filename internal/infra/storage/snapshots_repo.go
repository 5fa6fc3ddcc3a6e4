package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
)

type SnapshotRepo struct{ db *sql.DB }

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo { return &SnapshotRepo{db: db} }

// InsertBatch guarda todas las filas de un run en una sola transacción.
// Si algo falla no queda un snapshot a medias.
func (r *SnapshotRepo) InsertBatch(ctx context.Context, runID int64, rows []domain.PlayerStats) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO player_snapshots (
  run_id, player_id, player_name, club_name, position_name,
  now_cost, total_points, event_points, points_per_game, selected_by_percent,
  goals_scored, assists, minutes, clean_sheets, goals_conceded,
  own_goals, penalties_saved, penalties_missed, saves, yellow_cards,
  red_cards, bonus, influence, creativity, threat,
  ict_index, form, dreamteam_count, value_form, value_season,
  transfers_in, transfers_out, transfers_in_event, transfers_out_event,
  cost_change_start, cost_change_start_fall, cost_change_event, cost_change_event_fall,
  expected_goals, expected_assists, expected_goal_involvements, expected_goals_conceded,
  starts, news, influence_rank, creativity_rank, threat_rank, ict_index_rank
) VALUES (
  $1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
  $11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
  $21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
  $31,$32,$33,$34,$35,$36,$37,$38,$39,$40,
  $41,$42,$43,$44,$45,$46,$47,$48
)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.ExecContext(ctx,
			runID, p.PlayerID, p.PlayerName, p.ClubName, p.PositionName,
			p.NowCost, p.TotalPoints, p.EventPoints, p.PointsPerGame, p.SelectedByPercent,
			p.GoalsScored, p.Assists, p.Minutes, p.CleanSheets, p.GoalsConceded,
			p.OwnGoals, p.PenaltiesSaved, p.PenaltiesMissed, p.Saves, p.YellowCards,
			p.RedCards, p.Bonus, p.Influence, p.Creativity, p.Threat,
			p.IctIndex, p.Form, p.DreamteamCount, p.ValueForm, p.ValueSeason,
			p.TransfersIn, p.TransfersOut, p.TransfersInEvent, p.TransfersOutEvent,
			p.CostChangeStart, p.CostChangeStartFall, p.CostChangeEvent, p.CostChangeEventFall,
			p.ExpectedGoals, p.ExpectedAssists, p.ExpectedGoalInvolvements, p.ExpectedGoalsConceded,
			p.Starts, p.News, p.InfluenceRank, p.CreativityRank, p.ThreatRank, p.IctIndexRank,
		); err != nil {
			return fmt.Errorf("snapshot insert player=%d: %w", p.PlayerID, err)
		}
	}
	return tx.Commit()
}

// ByRun devuelve el snapshot completo de un run, en el orden publicado
// (total_points desc).
func (r *SnapshotRepo) ByRun(ctx context.Context, runID int64) ([]domain.PlayerStats, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT player_id, player_name, club_name, position_name,
       now_cost, total_points, event_points, points_per_game, selected_by_percent,
       goals_scored, assists, minutes, clean_sheets, goals_conceded,
       own_goals, penalties_saved, penalties_missed, saves, yellow_cards,
       red_cards, bonus, influence, creativity, threat,
       ict_index, form, dreamteam_count, value_form, value_season,
       transfers_in, transfers_out, transfers_in_event, transfers_out_event,
       cost_change_start, cost_change_start_fall, cost_change_event, cost_change_event_fall,
       expected_goals, expected_assists, expected_goal_involvements, expected_goals_conceded,
       starts, news, influence_rank, creativity_rank, threat_rank, ict_index_rank
  FROM player_snapshots
 WHERE run_id = $1
 ORDER BY total_points DESC, player_id ASC
`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PlayerStats
	for rows.Next() {
		var p domain.PlayerStats
		if err := rows.Scan(
			&p.PlayerID, &p.PlayerName, &p.ClubName, &p.PositionName,
			&p.NowCost, &p.TotalPoints, &p.EventPoints, &p.PointsPerGame, &p.SelectedByPercent,
			&p.GoalsScored, &p.Assists, &p.Minutes, &p.CleanSheets, &p.GoalsConceded,
			&p.OwnGoals, &p.PenaltiesSaved, &p.PenaltiesMissed, &p.Saves, &p.YellowCards,
			&p.RedCards, &p.Bonus, &p.Influence, &p.Creativity, &p.Threat,
			&p.IctIndex, &p.Form, &p.DreamteamCount, &p.ValueForm, &p.ValueSeason,
			&p.TransfersIn, &p.TransfersOut, &p.TransfersInEvent, &p.TransfersOutEvent,
			&p.CostChangeStart, &p.CostChangeStartFall, &p.CostChangeEvent, &p.CostChangeEventFall,
			&p.ExpectedGoals, &p.ExpectedAssists, &p.ExpectedGoalInvolvements, &p.ExpectedGoalsConceded,
			&p.Starts, &p.News, &p.InfluenceRank, &p.CreativityRank, &p.ThreatRank, &p.IctIndexRank,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
