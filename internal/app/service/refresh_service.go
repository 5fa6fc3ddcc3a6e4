package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
)

type RefreshService struct {
	api     FPLAPI
	runs    RunsRepo
	snaps   SnapshotRepo
	history HistoryRepo
	writer  DatasetWriter

	// opcionales, pueden ser nil
	pub    Publisher
	notify Notifier

	historyTopN int
}

func NewRefreshService(api FPLAPI, runs RunsRepo, snaps SnapshotRepo, history HistoryRepo, writer DatasetWriter) *RefreshService {
	return &RefreshService{api: api, runs: runs, snaps: snaps, history: history, writer: writer}
}

func (s *RefreshService) WithPublisher(p Publisher) *RefreshService { s.pub = p; return s }
func (s *RefreshService) WithNotifier(n Notifier) *RefreshService   { s.notify = n; return s }
func (s *RefreshService) WithHistoryTopN(n int) *RefreshService     { s.historyTopN = n; return s }

type RefreshSummary struct {
	Gameweek  int
	Players   int
	TopScorer string
	SHA256    string
	Duration  time.Duration
}

// Refresh es el ciclo diario completo: bootstrap → filas → snapshot en DB →
// CSV → publicación/avisos. Los pasos de publicación y aviso son best-effort:
// si fallan queda logueado pero el run cuenta como ok.
func (s *RefreshService) Refresh(ctx context.Context) (RefreshSummary, error) {
	started := time.Now()
	refreshTotal.Inc()

	runID, err := s.runs.Insert(ctx)
	if err != nil {
		refreshFailed.Inc()
		return RefreshSummary{}, fmt.Errorf("abrir run: %w", err)
	}

	fail := func(err error) (RefreshSummary, error) {
		refreshFailed.Inc()
		_ = s.runs.Finish(ctx, runID, "failed", 0, 0, "", err.Error())
		return RefreshSummary{}, err
	}

	b, err := s.api.GetBootstrap(ctx)
	if err != nil {
		return fail(fmt.Errorf("bootstrap: %w", err))
	}
	if len(b.Elements) == 0 {
		// respuesta sin jugadores: no escribimos nada, el CSV anterior queda
		return fail(fmt.Errorf("bootstrap sin jugadores"))
	}

	rows := BuildRows(b)
	if err := s.snaps.InsertBatch(ctx, runID, rows); err != nil {
		return fail(fmt.Errorf("snapshot: %w", err))
	}

	sha, err := s.writer.Write(rows)
	if err != nil {
		return fail(err)
	}

	gw := b.CurrentGameweek()
	if err := s.runs.Finish(ctx, runID, "ok", gw, len(rows), sha, ""); err != nil {
		return fail(fmt.Errorf("cerrar run: %w", err))
	}

	sum := RefreshSummary{
		Gameweek: gw,
		Players:  len(rows),
		SHA256:   sha,
		Duration: time.Since(started),
	}
	if len(rows) > 0 {
		sum.TopScorer = rows[0].PlayerName
	}

	refreshDuration.Observe(sum.Duration.Seconds())
	lastSuccessUnix.SetToCurrentTime()
	lastPlayerCount.Set(float64(sum.Players))

	// historial por GW de los punteros (si está habilitado)
	if s.historyTopN > 0 {
		if err := s.SyncHistory(ctx, rows, s.historyTopN); err != nil {
			log.Printf("⚠️ sync history: %v", err)
		}
	}

	if s.pub != nil {
		if err := s.pub.Publish(ctx); err != nil {
			log.Printf("⚠️ publish: %v", err)
		}
	}
	if s.notify != nil {
		msg := fmt.Sprintf("✅ FPL refresh GW%d: **%d** jugadores, líder **%s** (%.1fs)",
			sum.Gameweek, sum.Players, sum.TopScorer, sum.Duration.Seconds())
		if err := s.notify.Notify(ctx, msg); err != nil {
			log.Printf("⚠️ notify: %v", err)
		}
	}

	return sum, nil
}

// SyncHistory baja element-summary de los primeros topN del dataset y
// upserta su historial por gameweek. Concurrencia acotada para no
// castigar al endpoint.
func (s *RefreshService) SyncHistory(ctx context.Context, rows []domain.PlayerStats, topN int) error {
	if topN > len(rows) {
		topN = len(rows)
	}

	var mu sync.Mutex
	var all []domain.GameweekHistory

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, r := range rows[:topN] {
		r := r
		g.Go(func() error {
			hs, err := s.api.GetPlayerSummary(gctx, r.PlayerID)
			if err != nil {
				return fmt.Errorf("summary player=%d: %w", r.PlayerID, err)
			}
			mu.Lock()
			all = append(all, hs...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return s.history.Upsert(ctx, all)
}

// BuildRows hace el join teams/positions sobre cada element y ordena por
// total_points desc, igual que el dataset original.
func BuildRows(b *domain.Bootstrap) []domain.PlayerStats {
	teams := make(map[int]string, len(b.Teams))
	for _, t := range b.Teams {
		teams[t.ID] = t.Name
	}
	positions := make(map[int]string, len(b.Positions))
	for _, p := range b.Positions {
		positions[p.ID] = p.Name
	}

	name := func(m map[int]string, id int) string {
		if n, ok := m[id]; ok {
			return n
		}
		return "N/A"
	}

	rows := make([]domain.PlayerStats, 0, len(b.Elements))
	for _, el := range b.Elements {
		rows = append(rows, domain.PlayerStats{
			PlayerID:     el.ID,
			PlayerName:   el.FirstName + " " + el.WebName,
			ClubName:     name(teams, el.Team),
			PositionName: name(positions, el.ElementType),

			NowCost:           float64(el.NowCost) / 10.0,
			TotalPoints:       el.TotalPoints,
			EventPoints:       el.EventPoints,
			PointsPerGame:     el.PointsPerGame,
			SelectedByPercent: el.SelectedByPercent,
			GoalsScored:       el.GoalsScored,
			Assists:           el.Assists,
			Minutes:           el.Minutes,
			CleanSheets:       el.CleanSheets,
			GoalsConceded:     el.GoalsConceded,
			OwnGoals:          el.OwnGoals,
			PenaltiesSaved:    el.PenaltiesSaved,
			PenaltiesMissed:   el.PenaltiesMissed,
			Saves:             el.Saves,
			YellowCards:       el.YellowCards,
			RedCards:          el.RedCards,
			Bonus:             el.Bonus,

			Influence:  el.Influence,
			Creativity: el.Creativity,
			Threat:     el.Threat,
			IctIndex:   el.IctIndex,
			Form:       el.Form,

			DreamteamCount: el.DreamteamCount,
			ValueForm:      el.ValueForm,
			ValueSeason:    el.ValueSeason,

			TransfersIn:       el.TransfersIn,
			TransfersOut:      el.TransfersOut,
			TransfersInEvent:  el.TransfersInEvent,
			TransfersOutEvent: el.TransfersOutEvent,

			CostChangeStart:     float64(el.CostChangeStart) / 10.0,
			CostChangeStartFall: float64(el.CostChangeStartFall) / 10.0,
			CostChangeEvent:     float64(el.CostChangeEvent) / 10.0,
			CostChangeEventFall: float64(el.CostChangeEventFall) / 10.0,

			ExpectedGoals:            el.ExpectedGoals,
			ExpectedAssists:          el.ExpectedAssists,
			ExpectedGoalInvolvements: el.ExpectedGoalInvolvements,
			ExpectedGoalsConceded:    el.ExpectedGoalsConceded,

			Starts: el.Starts,
			News:   el.News,

			InfluenceRank:  el.InfluenceRank,
			CreativityRank: el.CreativityRank,
			ThreatRank:     el.ThreatRank,
			IctIndexRank:   el.IctIndexRank,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})
	return rows
}
