package httpadmin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jose-valero/fpl-stats-tracker/internal/domain"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/storage"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type StatusSource interface {
	Latest(ctx context.Context) (storage.RefreshRun, error)
}

type DatasetSource interface {
	LatestCSV(ctx context.Context) ([]byte, storage.RefreshRun, error)
}

type HistorySource interface {
	ByPlayerIDs(ctx context.Context, ids []int) (map[int][]domain.GameweekHistory, error)
}

type Server struct {
	db      Pinger
	runs    StatusSource
	dataset DatasetSource
	history HistorySource
	r       *mux.Router
}

func New(db Pinger, runs StatusSource, dataset DatasetSource, history HistorySource) *Server {
	s := &Server{db: db, runs: runs, dataset: dataset, history: history, r: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	s.r.HandleFunc("/status", s.handleStatus).Methods(http.MethodGet)
	s.r.HandleFunc("/dataset", s.handleDataset).Methods(http.MethodGet)
	s.r.HandleFunc("/players/{id:[0-9]+}/history", s.handleHistory).Methods(http.MethodGet)
	s.r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
}

func (s *Server) Handler() http.Handler { return s.r }

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		http.Error(w, "db: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	run, err := s.runs.Latest(r.Context())
	if err == storage.ErrNotFound {
		http.Error(w, "sin runs todavía", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":             run.ID,
		"started_at":     run.StartedAt,
		"finished_at":    run.FinishedAt,
		"status":         run.Status,
		"gameweek":       run.Gameweek,
		"player_count":   run.PlayerCount,
		"dataset_sha256": run.DatasetSHA256,
		"error":          run.Error,
	})
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	data, run, err := s.dataset.LatestCSV(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="fpl_player_statistics.csv"`)
	w.Header().Set("X-Dataset-Run", run.StartedAt.Format(time.RFC3339))
	_, _ = w.Write(data)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "id inválido", http.StatusBadRequest)
		return
	}
	hs, err := s.history.ByPlayerIDs(r.Context(), []int{id})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rows := hs[id]
	if len(rows) == 0 {
		http.Error(w, "sin historial para ese jugador", http.StatusNotFound)
		return
	}

	type gwRow struct {
		Round   int     `json:"round"`
		Points  int     `json:"points"`
		Minutes int     `json:"minutes"`
		Goals   int     `json:"goals"`
		Assists int     `json:"assists"`
		Bonus   int     `json:"bonus"`
		Value   float64 `json:"value"` // £m
	}
	out := make([]gwRow, 0, len(rows))
	for _, h := range rows {
		out = append(out, gwRow{
			Round: h.Round, Points: h.Points, Minutes: h.Minutes,
			Goals: h.Goals, Assists: h.Assists, Bonus: h.Bonus,
			Value: float64(h.Value) / 10.0,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func (s *Server) Start(addr string) {
	log.Printf("🌐 HTTP admin escuchando en %s", addr)
	if err := http.ListenAndServe(addr, s.r); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
