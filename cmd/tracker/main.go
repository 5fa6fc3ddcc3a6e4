package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jose-valero/fpl-stats-tracker/internal/adapters/dataset"
	"github.com/jose-valero/fpl-stats-tracker/internal/adapters/discordnotify"
	"github.com/jose-valero/fpl-stats-tracker/internal/adapters/fplapi"
	"github.com/jose-valero/fpl-stats-tracker/internal/adapters/gitpub"
	"github.com/jose-valero/fpl-stats-tracker/internal/adapters/httpadmin"
	"github.com/jose-valero/fpl-stats-tracker/internal/app/service"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/config"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	once := flag.Bool("once", false, "refresca una vez y sale (modo CI)")
	runNow := flag.Bool("now", false, "refresca al arrancar, además del horario")
	flag.Parse()

	cfg := config.Load()

	// DB
	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	if err := storage.Migrate(db); err != nil {
		log.Fatal("migrate:", err)
	}
	log.Println("✅ DB lista y migrada")

	// Repos
	runsRepo := storage.NewRunsRepo(db)
	snapsRepo := storage.NewSnapshotRepo(db)
	histRepo := storage.NewHistoryRepo(db)

	// FPL client
	var opts []fplapi.Option
	if cfg.FPLBaseURL != "" {
		opts = append(opts, fplapi.WithBaseURL(cfg.FPLBaseURL))
	}
	if cfg.FPLUserAgent != "" {
		opts = append(opts, fplapi.WithUserAgent(cfg.FPLUserAgent))
	}
	fc := fplapi.New(opts...)

	// Services
	writer := dataset.NewWriter(cfg.DatasetPath)
	refreshSvc := service.NewRefreshService(fc, runsRepo, snapsRepo, histRepo, writer).
		WithHistoryTopN(cfg.HistoryTopN)

	if cfg.GitPush {
		repo := cfg.GitRepoPath
		if repo == "" {
			repo = "."
		}
		refreshSvc.WithPublisher(gitpub.New(repo, cfg.DatasetPath, cfg.GitAuthorName, cfg.GitAuthorEmail))
		log.Printf("✅ publicación git habilitada (repo=%s)", repo)
	}
	if cfg.DiscordToken != "" && cfg.DiscordChannel != "" {
		n, err := discordnotify.New(cfg.DiscordToken, cfg.DiscordChannel)
		if err != nil {
			log.Fatal(err)
		}
		defer n.Close()
		refreshSvc.WithNotifier(n)
		log.Printf("✅ avisos Discord habilitados (canal=%s)", cfg.DiscordChannel)
	}

	exportSvc := service.NewExportService(runsRepo, snapsRepo)

	// Admin HTTP (healthz/status/dataset/history/metrics)
	admin := httpadmin.New(db, runsRepo, exportSvc, histRepo)
	go admin.Start(cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *once {
		if !doRefresh(ctx, refreshSvc) {
			os.Exit(1)
		}
		return
	}

	if *runNow {
		doRefresh(ctx, refreshSvc)
	}

	hour, min, _ := config.ParseClock(cfg.RefreshAt)
	for {
		next := nextRun(time.Now().UTC(), hour, min)
		log.Printf("⏰ próximo refresh: %s", next.Format(time.RFC3339))
		t := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			t.Stop()
			log.Println("👋 apagando")
			return
		case <-t.C:
			// un día fallido no tumba el daemon, mañana se reintenta
			doRefresh(ctx, refreshSvc)
		}
	}
}

func doRefresh(ctx context.Context, svc *service.RefreshService) bool {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	sum, err := svc.Refresh(cctx)
	if err != nil {
		log.Printf("❌ refresh: %v", err)
		return false
	}
	log.Printf("✅ refresh ok: GW%d, %d jugadores, líder %s, sha=%.12s (%s)",
		sum.Gameweek, sum.Players, sum.TopScorer, sum.SHA256, sum.Duration.Round(time.Millisecond))
	return true
}
