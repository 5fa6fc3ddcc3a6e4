package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/jose-valero/fpl-stats-tracker/internal/app/service"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/config"
	"github.com/jose-valero/fpl-stats-tracker/internal/infra/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Regenera el CSV desde el último snapshot en DB, sin pegarle a la API.
func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	out := flag.String("o", "", "ruta de salida (default DATASET_PATH)")
	flag.Parse()

	cfg := config.Load()
	path := *out
	if path == "" {
		path = cfg.DatasetPath
	}

	db, err := storage.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	svc := service.NewExportService(storage.NewRunsRepo(db), storage.NewSnapshotRepo(db))
	n, err := svc.Export(context.Background(), path)
	if err != nil {
		log.Fatal("export:", err)
	}
	log.Printf("✅ exportadas %d filas a %s", n, path)
}
