package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
)

func handler(ctx context.Context) (string, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return "no DATABASE_URL", nil
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fmt.Sprintf("parse: %v", err), nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fmt.Sprintf("pool: %v", err), nil
	}
	defer pool.Close()

	cctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// runs viejos (los snapshots caen por cascade); el último run ok
	// se conserva siempre porque respalda el dataset publicado
	_, _ = pool.Exec(cctx, `
DELETE FROM refresh_runs
 WHERE started_at < now() - INTERVAL '30 days'
   AND id <> COALESCE(
         (SELECT id FROM refresh_runs WHERE status = 'ok' ORDER BY started_at DESC LIMIT 1),
         -1);`)
	_, _ = pool.Exec(cctx, `
DELETE FROM gameweek_history
 WHERE updated_at < now() - INTERVAL '400 days';`)

	return "ok", nil
}

func main() { lambda.Start(handler) }
