package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DatabaseURL string

	FPLBaseURL   string // opcional, default API oficial
	FPLUserAgent string // opcional

	DatasetPath string // default fpl_player_statistics.csv
	RefreshAt   string // HH:MM en UTC, default 06:00
	HistoryTopN int    // 0 = historial deshabilitado
	HTTPAddr    string // opcional, default :8080

	// publicación git (opcional)
	GitPush        bool
	GitRepoPath    string
	GitAuthorName  string
	GitAuthorEmail string

	// aviso por Discord (opcional)
	DiscordToken   string
	DiscordChannel string
}

func Load() Config {
	get := func(k string, req bool) string {
		v := os.Getenv(k)
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		DatabaseURL:  get("DATABASE_URL", true),
		FPLBaseURL:   get("FPL_BASE_URL", false),
		FPLUserAgent: get("FPL_USER_AGENT", false),
		DatasetPath:  get("DATASET_PATH", false),
		RefreshAt:    get("REFRESH_AT", false),
		HTTPAddr:     get("HTTP_ADDR", false),

		GitRepoPath:    get("GIT_REPO_PATH", false),
		GitAuthorName:  get("GIT_AUTHOR_NAME", false),
		GitAuthorEmail: get("GIT_AUTHOR_EMAIL", false),

		DiscordToken:   get("DISCORD_BOT_TOKEN", false),
		DiscordChannel: get("DISCORD_CHANNEL_ID", false),
	}

	if cfg.DatasetPath == "" {
		cfg.DatasetPath = "fpl_player_statistics.csv"
	}
	if cfg.RefreshAt == "" {
		cfg.RefreshAt = "06:00"
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if _, _, ok := ParseClock(cfg.RefreshAt); !ok {
		log.Fatalf("REFRESH_AT inválido %q (formato HH:MM)", cfg.RefreshAt)
	}

	if v := os.Getenv("HISTORY_TOP_N"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			log.Fatalf("HISTORY_TOP_N inválido %q", v)
		}
		cfg.HistoryTopN = n
	}
	cfg.GitPush = strings.EqualFold(os.Getenv("GIT_PUSH"), "true")

	return cfg
}

// ParseClock: "HH:MM" → (hora, minuto, ok).
func ParseClock(s string) (int, int, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}
