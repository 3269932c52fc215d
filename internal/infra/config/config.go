package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	DiscordToken string
	DiscordGuild string // vacío = comandos globales
	DatabaseURL  string // vacío = sin draw log

	GameChannelName   string // vacío = sin restricción de canal
	AdminRoleName     string
	AdminRoleIDs      []string
	PrivilegedUserIDs []string

	HTTPAddr   string
	HTTPSecret string // vacío = rutas mutantes deshabilitadas

	PrivilegedCooldown time.Duration
	StandardCooldown   time.Duration
	MaxDrawCount       int

	DrawLogRetention time.Duration
	DrawLogPruneCron string
}

func Load() Config {
	get := func(k string, req bool) string {
		v := strings.TrimSpace(os.Getenv(k))
		if v == "" && req {
			log.Fatalf("faltante env %s", k)
		}
		return v
	}

	cfg := Config{
		DiscordToken: get("DISCORD_BOT_TOKEN", true),
		DiscordGuild: get("DISCORD_GUILD_ID", false),
		DatabaseURL:  get("DATABASE_URL", false),

		GameChannelName:   envOr("GAME_CHANNEL_NAME", "🕹️gamejoin"),
		AdminRoleName:     envOr("ADMIN_ROLE_NAME", "Admin"),
		AdminRoleIDs:      splitList(get("ADMIN_ROLE_IDS", false)),
		PrivilegedUserIDs: splitList(get("PRIVILEGED_USER_IDS", false)),

		HTTPAddr:   envOr("HTTP_ADDR", ":8080"),
		HTTPSecret: get("HTTP_SECRET", false),

		PrivilegedCooldown: time.Duration(intOr("COOLDOWN_PRIVILEGED_SECONDS", 30)) * time.Second,
		StandardCooldown:   time.Duration(intOr("COOLDOWN_MINUTES", 25)) * time.Minute,
		MaxDrawCount:       intOr("MAX_DRAW_COUNT", 5),

		DrawLogRetention: time.Duration(intOr("DRAW_LOG_RETENTION_DAYS", 30)) * 24 * time.Hour,
		DrawLogPruneCron: envOr("DRAW_LOG_PRUNE_CRON", "0 4 * * *"),
	}
	if cfg.MaxDrawCount < 1 {
		log.Fatalf("MAX_DRAW_COUNT debe ser >= 1 (got %d)", cfg.MaxDrawCount)
	}
	return cfg
}

// envOr distingue "no seteada" de "seteada vacía": GAME_CHANNEL_NAME= apaga el filtro.
func envOr(k, def string) string {
	v, ok := os.LookupEnv(k)
	if !ok {
		return def
	}
	return strings.TrimSpace(v)
}

func intOr(k string, def int) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s: %q no es un entero", k, v)
	}
	return n
}

func splitList(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Redacted es para loguear la config sin secretos.
func (c Config) Redacted() Config {
	if c.DiscordToken != "" {
		c.DiscordToken = "***"
	}
	if c.HTTPSecret != "" {
		c.HTTPSecret = "***"
	}
	if c.DatabaseURL != "" {
		c.DatabaseURL = "***"
	}
	return c
}
