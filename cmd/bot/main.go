package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	discordrouter "github.com/jose-valero/gamejoin-queue-bot/internal/adapters/discord"
	"github.com/jose-valero/gamejoin-queue-bot/internal/adapters/httpqueue"
	"github.com/jose-valero/gamejoin-queue-bot/internal/app/service"
	"github.com/jose-valero/gamejoin-queue-bot/internal/domain/queue"
	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/config"
	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/schedule"
	"github.com/jose-valero/gamejoin-queue-bot/internal/infra/storage"
)

func main() {
	_ = godotenv.Load()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	log.Printf("config: %+v", cfg.Redacted())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Colas en memoria, una por guild
	reg := queue.NewRegistry(
		queue.WithCooldowns(cfg.PrivilegedCooldown, cfg.StandardCooldown),
		queue.WithDrawBounds(1, cfg.MaxDrawCount),
	)

	// DB opcional: sólo para el historial de sorteos
	var drawLog service.DrawLog
	if cfg.DatabaseURL != "" {
		db, err := storage.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
		if err := storage.Migrate(ctx, db); err != nil {
			log.Fatal("migrate:", err)
		}
		drawLog = storage.NewDrawLogRepo(db)
		log.Println("✅ DB lista y migrada")
	} else {
		log.Println("ℹ️ sin DATABASE_URL: draw log deshabilitado")
	}

	// Services
	queueSvc := service.NewQueueService(reg, drawLog)
	historySvc := service.NewHistoryService(drawLog, cfg.DrawLogRetention)

	// Discord session
	auth := cfg.DiscordToken
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(auth)), "bot ") {
		auth = "Bot " + strings.TrimSpace(auth)
	}
	s, err := discordgo.New(auth)
	if err != nil {
		log.Fatal(err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	if err := s.Open(); err != nil {
		log.Fatal(err)
	}
	defer s.Close()
	log.Printf("✅ Conectado como %s (%s)", s.State.User.Username, s.State.User.ID)

	// Router
	r := discordrouter.NewRouter(
		s,
		cfg.DiscordGuild,
		cfg.GameChannelName,
		discordrouter.Access{
			AdminRoleName:     cfg.AdminRoleName,
			AdminRoleIDs:      cfg.AdminRoleIDs,
			PrivilegedUserIDs: cfg.PrivilegedUserIDs,
		},
		queueSvc,
		historySvc,
	)
	if err := r.Register(); err != nil {
		log.Fatalf("registrando comandos: %v", err)
	}
	r.Handlers()
	if cfg.DiscordGuild != "" {
		log.Printf("✅ comandos registrados en guild %s", cfg.DiscordGuild)
		// los de guild se recrean al arrancar, así que se limpian al salir
		defer r.Unregister()
	} else {
		log.Println("✅ comandos globales registrados")
	}

	// HTTP: draw trigger + cola + /metrics
	web := httpqueue.New(cfg.HTTPSecret, queueSvc)
	go func() {
		if err := web.Start(ctx, cfg.HTTPAddr); err != nil {
			log.Printf("[http] server: %v", err)
		}
	}()

	// Retención del draw log
	if historySvc.Enabled() {
		stopCron, err := schedule.Start("draw-log-prune", cfg.DrawLogPruneCron, func() {
			pctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if _, err := historySvc.Prune(pctx, time.Now()); err != nil {
				log.Printf("[janitor] prune: %v", err)
			}
		})
		if err != nil {
			log.Fatal(err)
		}
		defer stopCron()
	}

	// Esperar señal
	<-ctx.Done()
	log.Println("apagando…")
}
