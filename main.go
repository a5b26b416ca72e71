package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"tarot-telegram-bot/bot"
	"tarot-telegram-bot/catalog"
	"tarot-telegram-bot/config"
	"tarot-telegram-bot/metrics"
	"tarot-telegram-bot/quota"
	"tarot-telegram-bot/reading"
	"tarot-telegram-bot/scheduler"
	"tarot-telegram-bot/storage"
)

func main() {
	// Set up structured logging
	var level slog.LevelVar
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: &level}))
	slog.SetDefault(logger)

	slog.Info("starting tarot bot")

	// Load configuration
	configPath := config.GetConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("failed to load config", "path", configPath, "error", err)
		os.Exit(1)
	}
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		slog.Warn("unknown log level, using info", "level", cfg.LogLevel)
	}
	slog.Info("config loaded", "path", configPath)

	// Initialize database
	db, err := storage.NewDB(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	slog.Info("database initialized", "path", cfg.DBPath)

	// Initialize Telegram bot
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		slog.Error("failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}
	slog.Info("telegram bot initialized", "username", api.Self.UserName)

	// Initialize components
	m := metrics.NewManager()
	cards := catalog.New(cfg.CardsDir)
	gate := quota.NewGate(db,
		quota.WithLocation(cfg.Location()),
		quota.WithOverride(cfg.TestMode),
	)
	composer := reading.NewComposer(newRand())
	handler := bot.NewHandler(
		newTelegramSender(api, cfg.SendRatePerSec, bot.SupportURL(cfg.SupportUsername)),
		cards,
		gate,
		composer,
		newRand(),
		bot.WithRecorder(m),
		bot.WithRevealDelay(cfg.RevealDelay()),
	)

	found := 0
	if items, err := cards.List(); err != nil {
		slog.Warn("failed to list cards", "dir", cfg.CardsDir, "error", err)
	} else {
		found = len(items)
	}
	m.SetCatalogItems(found)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Schedule the midnight rollover
	sched, err := scheduler.NewScheduler(cfg.Timezone)
	if err != nil {
		slog.Error("failed to initialize scheduler", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}
	rollover := scheduler.NewRollover(db, m, cfg.Location())
	if err := sched.Daily("rollover", "00:00", rollover.Job()); err != nil {
		slog.Error("failed to schedule rollover", "error", err)
		os.Exit(1)
	}
	sched.Start()
	defer sched.Stop()
	if next, ok := sched.Next("rollover"); ok {
		slog.Info("rollover scheduled", "next", next, "timezone", cfg.Timezone)
	}

	if cfg.MetricsAddr != "" {
		srv := serveMetrics(cfg.MetricsAddr, m)
		defer func() {
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			srv.Shutdown(shutdownCtx)
		}()
	}

	slog.Info("bot started",
		"test_mode", cfg.TestMode,
		"cards", found,
		"cards_dir", cfg.CardsDir,
	)
	run(ctx, api, handler)
	slog.Info("bot stopped")
}

func run(ctx context.Context, api *tgbotapi.BotAPI, handler *bot.Handler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := api.GetUpdatesChan(u)

	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			msg := update.Message
			if msg == nil || msg.From == nil || msg.Text == "" {
				continue
			}

			wg.Add(1)
			go func() {
				defer wg.Done()
				// Errors are logged by the handler.
				handler.Handle(ctx, bot.Update{
					ChatID: msg.Chat.ID,
					UserID: msg.From.ID,
					Text:   msg.Text,
				})
			}()
		}
	}
}

func serveMetrics(addr string, m *metrics.Manager) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", "error", err)
		}
	}()
	return srv
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
