package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitcoach/clients/ai"
	"fitcoach/internal/bot"
	"fitcoach/internal/config"
	"fitcoach/internal/i18n"
	"fitcoach/internal/planner"
	"fitcoach/internal/programs"
	"fitcoach/internal/repository"
	"fitcoach/internal/server"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Ошибка загрузки конфигурации")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	if err := i18n.Load(); err != nil {
		logger.Fatal().Err(err).Msg("Ошибка загрузки локализации")
	}
	lang := i18n.ParseLanguage(cfg.Lang)

	db, err := repository.Open(cfg.DSN())
	if err != nil {
		logger.Fatal().Err(err).Msg("Ошибка подключения к БД")
	}
	defer db.Close()

	if err := repository.RunMigrations(db); err != nil {
		logger.Fatal().Err(err).Msg("Ошибка миграций")
	}
	repo := repository.New(db)

	catalog, err := programs.DefaultCatalog(logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Ошибка загрузки каталога программ")
	}
	adapter := programs.NewAdapter(catalog,
		programs.WithFallbackName(i18n.T("exercise.bodyweight_fallback", lang)))

	var writer planner.PlanWriter
	if cfg.GroqAPIKey != "" {
		writer = ai.NewPlanGenerator(ai.NewClient(cfg.GroqAPIKey, cfg.AIBaseURL, cfg.AIModel))
	} else {
		logger.Warn().Msg("GROQ_API_KEY не задан, планы будут базовыми")
	}

	svc, err := planner.New(planner.Config{
		Adapter:     adapter,
		Writer:      writer,
		Preferences: repo.Preferences,
		Plans:       repo.Plan,
		CacheSize:   cfg.PlanCacheSize,
		Lang:        lang,
		Logger:      logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("Ошибка создания планировщика")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.BotToken != "" {
		startBot(ctx, cfg, svc, repo, lang, logger)
	} else {
		logger.Warn().Msg("BOT_TOKEN не задан, бот отключён")
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(svc, repo.Meal, repo.Water, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Завершение работы...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("Ошибка остановки HTTP сервера")
		}
	}()

	logger.Info().Str("addr", cfg.HTTPAddr).Int("templates", catalog.Len()).Msg("HTTP API запущен")
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("Ошибка HTTP сервера")
	}
}

func startBot(ctx context.Context, cfg *config.Config, svc *planner.Service, repo *repository.Repository, lang i18n.Language, logger zerolog.Logger) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Ошибка подключения к Telegram")
	}

	b := bot.New(api, svc, lang, cfg.ExportDir, logger)

	reminders, err := b.StartWeeklyReminder(cfg.ReminderSpec, repo.Preferences)
	if err != nil {
		logger.Fatal().Err(err).Msg("Ошибка запуска напоминаний")
	}

	go func() {
		defer reminders.Stop()
		if err := b.Start(ctx); err != nil {
			logger.Error().Err(err).Msg("Бот остановлен с ошибкой")
		}
	}()
}
