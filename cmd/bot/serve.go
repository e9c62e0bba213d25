package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/wonderland-bot/internal/config"
	"github.com/aliskhannn/wonderland-bot/internal/delivery/telegram"
	"github.com/aliskhannn/wonderland-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/wonderland-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/wonderland-bot/internal/logger"
	"github.com/aliskhannn/wonderland-bot/internal/repository"
	"github.com/aliskhannn/wonderland-bot/internal/service"
	"github.com/aliskhannn/wonderland-bot/internal/storage"
)

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Empezar una partida nueva"},
	{Command: "score", Description: "Ver la puntuación"},
	{Command: "stop", Description: "Terminar la partida"},
	{Command: "words", Description: "Elegir palabras al azar"},
	{Command: "prompt", Description: "Armar un prompt por secciones"},
	{Command: "stats", Description: "Frases más difíciles"},
	{Command: "help", Description: "Ayuda"},
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return exitError(2, "failed to load config: %v", err)
	}

	log, err := logger.New(cfg)
	if err != nil {
		return exitError(2, "failed to init logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load bundled game data.
	phraseRepo, err := repository.NewPhraseRepository(cfg.PhrasesPath)
	if err != nil {
		log.Error("failed to load phrases", zap.String("path", cfg.PhrasesPath), zap.Error(err))
		return err
	}
	catalog, err := repository.LoadFeedbackCatalog(cfg.FeedbackPath)
	if err != nil {
		log.Error("failed to load feedback", zap.String("path", cfg.FeedbackPath), zap.Error(err))
		return err
	}
	categories, err := repository.LoadWordCategories(cfg.WordsPath)
	if err != nil {
		log.Error("failed to load word categories", zap.String("path", cfg.WordsPath), zap.Error(err))
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.DB.URL, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		log.Error("failed to connect to database", zap.Error(err))
		return err
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		log.Error("failed to prepare schema", zap.Error(err))
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		log.Error("failed to create bot", zap.Error(err))
		return err
	}
	bot.Debug = cfg.Env == "local"

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		log.Warn("failed to set bot commands", zap.Error(err))
	}

	log.Info("authorized on account", zap.String("username", bot.Self.UserName))

	// Initialize repositories and services.
	userRepo := pgrepo.NewUserRepository(pool)
	answerRepo := pgrepo.NewAnswerRepository(pool, postgres.NewTransactor(pool))

	// *rand.Rand is not safe for concurrent use, each component gets its own.
	gameService := service.NewGameService(
		phraseRepo,
		storage.NewSessionStorage(),
		answerRepo,
		service.NewScoreEngine(service.NewRandomSource()),
		service.NewFeedbackPicker(catalog, service.NewRandomSource()),
		cfg.Game.AdvanceDelay,
		log,
	)
	playerService := service.NewPlayerService(userRepo)
	wordPicker := service.NewWordPicker(categories, service.NewRandomSource())

	handler := telegram.NewHandler(bot, log, gameService, playerService, wordPicker)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("handler stopped", zap.Error(err))
		return err
	}

	log.Info("shutdown signal received")
	return nil
}
