package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mixelka/tempmailbot/internal/classify"
	"github.com/mixelka/tempmailbot/internal/config"
	"github.com/mixelka/tempmailbot/internal/database"
	"github.com/mixelka/tempmailbot/internal/formatter"
	"github.com/mixelka/tempmailbot/internal/mailbox"
	"github.com/mixelka/tempmailbot/internal/mailtm"
	"github.com/mixelka/tempmailbot/internal/parser"
	"github.com/mixelka/tempmailbot/internal/session"
	"github.com/mixelka/tempmailbot/internal/telegram"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting temp-mail code bot")

	// Connect to database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations completed")

	// Service classification rules
	rules := classify.DefaultRules()
	if cfg.ServiceRulesPath != "" {
		rules, err = classify.LoadRules(cfg.ServiceRulesPath)
		if err != nil {
			logger.Error("failed to load service rules", "error", err)
			os.Exit(1)
		}
		logger.Info("service rules loaded", "path", cfg.ServiceRulesPath, "rules", len(rules))
	}
	classifier, err := classify.New(rules)
	if err != nil {
		logger.Error("invalid service rules", "error", err)
		os.Exit(1)
	}

	// Create components
	provider := mailtm.NewClient(mailtm.Config{
		BaseURL: cfg.MailTmBase,
		Timeout: cfg.HTTPTimeout,
	})

	mailboxes := mailbox.NewService(mailbox.Deps{
		Provider:   provider,
		Sessions:   session.NewStore(),
		Normalizer: parser.NewNormalizer(),
		Extractor:  parser.NewCodeExtractor(),
		Classifier: classifier,
		Journal:    db,
		Logger:     logger,
	})

	// Create bot
	bot, err := telegram.NewBot(telegram.BotDeps{
		Token:     cfg.TelegramToken,
		Mailboxes: mailboxes,
		DB:        db,
		Formatter: formatter.NewTelegramFormatter(),
		Logger:    logger,
	})
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(ctx)
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh

		logger.Info("received shutdown signal", "signal", sig)
		logger.Info("shutting down...")
		cancel()
	}()

	// Start bot
	logger.Info("bot is running, press Ctrl+C to stop")
	bot.Start(ctx)

	logger.Info("bot stopped")
}

func setupLogger(level, format string) *slog.Logger {
	var handler slog.Handler
	logLevel := parseLevel(level)

	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		})
	} else {
		// Pretty colored output for console
		handler = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.DateTime,
			NoColor:    false,
		})
	}

	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
