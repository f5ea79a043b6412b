package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"printbot/internal/config"
	"printbot/internal/document"
	"printbot/internal/handler"
	"printbot/internal/middleware"
	"printbot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting print pricing bot")

	// Load configuration; missing mandatory values are the only fatal errors
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Scratch directory for downloaded documents
	if err := os.MkdirAll(cfg.ScratchDir, 0o755); err != nil {
		logger.Fatal("Failed to create scratch directory", zap.Error(err))
	}
	defer cleanScratchDir(cfg.ScratchDir, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	name := strings.TrimSpace(bot.Me.FirstName + " " + bot.Me.LastName)
	if name == "" {
		name = bot.Me.Username
	}
	logger.Info("Telegram bot initialized",
		zap.Int64("bot_id", bot.Me.ID),
		zap.String("name", name),
	)

	// Initialize services
	ops := service.NewOpsService(cfg.Prices, handler.DefaultWelcomeMessage, handler.DefaultAutoReplyMessage)
	store := service.NewSessionStore()
	orders := service.NewOrderService(store, ops, logger)

	notifier := handler.NewOwnerNotifier(bot, cfg.ReportChatID)
	reports := service.NewReportService(ops, notifier, cfg.ReportPeriod, logger)

	// Initialize handler
	h := handler.NewHandler(
		bot, orders, ops, store,
		document.FileCounter{},
		notifier,
		cfg.OwnerID,
		cfg.ScratchDir,
		cfg.WelcomeCooldown,
		logger,
	)

	bot.Use(
		middleware.Recover(logger),
		middleware.IgnoreUsers(ops, cfg.OwnerID),
	)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start daily report loop in background
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go reports.Run(ctx)

	if err := notifier.NotifyOwner(handler.OnlineMessage(name)); err != nil {
		logger.Warn("Failed to send online notification", zap.Error(err))
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// cleanScratchDir removes leftover downloaded documents on shutdown
func cleanScratchDir(dir string, logger *zap.Logger) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("Failed to read scratch directory", zap.Error(err))
		return
	}
	for _, e := range entries {
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			logger.Warn("Failed to remove scratch file",
				zap.String("name", e.Name()),
				zap.Error(err),
			)
		}
	}
}
