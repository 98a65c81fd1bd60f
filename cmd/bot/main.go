package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Islam8171-lang/fryutt-bot/internal/config"
	"github.com/Islam8171-lang/fryutt-bot/internal/handler"
	"github.com/Islam8171-lang/fryutt-bot/internal/health"
	"github.com/Islam8171-lang/fryutt-bot/internal/service"

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

	logger.Info("Starting Fryutt Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize core services
	convo := service.NewConversationService(
		handler.NewTransport(bot),
		service.NewSpamFilter(),
		service.NewMenuRouter(),
		service.NewSessionStore(),
		service.NewQuestionStore(),
		cfg.AdminID,
		logger,
	)

	// Initialize handler
	h := handler.NewHandler(bot, convo, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start liveness endpoint in background
	healthSrv := health.NewServer(cfg.HealthAddr, logger)
	go healthSrv.Start()

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := healthSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Health server shutdown failed", zap.Error(err))
	}

	logger.Info("Bot stopped gracefully")
}
