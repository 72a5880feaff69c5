package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/portfolio-bot/internal/config"
	"github.com/aliskhannn/portfolio-bot/internal/delivery/telegram"
	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
	"github.com/aliskhannn/portfolio-bot/internal/infra/postgres"
	"github.com/aliskhannn/portfolio-bot/internal/logger"
	"github.com/aliskhannn/portfolio-bot/internal/repository"
	"github.com/aliskhannn/portfolio-bot/internal/service"
	"github.com/aliskhannn/portfolio-bot/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Telegram bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBot(cmd)
	},
}

var botCommands = []tgbotapi.BotCommand{
	{Command: "start", Description: "Welcome and overview"},
	{Command: "menu", Description: "Open or close the navigation menu"},
	{Command: "projects", Description: "Browse projects by category"},
	{Command: "quiz", Description: "Find your teaching style"},
	{Command: "quickquiz", Description: "Three-question teaching style check"},
	{Command: "countdown", Description: "Time left until graduation"},
	{Command: "grade", Description: "Convert a mark (usage: /grade 85)"},
	{Command: "settings", Description: "Text size and dark mode"},
	{Command: "reset", Description: "Start over"},
	{Command: "help", Description: "Help"},
}

// loadConfig reads configuration using the directories given on the command line.
func loadConfig(cmd *cobra.Command, requireDB, requireBot bool) (*config.Config, error) {
	opts := config.DefaultOptions()
	if dir, _ := cmd.Flags().GetString("config-dir"); dir != "" {
		opts.ConfigPaths = []string{dir}
	}
	if f, _ := cmd.Flags().GetString("env-file"); f != "" {
		opts.EnvFiles = []string{f}
	}
	opts.RequireDB = requireDB
	opts.RequireBot = requireBot

	return config.LoadWith(opts)
}

func runBot(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd, true, true)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	variant, ok := entities.ParseQuizVariant(cfg.Quiz.DefaultVariant)
	if !ok {
		return fmt.Errorf("unknown quiz variant %q", cfg.Quiz.DefaultVariant)
	}

	loc, err := entities.ParseLocation(cfg.Countdown.Location)
	if err != nil {
		return fmt.Errorf("countdown location: %w", err)
	}
	countdown, err := entities.NewCountdown(cfg.Countdown.TargetDate, loc)
	if err != nil {
		return fmt.Errorf("countdown target: %w", err)
	}

	projectRepo, err := repository.NewProjectRepository(cfg.ProjectsPath)
	if err != nil {
		return err
	}

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return fmt.Errorf("connect to telegram: %w", err)
	}
	bot.Debug = cfg.Debug
	log.Info("authorized", zap.String("account", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(botCommands...)); err != nil {
		log.Warn("failed to set bot commands", zap.Error(err))
	}

	// Initialize repositories and services.
	tr := postgres.NewTransactor(pool)
	userRepo := repository.NewUserRepository(pool)
	prefRepo := repository.NewPreferenceRepository(pool)
	sessions := storage.NewSessionStorage()

	userService := service.NewUserService(userRepo)
	preferenceService := service.NewPreferenceService(prefRepo, tr)
	projectService := service.NewProjectService(projectRepo)
	quizService := service.NewQuizService()
	countdownService := service.NewCountdownService(countdown, sessions, cfg.Countdown.Schedule, log)

	handler := telegram.NewHandler(
		bot,
		log,
		userService,
		preferenceService,
		projectService,
		quizService,
		countdownService,
		sessions,
		variant,
	)

	countdownService.SetNotifier(handler)
	go countdownService.Start(ctx)

	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("shutdown signal received")
	return nil
}
