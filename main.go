package main

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"blogapi/internal/config"
	"blogapi/internal/notifier"
	"blogapi/internal/repository"
	"blogapi/internal/server"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "configs/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := repository.NewMongoClient(ctx, cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()
	db := client.Database(cfg.Database.Name)

	blogs := repository.NewBlogRepository(db, logger)
	if err := blogs.EnsureTitleIndex(ctx); err != nil {
		logger.Fatal("Failed to create blog title index", zap.Error(err))
	}
	users := repository.NewUserRepository(db, logger)
	if err := repository.SeedInitialUser(ctx, users, cfg, logger); err != nil {
		logger.Fatal("Failed to seed initial user", zap.Error(err))
	}

	if err := os.MkdirAll(cfg.Server.StaticDir, 0o755); err != nil {
		logger.Fatal("Failed to create static directory", zap.Error(err))
	}

	bot, err := notifier.NewBot(cfg, logger)
	if err != nil {
		logger.Warn("Failed to initialize Telegram bot, continuing without it", zap.Error(err))
		bot = nil
	}

	srv := server.NewServer(db, cfg, bot, logger)
	srv.Run(cfg.Server.Port)
}
