package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"blogapi/internal/config"
	"blogapi/internal/models"
	"blogapi/internal/service"
)

// SeedInitialUser creates the administrator account when the users
// collection is empty. The guard is only "zero users exist": once any
// user has been created it never fires again.
func SeedInitialUser(ctx context.Context, users UserRepository, cfg *config.Config, logger *zap.Logger) error {
	count, err := users.EstimatedCount(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := service.HashPassword(cfg.Bootstrap.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		Username:  cfg.Bootstrap.Username,
		Email:     cfg.Bootstrap.Email,
		Password:  hash,
		CreatedAt: time.Now(),
	}
	if _, err := users.Insert(ctx, user); err != nil {
		return err
	}

	logger.Info("Initial admin user created", zap.String("username", user.Username))
	return nil
}
