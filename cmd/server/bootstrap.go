package main

import (
	"fmt"

	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/internal/utils"
	"github.com/hiveproductions/hive/backend/pkg/logger"
	"gorm.io/gorm"
)

// bootstrap initializes the database connection, runs migrations and seeds
// the default organization and admin account.
func bootstrap(cfg *config.Config) (*gorm.DB, error) {
	utils.SetJWTSecret(cfg.JWT.Secret)

	db, err := models.InitDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	authService := services.NewAuthService(db, &cfg.JWT)
	if err := authService.SeedDefaults(&cfg.Seed); err != nil {
		logger.Warn().Err(err).Msg("Failed to seed default data")
	}

	return db, nil
}
