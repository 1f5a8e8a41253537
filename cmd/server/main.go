package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real env vars still win
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Log.Level)

	db, err := bootstrap(cfg)
	if err != nil {
		logger.Fatalf("Failed to bootstrap: %v", err)
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	registerRoutes(r, db, cfg)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	logger.Info().Str("addr", addr).Msg("hive backend listening")
	if err := r.Run(addr); err != nil {
		logger.Fatalf("Server exited: %v", err)
	}
}
