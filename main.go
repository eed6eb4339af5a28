package main

import (
	"log/slog"
	"os"

	"portfolio-cms/config"
	"portfolio-cms/database"
	"portfolio-cms/internal/app"
	routes "portfolio-cms/internal/app/http"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg.Log)
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DBURL)
	if err != nil {
		logger.Error("database", slog.Any("error", err))
		os.Exit(1)
	}

	r := routes.NewRouter(routes.Deps{DB: db, Config: cfg, Logger: logger})

	logger.Info("listening", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
