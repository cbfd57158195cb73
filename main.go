package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/paseto"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/router"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	client, err := config.MongoConnect(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	db := client.Database(cfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", cfg.MongoDatabase))

	maker, err := paseto.NewMaker(cfg.PasetoSecret, 24*time.Hour)
	if err != nil {
		logger.Fatal("failed to initialize token maker", zap.Error(err))
	}

	app := fiber.New()
	config.SetupCORS(app)
	app.Use(fiberlogger.New())

	router.SetupRoutes(app, cfg, db, maker, logger)

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.Strings("cors_origins", config.GetAllowedOrigins()))
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
