package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/arlen/habitledger-api/internal/config"
	"github.com/arlen/habitledger-api/internal/database"
	"github.com/arlen/habitledger-api/internal/handlers"
	"github.com/arlen/habitledger-api/internal/ledger"
	"github.com/arlen/habitledger-api/internal/logger"
	"github.com/arlen/habitledger-api/internal/routes"
	"github.com/arlen/habitledger-api/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if err := logger.Init(cfg); err != nil {
		panic(err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		logger.Sugar.Fatalf("connect database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logger.Sugar.Fatalf("migrate database: %v", err)
	}

	svc := ledger.NewService(store.New(db), nil)
	h := handlers.New(db, svc, cfg)

	app := fiber.New()
	routes.Setup(app, h, cfg)

	logger.Sugar.Infof("starting server on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
