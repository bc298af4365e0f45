package main

import (
	"Meal-Planner-Backend/cmd/config"
	migration "Meal-Planner-Backend/cmd/database/migrate"
	"Meal-Planner-Backend/internal/utils"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	cfg := utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db, cfg)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("error shutting down: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
