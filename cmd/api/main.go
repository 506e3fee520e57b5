package main

import (
	"net/http"
	"os"

	"github.com/cardcollection-app/cardcollection-backend/internal/api"
	"github.com/cardcollection-app/cardcollection-backend/internal/config"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Error("could not load configuration: %v", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Error("could not connect to database: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Success("Connected to PostgreSQL")

	router := api.NewRouter(cfg, db)

	logger.Success("Server listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}
