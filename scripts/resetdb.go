// Command resetdb drops and recreates the users table, discarding all
// stored submissions. Development use only.
//
//	go run ./scripts
package main

import (
	"contactform/internal/config"
	"contactform/internal/database"
	"contactform/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	log.Info().Str("database", cfg.DBName).Msg("resetting users table")
	if err := database.Reset(db); err != nil {
		log.Fatal().Err(err).Msg("database reset failed")
	}
	log.Info().Msg("database reset complete")
}
