package main

import (
	"github.com/trip-planner/site/config"
	h "github.com/trip-planner/site/handlers"
	"github.com/trip-planner/site/logger"
	"github.com/trip-planner/site/server"
)

func main() {
	config.Load()
	logger.Init(config.LogLevel, config.LogFormat)
	log := logger.Log

	// Initialize rendered page cache
	if err := h.InitPageCache(); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize page cache")
	}

	app := server.New()

	log.Info().Str("port", config.ServerPort).Str("static", config.StaticDir).Msg("starting server")
	if err := app.Listen(":" + config.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
