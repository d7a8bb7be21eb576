package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trip-planner/site/config"
	h "github.com/trip-planner/site/handlers"
)

// New returns the application with every route registered.
func New() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(h.RateLimiter())

	// Widget bundle
	app.Static("/", config.StaticDir)

	// Trip input page
	app.Get("/", h.HandleHome)

	api := app.Group("/api")
	api.Post("/trip", h.HandleTripSubmission)
	api.Get("/cities", h.HandleCities)
	api.Get("/age-ranges", h.HandleAgeRanges)

	app.Get("/health", h.HandleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	return app
}
