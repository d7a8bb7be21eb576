package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/people"
)

// HandleHealth returns the health status of the application
func HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status":     "ok",
		"cities":     city.Default.Len(),
		"age_ranges": len(people.AgeRanges),
	}
	if pageCache != nil {
		health["page_cache"] = pageCache.Stats()
	}
	return c.JSON(health)
}
