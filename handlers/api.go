package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trip-planner/site/city"
	"github.com/trip-planner/site/people"
)

// HandleCities returns the whole city list in order. Filtering happens in
// the browser.
func HandleCities(c *fiber.Ctx) error {
	return c.JSON(city.Default.Names())
}

// HandleAgeRanges returns the age-range options offered for each traveler.
func HandleAgeRanges(c *fiber.Ctx) error {
	return c.JSON(people.AgeRanges)
}
