package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/trip-planner/site/cache"
	"github.com/trip-planner/site/config"
	"github.com/trip-planner/site/logger"
	"github.com/trip-planner/site/metrics"
	"github.com/trip-planner/site/ui"
)

var pageCache *cache.Cache[[]byte]

// InitPageCache creates the cache of rendered pages. Pages are rendered on
// every request until it is called.
func InitPageCache() error {
	c, err := cache.New("Page Cache", config.PageCacheTTL, func(b []byte) int64 {
		return int64(len(b))
	})
	if err != nil {
		return err
	}
	pageCache = c
	return nil
}

// ClearPageCache drops every cached page.
func ClearPageCache() {
	if pageCache != nil {
		pageCache.Clear()
	}
}

// HandleHome serves the trip input page.
func HandleHome(c *fiber.Ctx) error {
	const key = "home"
	if pageCache != nil {
		if page, ok := pageCache.Get(key); ok {
			metrics.RecordPageRender(key, true)
			c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return c.Send(page)
		}
	}

	page, err := renderBytes(ui.TripPage())
	if err != nil {
		return err
	}
	if pageCache != nil && !pageCache.Set(key, page) {
		logger.Log.Debug().Str("page", key).Msg("page cache dropped set")
	}
	metrics.RecordPageRender(key, false)
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(page)
}
