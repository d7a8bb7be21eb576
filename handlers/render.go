package handlers

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderBytes renders the component into a byte slice so it can be cached.
func renderBytes(component g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
