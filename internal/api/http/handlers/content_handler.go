package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/clinic-service/internal/repository"
	"github.com/spec-kit/clinic-service/internal/service"
)

// ContentHandler serves read-only site content.
type ContentHandler struct {
	content *service.ContentService
}

// NewContentHandler constructs handler.
func NewContentHandler(content *service.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// Gallery GET /api/v1/gallery.
func (h *ContentHandler) Gallery(c *fiber.Ctx) error {
	filter := repository.GalleryFilter{}
	if category := c.Query("category"); category != "" {
		filter.Category = &category
	}
	if featured := parseBoolQuery(c.Query("featured")); featured != nil {
		filter.Featured = featured
	}

	images, err := h.content.Gallery(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": images})
}

// Testimonials GET /api/v1/testimonials.
func (h *ContentHandler) Testimonials(c *fiber.Ctx) error {
	featured := parseBoolQuery(c.Query("featured"))

	items, err := h.content.Testimonials(c.UserContext(), featured)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": items})
}

func parseBoolQuery(val string) *bool {
	if val == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return nil
	}
	return &parsed
}
