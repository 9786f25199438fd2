package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Zor292/website2/internal/authctx"
)

type PageHandler struct {
	PublicDir string
}

// GET / — logged-in members go straight to the dashboard.
func (h *PageHandler) Home(c *fiber.Ctx) error {
	if _, ok := authctx.From(c); ok {
		return c.Redirect("/dashboard", fiber.StatusFound)
	}
	return c.SendFile(h.PublicDir + "/index.html")
}

// GET /dashboard — gated by RequirePage in the route table.
func (h *PageHandler) Dashboard(c *fiber.Ctx) error {
	return c.SendFile(h.PublicDir + "/dashboard.html")
}

// GET /health
// @Summary      Liveness check
// @Tags         meta
// @Produce      json
// @Router       /health [get]
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
