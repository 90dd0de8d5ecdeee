package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"food-order-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	owner := user.RequireRole(user.RoleHotelOwner)
	app.Get("/api/v1/hotel/dashboard", owner, h.getStats)
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	stats, err := h.service.Stats(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(stats)
}
