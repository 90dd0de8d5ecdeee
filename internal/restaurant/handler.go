package restaurant

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"food-order-backend/internal/user"
)

var validate = validator.New()

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// The directory and per-restaurant menu are browsable before sign-in.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/restaurants", h.listRestaurants)
	app.Get("/api/v1/restaurants/:id<int>/menu", h.restaurantMenu)
	app.Get("/api/v1/restaurants/:id<int>/profile", h.restaurantProfile)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	owner := user.RequireRole(user.RoleHotelOwner)
	app.Put("/api/v1/hotel/restaurant", owner, h.saveProfile)
}

type profileRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	CuisineType  string `json:"cuisineType"`
	OpeningHours string `json:"openingHours"`
}

func (h *Handler) listRestaurants(c *fiber.Ctx) error {
	entries, err := h.service.Directory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"restaurants": entries})
}

func (h *Handler) restaurantMenu(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid restaurant id"})
	}

	var categories []string
	if q := c.Query("category"); q != "" {
		categories = strings.Split(q, ",")
	}

	items, err := h.service.Menu(id, categories)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) restaurantProfile(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid restaurant id"})
	}

	profile, err := h.service.GetProfile(id)
	if err == ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(profile)
}

func (h *Handler) saveProfile(c *fiber.Ctx) error {
	payload := new(profileRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	saved, err := h.service.SaveProfile(Profile{
		HotelOwnerID: ownerID,
		Name:         payload.Name,
		Description:  payload.Description,
		Address:      payload.Address,
		Phone:        payload.Phone,
		CuisineType:  payload.CuisineType,
		OpeningHours: payload.OpeningHours,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(saved)
}
