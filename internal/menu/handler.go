package menu

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"food-order-backend/internal/user"
)

var validate = validator.New()

// Handler exposes the owner side of menu management. Customers reach
// menus through the public restaurant directory instead.
type Handler struct {
	service *Service
	users   user.ServiceInterface
}

func NewHandler(s *Service, users user.ServiceInterface) *Handler {
	return &Handler{service: s, users: users}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	owner := user.RequireRole(user.RoleHotelOwner)
	app.Get("/api/v1/hotel/menu", owner, h.listItems)
	app.Post("/api/v1/hotel/menu", owner, h.createItem)
	app.Put("/api/v1/hotel/menu/:id<int>", owner, h.updateItem)
	app.Delete("/api/v1/hotel/menu/:id<int>", owner, h.deleteItem)
	app.Patch("/api/v1/hotel/menu/:id<int>/availability", owner, h.toggleAvailability)
}

type itemRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Category    string  `json:"category" validate:"required"`
	Image       string  `json:"image"`
}

func (h *Handler) listItems(c *fiber.Ctx) error {
	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	items, err := h.service.ListByOwner(ownerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"items": items})
}

func (h *Handler) createItem(c *fiber.Ctx) error {
	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !IsAllowedCategory(payload.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown category: " + payload.Category})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	item := Item{
		Name:         payload.Name,
		Description:  payload.Description,
		Price:        payload.Price,
		Category:     payload.Category,
		Image:        payload.Image,
		HotelOwnerID: ownerID,
		HotelName:    h.hotelName(ownerID),
	}

	created, err := h.service.Create(item)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	payload := new(itemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if !IsAllowedCategory(payload.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "unknown category: " + payload.Category})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	existing, err := h.service.GetByID(id)
	if err != nil {
		return menuError(c, err)
	}

	update := existing
	update.Name = payload.Name
	update.Description = payload.Description
	update.Price = payload.Price
	update.Category = payload.Category
	update.Image = payload.Image

	updated, err := h.service.Update(ownerID, id, update)
	if err != nil {
		return menuError(c, err)
	}

	return c.JSON(updated)
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Delete(ownerID, id); err != nil {
		return menuError(c, err)
	}

	return c.JSON(fiber.Map{"message": "menu item deleted"})
}

func (h *Handler) toggleAvailability(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	item, err := h.service.ToggleAvailability(ownerID, id)
	if err != nil {
		return menuError(c, err)
	}
	if item.ID == 0 {
		// The item vanished between the owner's screen and the toggle.
		return c.JSON(fiber.Map{"message": "menu item no longer exists"})
	}

	return c.JSON(item)
}

func (h *Handler) hotelName(ownerID int) string {
	if h.users == nil {
		return ""
	}
	owner, err := h.users.GetByID(ownerID)
	if err != nil {
		return ""
	}
	return owner.FullName
}

func menuError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	case ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
