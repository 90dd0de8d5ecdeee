package cart

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"food-order-backend/internal/user"
)

var validate = validator.New()

// Handler exposes the customer's cart over HTTP. The cart itself is
// never persisted to Postgres; it lives in the cart repository until
// checkout turns it into orders.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	customer := user.RequireRole(user.RoleCustomer)
	app.Get("/api/v1/cart", customer, h.getCart)
	app.Post("/api/v1/cart/items", customer, h.addItem)
	app.Put("/api/v1/cart/items/:itemId<int>", customer, h.updateQuantity)
	app.Delete("/api/v1/cart/items/:itemId<int>", customer, h.removeItem)
	app.Delete("/api/v1/cart", customer, h.clearCart)
}

type addItemRequest struct {
	ItemID         int     `json:"itemId" validate:"required,gt=0"`
	Name           string  `json:"name" validate:"required"`
	UnitPrice      float64 `json:"unitPrice" validate:"gte=0"`
	RestaurantID   int     `json:"restaurantId" validate:"required,gt=0"`
	RestaurantName string  `json:"restaurantName" validate:"required"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := new(addItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if err := validate.Struct(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lines, err := h.service.AddItem(userID, Line{
		ItemID:         payload.ItemID,
		Name:           payload.Name,
		UnitPrice:      payload.UnitPrice,
		RestaurantID:   payload.RestaurantID,
		RestaurantName: payload.RestaurantName,
	})
	if err != nil {
		return cartError(c, err)
	}

	return c.JSON(cartResponse(lines))
}

func (h *Handler) updateQuantity(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	payload := new(updateQuantityRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lines, err := h.service.UpdateQuantity(userID, itemID, payload.Quantity)
	if err != nil {
		return cartError(c, err)
	}

	return c.JSON(cartResponse(lines))
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid item id"})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lines, err := h.service.RemoveItem(userID, itemID)
	if err != nil {
		return cartError(c, err)
	}

	return c.JSON(cartResponse(lines))
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lines, err := h.service.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(cartResponse(lines))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.Clear(userID); err != nil {
		return cartError(c, err)
	}

	return c.JSON(cartResponse(nil))
}

func cartResponse(lines []Line) fiber.Map {
	if lines == nil {
		lines = []Line{}
	}
	return fiber.Map{
		"items":      lines,
		"totalPrice": TotalPrice(lines),
		"itemCount":  ItemCount(lines),
	}
}

func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case ErrInvalidQuantity:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	case ErrCheckoutInFlight:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
}
