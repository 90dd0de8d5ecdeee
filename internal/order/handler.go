package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"food-order-backend/internal/cart"
	"food-order-backend/internal/user"
)

// Handler drives checkout for customers and order management for
// restaurant owners. It needs the cart service for the checkout
// snapshot and the user service for the customer's account email.
type Handler struct {
	service *Service
	carts   cart.ServiceInterface
	users   user.ServiceInterface
}

func NewHandler(s *Service, carts cart.ServiceInterface, users user.ServiceInterface) *Handler {
	return &Handler{service: s, carts: carts, users: users}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	customer := user.RequireRole(user.RoleCustomer)
	owner := user.RequireRole(user.RoleHotelOwner)

	app.Post("/api/v1/orders", customer, h.checkout)
	app.Get("/api/v1/orders", customer, h.listMine)
	app.Get("/api/v1/hotel/orders", owner, h.listForOwner)
	app.Patch("/api/v1/hotel/orders/:id<int>/status", owner, h.updateStatus)
}

type checkoutRequest struct {
	Name                string `json:"name"`
	Phone               string `json:"phone"`
	DeliveryAddress     string `json:"deliveryAddress"`
	SpecialInstructions string `json:"specialInstructions"`
}

func (h *Handler) checkout(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	account, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "user not found"})
	}

	// lock the cart so nothing mutates it between the snapshot below
	// and the clear at the end
	if err := h.carts.BeginCheckout(userID); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
	}
	defer h.carts.EndCheckout(userID)

	lines, err := h.carts.Get(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	if len(lines) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "cart is empty"})
	}

	created, err := h.service.Checkout(lines,
		Customer{ID: userID, Name: payload.Name, Email: account.Email, Phone: payload.Phone},
		Delivery{Address: payload.DeliveryAddress, SpecialInstructions: payload.SpecialInstructions},
	)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": ve.Error(),
				"field":   ve.Field,
			})
		}
		// a later create failed: earlier orders stay persisted and the
		// cart stays intact so the customer can retry
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": err.Error(),
			"orders":  created,
		})
	}

	if err := h.carts.ClearLocked(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": err.Error(),
			"orders":  created,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"orders": created})
}

func (h *Handler) listMine(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByCustomer(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(orders)
}

func (h *Handler) listForOwner(c *fiber.Ctx) error {
	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByOwner(ownerID, c.Query("status"))
	if err != nil {
		if err == ErrUnknownStatus {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(orders)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	target, err := ParseStatus(payload.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ownerID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	updated, err := h.service.UpdateStatus(ownerID, orderID, target)
	if err != nil {
		var ite *InvalidTransitionError
		switch {
		case errors.As(err, &ite):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": ite.Error()})
		case err == ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case err == ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(updated)
}
