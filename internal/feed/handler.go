package feed

import (
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Handler bridges hub subscriptions onto websockets. Each connection
// owns exactly one subscription, released when the socket closes.
type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws/hotel/:id<int>/orders", websocket.New(h.streamOrders))
	app.Get("/ws/restaurants/:id<int>/menu", websocket.New(h.streamMenu))
}

func (h *Handler) streamOrders(c *websocket.Conn) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		c.Close()
		return
	}
	h.stream(c, OrderTopic(id))
}

func (h *Handler) streamMenu(c *websocket.Conn) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		c.Close()
		return
	}
	h.stream(c, MenuTopic(id))
}

func (h *Handler) stream(c *websocket.Conn, topic string) {
	sub := h.hub.Subscribe(topic)
	defer c.Close()

	// the read loop only exists to notice the client going away
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				sub.Close()
				return
			}
		}
	}()

	for ev := range sub.C {
		if err := c.WriteJSON(ev); err != nil {
			break
		}
	}
	sub.Close()
}
