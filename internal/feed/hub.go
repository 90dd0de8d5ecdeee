package feed

import (
	"fmt"
	"sync"
)

// Event is one live-query notification: an order or menu document
// changed under a topic the client watches.
type Event struct {
	Topic   string `json:"topic"`
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

func OrderTopic(hotelOwnerID int) string {
	return fmt.Sprintf("orders:%d", hotelOwnerID)
}

func MenuTopic(hotelOwnerID int) string {
	return fmt.Sprintf("menu:%d", hotelOwnerID)
}

// Hub fans events out to subscriptions per topic. Publishing never
// blocks: a subscriber that cannot keep up loses events rather than
// stalling the request that produced them.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[*Subscription]struct{})}
}

// Subscription delivers a topic's events on C until Close is called.
// Every subscriber must call Close when it stops listening; Close is
// idempotent and also closes C.
type Subscription struct {
	C <-chan Event

	hub   *Hub
	topic string
	ch    chan Event
	once  sync.Once
}

func (h *Hub) Subscribe(topic string) *Subscription {
	sub := &Subscription{hub: h, topic: topic, ch: make(chan Event, 16)}
	sub.C = sub.ch

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[topic] == nil {
		h.subs[topic] = make(map[*Subscription]struct{})
	}
	h.subs[topic][sub] = struct{}{}
	return sub
}

func (h *Hub) Publish(topic, eventType string, payload any) {
	ev := Event{Topic: topic, Type: eventType, Payload: payload}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs[topic] {
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.remove(s)
		close(s.ch)
	})
}

func (h *Hub) remove(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if set, ok := h.subs[sub.topic]; ok {
		delete(set, sub)
		if len(set) == 0 {
			delete(h.subs, sub.topic)
		}
	}
}
