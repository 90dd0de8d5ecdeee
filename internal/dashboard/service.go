package dashboard

import (
	"food-order-backend/internal/menu"
	"food-order-backend/internal/order"
)

type Service struct {
	orders order.Repository
	menus  menu.ServiceInterface
}

func NewService(orders order.Repository, menus menu.ServiceInterface) *Service {
	return &Service{orders: orders, menus: menus}
}

func (s *Service) Stats(ownerID int) (Stats, error) {
	orders, err := s.orders.ListByOwner(ownerID, "")
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{TotalOrders: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case order.StatusPending:
			stats.PendingOrders++
		case order.StatusDelivered:
			stats.TotalRevenue += o.Total
		}
	}

	total, _, err := s.menus.CountByOwner(ownerID)
	if err != nil {
		return Stats{}, err
	}
	stats.TotalMenuItems = total

	return stats, nil
}
