package cart

// Line is one menu item selected by a customer, together with the
// restaurant it belongs to. A cart holds at most one line per ItemID.
type Line struct {
	ItemID         int     `json:"itemId"`
	Name           string  `json:"name"`
	UnitPrice      float64 `json:"unitPrice"`
	Quantity       int     `json:"quantity"`
	RestaurantID   int     `json:"restaurantId"`
	RestaurantName string  `json:"restaurantName"`
}

// TotalPrice sums unitPrice*quantity in line order. Order checkout
// relies on the same summation order so per-restaurant totals add up
// to this figure exactly.
func TotalPrice(lines []Line) float64 {
	total := 0.0
	for _, l := range lines {
		total += l.UnitPrice * float64(l.Quantity)
	}
	return total
}

// ItemCount sums the quantities across all lines.
func ItemCount(lines []Line) int {
	count := 0
	for _, l := range lines {
		count += l.Quantity
	}
	return count
}
