package menu

// Item is one dish on a restaurant's menu and maps to the
// `menu_items` table. HotelOwnerID ties the item to the owning
// restaurant account.
type Item struct {
	ID          int     `json:"itemId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	IsAvailable bool    `json:"isAvailable"`
	Image       string  `json:"image,omitempty"`

	HotelOwnerID int    `json:"hotelOwnerId"`
	HotelName    string `json:"hotelName"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// AllowedCategories contains the supported menu categories. The client
// shows them as filter tabs, with an extra "All" tab of its own.
var AllowedCategories = []string{
	"Pizza",
	"Burgers",
	"Salads",
	"Drinks",
	"Desserts",
}

func IsAllowedCategory(category string) bool {
	for _, c := range AllowedCategories {
		if c == category {
			return true
		}
	}
	return false
}
