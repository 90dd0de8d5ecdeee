package restaurant

// Profile is the owner-editable presentation of a restaurant. It is
// keyed by the owner's user id; a restaurant without a saved profile
// still appears in the directory under the owner's account name.
type Profile struct {
	HotelOwnerID int    `json:"hotelOwnerId"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CuisineType  string `json:"cuisineType,omitempty"`
	OpeningHours string `json:"openingHours,omitempty"`
}

// DirectoryEntry is one row of the customer-facing restaurant list:
// the profile joined with the restaurant's menu counts.
type DirectoryEntry struct {
	HotelOwnerID   int    `json:"hotelOwnerId"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	CuisineType    string `json:"cuisineType,omitempty"`
	Address        string `json:"address,omitempty"`
	TotalItems     int    `json:"totalItems"`
	AvailableItems int    `json:"availableItems"`
}
