package user

import "errors"

// Role identifies which side of the marketplace an account belongs to.
// It is resolved once at sign-up/sign-in and carried in the JWT claims;
// handlers never compare raw strings.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleHotelOwner Role = "hotel_owner"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleHotelOwner:
		return RoleHotelOwner, nil
	}
	return "", ErrUnknownRole
}

type User struct {
	ID       int    `json:"userId"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     Role   `json:"role"`
	IsActive bool   `json:"isActive"`

	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}
