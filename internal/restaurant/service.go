package restaurant

import (
	"food-order-backend/internal/menu"
	"food-order-backend/internal/user"
)

type Service struct {
	repo  Repository
	users user.ServiceInterface
	menus menu.ServiceInterface
}

func NewService(repo Repository, users user.ServiceInterface, menus menu.ServiceInterface) *Service {
	return &Service{repo: repo, users: users, menus: menus}
}

// Directory lists every active restaurant for the customer's browse
// screen: one entry per hotel-owner account, joined with the owner's
// saved profile and menu counts.
func (s *Service) Directory() ([]DirectoryEntry, error) {
	owners, err := s.users.ListOwners()
	if err != nil {
		return nil, err
	}

	entries := make([]DirectoryEntry, 0, len(owners))
	for _, owner := range owners {
		entry := DirectoryEntry{HotelOwnerID: owner.ID, Name: owner.FullName}

		if profile, err := s.repo.Get(owner.ID); err == nil {
			if profile.Name != "" {
				entry.Name = profile.Name
			}
			entry.Description = profile.Description
			entry.CuisineType = profile.CuisineType
			entry.Address = profile.Address
		} else if err != ErrNotFound {
			return nil, err
		}

		total, available, err := s.menus.CountByOwner(owner.ID)
		if err != nil {
			return nil, err
		}
		entry.TotalItems = total
		entry.AvailableItems = available

		entries = append(entries, entry)
	}

	return entries, nil
}

// Menu is the customer view of one restaurant: available items only,
// optionally narrowed to the given categories.
func (s *Service) Menu(ownerID int, categories []string) ([]menu.Item, error) {
	return s.menus.ListAvailableByOwner(ownerID, categories)
}

// GetProfile falls back to a skeleton built from the owner's account
// when no profile has been saved yet.
func (s *Service) GetProfile(ownerID int) (Profile, error) {
	profile, err := s.repo.Get(ownerID)
	if err == nil {
		return profile, nil
	}
	if err != ErrNotFound {
		return Profile{}, err
	}

	owner, err := s.users.GetByID(ownerID)
	if err == user.ErrNotFound {
		return Profile{}, ErrNotFound
	}
	if err != nil {
		return Profile{}, err
	}
	if owner.Role != user.RoleHotelOwner {
		return Profile{}, ErrNotFound
	}

	return Profile{HotelOwnerID: owner.ID, Name: owner.FullName, Phone: owner.Phone}, nil
}

func (s *Service) SaveProfile(profile Profile) (Profile, error) {
	return s.repo.Save(profile)
}
