package user

import "golang.org/x/crypto/bcrypt"

// ServiceInterface is what other feature packages depend on.
type ServiceInterface interface {
	GetByID(id int) (User, error)
	ListOwners() ([]User, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(id int) (User, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Register(u User) (User, error) {
	if _, err := s.repo.GetByEmail(u.Email); err == nil {
		return User{}, ErrEmailExists
	} else if err != ErrNotFound {
		return User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	u.Password = string(hashed)
	u.IsActive = true
	return s.repo.Create(u)
}

func (s *Service) Authenticate(email, password string) (User, error) {
	u, err := s.repo.GetByEmail(email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Update(id int, u User) (User, error) {
	return s.repo.Update(id, u)
}

// ListOwners returns the active hotel-owner accounts. It powers the
// customer-facing restaurant directory.
func (s *Service) ListOwners() ([]User, error) {
	owners, err := s.repo.ListByRole(RoleHotelOwner)
	if err != nil {
		return nil, err
	}

	active := make([]User, 0, len(owners))
	for _, o := range owners {
		if o.IsActive {
			active = append(active, o)
		}
	}
	return active, nil
}
