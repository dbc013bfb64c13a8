package stylist

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/modules/auth"
)

type StylistRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	GetAll(ctx context.Context, publicOnly bool) ([]domain.Stylist, error)
	SearchBySpecialization(ctx context.Context, specialization string) ([]domain.Stylist, error)
	GetServices(ctx context.Context, stylistID int64) ([]domain.Service, error)
	ServicesByStylist(ctx context.Context, stylistIDs []int64) (map[int64][]domain.Service, error)
	Update(ctx context.Context, s *domain.Stylist) error
}

type Service struct {
	stylists StylistRepository
}

func NewService(stylists StylistRepository) *Service {
	return &Service{stylists: stylists}
}

// List returns active, verified stylists with their service sets.
func (s *Service) List(ctx context.Context) ([]StylistWithServices, error) {
	all, err := s.stylists.GetAll(ctx, true)
	if err != nil {
		return nil, err
	}
	return s.withServices(ctx, all)
}

func (s *Service) Get(ctx context.Context, id int64) (*StylistWithServices, error) {
	st, err := s.stylists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	services, err := s.stylists.GetServices(ctx, id)
	if err != nil {
		return nil, err
	}
	if services == nil {
		services = []domain.Service{}
	}

	return &StylistWithServices{Stylist: *st, Services: services}, nil
}

func (s *Service) Search(ctx context.Context, specialization string) ([]StylistWithServices, error) {
	found, err := s.stylists.SearchBySpecialization(ctx, specialization)
	if err != nil {
		return nil, err
	}
	return s.withServices(ctx, found)
}

func (s *Service) ChangePassword(ctx context.Context, stylistID int64, req PasswordChangeRequest) error {
	st, err := s.stylists.GetByID(ctx, stylistID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(st.Password), []byte(req.OldPassword)) != nil {
		return ErrWrongPassword
	}

	hashed, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	st.Password = hashed

	return s.stylists.Update(ctx, st)
}

// withServices attaches each stylist's service set, loaded with one
// batched query rather than a lookup per row.
func (s *Service) withServices(ctx context.Context, stylists []domain.Stylist) ([]StylistWithServices, error) {
	ids := make([]int64, 0, len(stylists))
	for _, st := range stylists {
		ids = append(ids, st.ID)
	}

	byStylist, err := s.stylists.ServicesByStylist(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]StylistWithServices, 0, len(stylists))
	for _, st := range stylists {
		services := byStylist[st.ID]
		if services == nil {
			services = []domain.Service{}
		}
		out = append(out, StylistWithServices{Stylist: st, Services: services})
	}
	return out, nil
}
