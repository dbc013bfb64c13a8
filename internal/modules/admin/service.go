package admin

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/modules/auth"
	"salonbooking/internal/repository"
)

// Service covers admin-only account lifecycle: creating principals of
// any kind, stylist moderation and the matching deletes. Catalog CRUD
// and booking overrides are delegated to their own modules at the
// handler level.
type Service struct {
	users    UserStore
	stylists StylistStore
	admins   AdminStore
}

func NewService(users UserStore, stylists StylistStore, admins AdminStore) *Service {
	return &Service{users: users, stylists: stylists, admins: admins}
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     domain.RoleClient,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return u, nil
}

// CreateStylist inserts the stylist and its service links in one
// transaction; an unknown service ID aborts the whole creation.
func (s *Service) CreateStylist(ctx context.Context, req CreateStylistRequest) (*domain.Stylist, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	st := &domain.Stylist{
		Username:       req.Username,
		Email:          req.Email,
		Password:       hashed,
		Role:           domain.RoleStylist,
		Bio:            req.Bio,
		Specialization: req.Specialization,
	}
	if err := s.stylists.Create(ctx, st, req.ServiceIDs); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return st, nil
}

func (s *Service) CreateAdmin(ctx context.Context, req CreateAdminRequest) (*domain.Admin, error) {
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = domain.RoleAdmin
	}
	if role != domain.RoleAdmin && role != domain.RoleSuperAdmin {
		return nil, ErrInvalidRole
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	a := &domain.Admin{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
	}
	if err := s.admins.Create(ctx, a); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return a, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// ListStylists returns every stylist row, including suspended and
// unverified ones that public listings hide.
func (s *Service) ListStylists(ctx context.Context) ([]domain.Stylist, error) {
	stylists, err := s.stylists.GetAll(ctx, false)
	if err != nil {
		return nil, err
	}
	if stylists == nil {
		stylists = []domain.Stylist{}
	}
	return stylists, nil
}

func (s *Service) UpdateStylist(ctx context.Context, id int64, req UpdateStylistRequest) (*domain.Stylist, error) {
	st, err := s.stylists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Bio != nil {
		st.Bio = *req.Bio
	}
	if req.Specialization != nil {
		st.Specialization = *req.Specialization
	}
	if req.Verified != nil {
		st.Verified = *req.Verified
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}

	if err := s.stylists.Update(ctx, st); err != nil {
		return nil, err
	}

	if req.ServiceIDs != nil {
		if err := s.stylists.ReplaceServices(ctx, id, *req.ServiceIDs); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
	}

	return st, nil
}

func (s *Service) VerifyStylist(ctx context.Context, id int64) (*domain.Stylist, error) {
	return s.setFlags(ctx, id, func(st *domain.Stylist) {
		st.Verified = true
	})
}

func (s *Service) SuspendStylist(ctx context.Context, id int64) (*domain.Stylist, error) {
	return s.setFlags(ctx, id, func(st *domain.Stylist) {
		st.IsActive = false
	})
}

func (s *Service) setFlags(ctx context.Context, id int64, apply func(*domain.Stylist)) (*domain.Stylist, error) {
	st, err := s.stylists.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	apply(st)
	if err := s.stylists.Update(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.users.Delete(ctx, id)
}

// DeleteStylist removes the stylist row together with its service
// links and bookings; no booking history survives the removal.
func (s *Service) DeleteStylist(ctx context.Context, id int64) error {
	if _, err := s.stylists.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.stylists.Delete(ctx, id)
}

func (s *Service) DeleteAdmin(ctx context.Context, id int64) error {
	if _, err := s.admins.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.admins.Delete(ctx, id)
}
