package admin

import (
	"context"

	"salonbooking/internal/domain"
)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetAll(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type StylistStore interface {
	Create(ctx context.Context, s *domain.Stylist, serviceIDs []int64) error
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	GetAll(ctx context.Context, publicOnly bool) ([]domain.Stylist, error)
	Update(ctx context.Context, s *domain.Stylist) error
	ReplaceServices(ctx context.Context, stylistID int64, serviceIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

type AdminStore interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByID(ctx context.Context, id int64) (*domain.Admin, error)
	Delete(ctx context.Context, id int64) error
}
