package catalog

import (
	"context"

	"salonbooking/internal/domain"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetAll(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	GetStylists(ctx context.Context, serviceID int64) ([]domain.Stylist, error)
	StylistsByService(ctx context.Context, serviceIDs []int64) (map[int64][]domain.Stylist, error)
	ReplaceStylists(ctx context.Context, serviceID int64, stylistIDs []int64) error
	Delete(ctx context.Context, serviceID int64) error
}
