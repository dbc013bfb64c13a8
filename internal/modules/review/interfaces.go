package review

import (
	"context"

	"salonbooking/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByStylist(ctx context.Context, stylistID int64) ([]domain.Review, error)
	AverageRating(ctx context.Context, stylistID int64) (float64, error)
}

type StylistGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
}
