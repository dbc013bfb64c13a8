package repository

import (
	"context"
	"math"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) DB() *gorm.DB { return r.db }

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewRepository) GetByStylist(ctx context.Context, stylistID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.WithContext(ctx).
		Where("stylist_id = ?", stylistID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

// AverageRating returns the mean rating rounded to 2 decimal places, or
// 0.0 when the stylist has no reviews.
func (r *ReviewRepository) AverageRating(ctx context.Context, stylistID int64) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("stylist_id = ?", stylistID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0.0, nil
	}
	return math.Round(*avg*100) / 100, nil
}
