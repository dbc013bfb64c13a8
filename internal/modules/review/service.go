package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

// Service handles stylist reviews and rating aggregation. Any client
// may review any stylist; there is no requirement that a completed
// booking exists between the two.
type Service struct {
	reviews  ReviewRepository
	stylists StylistGate
}

func NewService(reviews ReviewRepository, stylists StylistGate) *Service {
	return &Service{reviews: reviews, stylists: stylists}
}

func (s *Service) Create(ctx context.Context, author *domain.Principal, req CreateReviewRequest) (*domain.Review, error) {
	if author.Kind != domain.KindClient {
		return nil, ErrForbidden
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.stylists.GetByID(ctx, req.StylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStylistNotFound
		}
		return nil, err
	}

	rv := &domain.Review{
		UserID:     author.ID,
		StylistID:  req.StylistID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByStylist(ctx context.Context, stylistID int64) ([]domain.Review, error) {
	if _, err := s.stylists.GetByID(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStylistNotFound
		}
		return nil, err
	}
	reviews, err := s.reviews.GetByStylist(ctx, stylistID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

// AverageRating reports the stylist's mean rating, 0.0 when no reviews
// exist yet. Unknown stylist IDs also resolve to 0.0 here, matching the
// aggregate nature of the endpoint.
func (s *Service) AverageRating(ctx context.Context, stylistID int64) (float64, error) {
	return s.reviews.AverageRating(ctx, stylistID)
}
