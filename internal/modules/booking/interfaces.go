package booking

import (
	"context"
	"time"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetDetails(ctx context.Context, id int64) (*repository.BookingDetails, error)
	CountConfirmedAt(ctx context.Context, stylistID int64, at time.Time, excludeID int64) (int64, error)
	UpdateAppointmentTime(ctx context.Context, id int64, at time.Time) error
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error
	Delete(ctx context.Context, id int64) error
	ListDetailed(ctx context.Context, f repository.BookingFilter, now time.Time, past bool) ([]repository.BookingDetails, error)
}

type CatalogGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

type StylistGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Stylist, error)
	OffersService(ctx context.Context, stylistID, serviceID int64) (bool, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
