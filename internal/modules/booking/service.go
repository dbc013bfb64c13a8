package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

// Service owns the booking lifecycle: creation with its precondition
// chain, the status machine, time-partitioned listing and deletion.
// The "no two confirmed bookings per stylist+slot" invariant is held by
// a partial unique index; the in-service conflict check only provides
// the friendly error for the common case.
type Service struct {
	bookings BookingRepository
	catalog  CatalogGate
	stylists StylistGate
	users    UserGate
}

func NewService(bookings BookingRepository, catalog CatalogGate, stylists StylistGate, users UserGate) *Service {
	return &Service{bookings: bookings, catalog: catalog, stylists: stylists, users: users}
}

// Create books an appointment for the client. Preconditions, in order:
// service exists, stylist exists, stylist offers the service, time is
// strictly in the future (UTC), no confirmed booking holds the slot.
func (s *Service) Create(ctx context.Context, clientID int64, req CreateBookingRequest) (*repository.BookingDetails, error) {
	return s.create(ctx, clientID, req.StylistID, req.ServiceID, req.AppointmentTime)
}

// CreateOnBehalf runs the same precondition chain for a stylist or
// admin booking on behalf of an existing user.
func (s *Service) CreateOnBehalf(ctx context.Context, req CreateForUserRequest) (*repository.BookingDetails, error) {
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.create(ctx, req.UserID, req.StylistID, req.ServiceID, req.AppointmentTime)
}

func (s *Service) create(ctx context.Context, userID, stylistID, serviceID int64, at time.Time) (*repository.BookingDetails, error) {
	if _, err := s.catalog.GetByID(ctx, serviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	if _, err := s.stylists.GetByID(ctx, stylistID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStylistNotFound
		}
		return nil, err
	}

	offered, err := s.stylists.OffersService(ctx, stylistID, serviceID)
	if err != nil {
		return nil, err
	}
	if !offered {
		return nil, ErrNotOffered
	}

	at = at.UTC()
	if !at.After(time.Now().UTC()) {
		return nil, ErrPastTime
	}

	cnt, err := s.bookings.CountConfirmedAt(ctx, stylistID, at, 0)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrSlotConflict
	}

	b := &domain.Booking{
		UserID:          userID,
		StylistID:       stylistID,
		ServiceID:       serviceID,
		AppointmentTime: at,
		Status:          domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	return s.bookings.GetDetails(ctx, b.ID)
}

// UpdateTime moves a pending booking to a new future slot. Only the
// owning client may move it, and only while it is still pending.
func (s *Service) UpdateTime(ctx context.Context, requesterID int64, req UpdateBookingRequest) (*repository.BookingDetails, error) {
	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.UserID != requesterID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingPending {
		return nil, ErrNotEditable
	}

	at := req.AppointmentTime.UTC()
	if !at.After(time.Now().UTC()) {
		return nil, ErrPastTime
	}

	cnt, err := s.bookings.CountConfirmedAt(ctx, b.StylistID, at, b.ID)
	if err != nil {
		return nil, err
	}
	if cnt > 0 {
		return nil, ErrSlotConflict
	}

	if err := s.bookings.UpdateAppointmentTime(ctx, b.ID, at); err != nil {
		return nil, err
	}

	return s.bookings.GetDetails(ctx, b.ID)
}

// Transition moves a booking along the status machine. The actor must
// be the assigned stylist or an admin. The write is conditional on the
// status the actor saw, so a concurrent transition loses cleanly, and
// confirming into an already-taken slot trips the store constraint.
func (s *Service) Transition(ctx context.Context, bookingID int64, actor *domain.Principal, target domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch actor.Kind {
	case domain.KindAdmin:
		// admins may act on any booking
	case domain.KindStylist:
		if b.StylistID != actor.ID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	if !domain.CanTransition(b.Status, target) {
		return nil, ErrInvalidTransition
	}

	if err := s.bookings.UpdateStatusFrom(ctx, b.ID, b.Status, target); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlotConflict
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	b.Status = target
	return b, nil
}

// List partitions the principal's bookings around now (UTC). Clients
// see their own, stylists see their schedule, admins see everything.
func (s *Service) List(ctx context.Context, p *domain.Principal) (*BookingList, error) {
	var f repository.BookingFilter
	switch p.Kind {
	case domain.KindClient:
		f.UserID = &p.ID
	case domain.KindStylist:
		f.StylistID = &p.ID
	case domain.KindAdmin:
		// unfiltered
	}

	now := time.Now().UTC()

	previous, err := s.bookings.ListDetailed(ctx, f, now, true)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.bookings.ListDetailed(ctx, f, now, false)
	if err != nil {
		return nil, err
	}

	return &BookingList{PreviousBookings: previous, UpcomingBookings: upcoming}, nil
}

// Delete removes a booking. Only the owning client may delete it; there
// is no status restriction on deletion.
func (s *Service) Delete(ctx context.Context, bookingID int64, requester *domain.Principal) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if requester.Kind != domain.KindClient || b.UserID != requester.ID {
		return ErrForbidden
	}

	return s.bookings.Delete(ctx, bookingID)
}
