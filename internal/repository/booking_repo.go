package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) DB() *gorm.DB { return r.db }

// BookingDetails is a booking row joined with the stylist username and
// service name. The join runs once per listing, never per row.
type BookingDetails struct {
	ID              int64                `json:"id"`
	UserID          int64                `json:"user_id"`
	StylistID       int64                `json:"stylist_id"`
	ServiceID       int64                `json:"service_id"`
	AppointmentTime time.Time            `json:"appointment_time"`
	Status          domain.BookingStatus `json:"status"`
	StylistName     string               `json:"stylist_name"`
	ServiceName     string               `json:"service_name"`
}

// BookingFilter scopes a listing: clients filter by UserID, stylists by
// StylistID, admins leave both nil.
type BookingFilter struct {
	UserID    *int64
	StylistID *int64
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetDetails returns one booking enriched with stylist and service names.
func (r *BookingRepository) GetDetails(ctx context.Context, id int64) (*BookingDetails, error) {
	var d BookingDetails
	err := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("bookings.*, stylists.username AS stylist_name, services.name AS service_name").
		Joins("JOIN stylists ON stylists.id = bookings.stylist_id").
		Joins("JOIN services ON services.service_id = bookings.service_id").
		Where("bookings.id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// CountConfirmedAt counts confirmed bookings for the stylist at exactly
// the given time, excluding excludeID (0 to exclude nothing). Only the
// exact-timestamp, confirmed case is a slot conflict; pending bookings
// may pile up on the same slot.
func (r *BookingRepository) CountConfirmedAt(ctx context.Context, stylistID int64, at time.Time, excludeID int64) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("stylist_id = ? AND appointment_time = ? AND status = ?",
			stylistID, at.UTC(), domain.BookingConfirmed)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var cnt int64
	if err := q.Count(&cnt).Error; err != nil {
		return 0, err
	}
	return cnt, nil
}

// UpdateAppointmentTime mutates only the appointment time.
func (r *BookingRepository) UpdateAppointmentTime(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("appointment_time", at.UTC()).Error
}

// UpdateStatusFrom moves the booking from one status to another in a
// single conditional write. Returns gorm.ErrRecordNotFound when the row
// was no longer in the expected status, so a concurrent transition loses
// cleanly instead of clobbering.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Booking{}, id).Error
}

// ListDetailed returns the filtered bookings partitioned around now:
// past=true selects appointment_time < now ordered most recent first,
// past=false selects appointment_time >= now ordered soonest first.
func (r *BookingRepository) ListDetailed(ctx context.Context, f BookingFilter, now time.Time, past bool) ([]BookingDetails, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Booking{}).
		Select("bookings.*, stylists.username AS stylist_name, services.name AS service_name").
		Joins("JOIN stylists ON stylists.id = bookings.stylist_id").
		Joins("JOIN services ON services.service_id = bookings.service_id")

	if f.UserID != nil {
		q = q.Where("bookings.user_id = ?", *f.UserID)
	}
	if f.StylistID != nil {
		q = q.Where("bookings.stylist_id = ?", *f.StylistID)
	}

	if past {
		q = q.Where("bookings.appointment_time < ?", now.UTC()).
			Order("bookings.appointment_time DESC")
	} else {
		q = q.Where("bookings.appointment_time >= ?", now.UTC()).
			Order("bookings.appointment_time ASC")
	}

	rows := make([]BookingDetails, 0)
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
