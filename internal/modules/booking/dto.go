package booking

import (
	"time"

	"salonbooking/internal/repository"
)

type CreateBookingRequest struct {
	StylistID       int64     `json:"stylist_id" binding:"required"`
	ServiceID       int64     `json:"service_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
}

type CreateForUserRequest struct {
	UserID          int64     `json:"user_id" binding:"required"`
	StylistID       int64     `json:"stylist_id" binding:"required"`
	ServiceID       int64     `json:"service_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
}

type UpdateBookingRequest struct {
	BookingID       int64     `json:"booking_id" binding:"required"`
	AppointmentTime time.Time `json:"appointment_time" binding:"required"`
}

// BookingList partitions a principal's bookings around the current
// instant: past ones most recent first, upcoming ones soonest first.
type BookingList struct {
	PreviousBookings []repository.BookingDetails `json:"previous_bookings"`
	UpcomingBookings []repository.BookingDetails `json:"upcoming_bookings"`
}
