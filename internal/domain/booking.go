package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// CanTransition reports whether a booking may move from one status to
// another. The only legal paths are pending→confirmed, pending→rejected
// and confirmed→completed; rejected and completed are terminal.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingConfirmed || to == BookingRejected
	case BookingConfirmed:
		return to == BookingCompleted
	default:
		return false
	}
}

type Booking struct {
	ID              int64         `json:"id" gorm:"primaryKey"`
	UserID          int64         `json:"user_id" gorm:"index;not null"`
	StylistID       int64         `json:"stylist_id" gorm:"index;not null;constraint:OnDelete:CASCADE"`
	ServiceID       int64         `json:"service_id" gorm:"not null"`
	AppointmentTime time.Time     `json:"appointment_time" gorm:"index;not null"`
	Status          BookingStatus `json:"status" gorm:"default:pending"`
}

func (Booking) TableName() string { return "bookings" }
