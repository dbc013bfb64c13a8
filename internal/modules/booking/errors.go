package booking

import "errors"

var (
	ErrNotFound          = errors.New("booking not found")
	ErrServiceNotFound   = errors.New("service not found")
	ErrStylistNotFound   = errors.New("stylist not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNotOffered        = errors.New("stylist does not offer this service")
	ErrPastTime          = errors.New("appointment time must be in the future")
	ErrSlotConflict      = errors.New("stylist already booked at this time")
	ErrForbidden         = errors.New("forbidden")
	ErrNotEditable       = errors.New("already confirmed/completed, create a new booking instead")
	ErrInvalidTransition = errors.New("invalid status transition")
)
