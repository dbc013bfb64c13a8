package review

import "errors"

var (
	ErrStylistNotFound = errors.New("stylist not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrForbidden       = errors.New("forbidden")
)
