package stylist

import "errors"

var (
	ErrNotFound      = errors.New("stylist not found")
	ErrWrongPassword = errors.New("old password is incorrect")
)
