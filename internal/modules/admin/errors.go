package admin

import "errors"

var (
	ErrNotFound    = errors.New("record not found")
	ErrConflict    = errors.New("username, email or name already taken")
	ErrInvalidRole = errors.New("role must be admin or superadmin")
)
