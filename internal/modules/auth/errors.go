package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("username or email already exists")
	ErrNotFound           = errors.New("not found")
	ErrWrongPassword      = errors.New("old password is incorrect")
)
