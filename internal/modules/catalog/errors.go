package catalog

import "errors"

var (
	ErrNotFound = errors.New("service not found")
	ErrConflict = errors.New("service name already exists")
)
