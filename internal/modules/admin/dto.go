package admin

type CreateUserRequest struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8"`
}

type CreateStylistRequest struct {
	Username       string  `json:"username" binding:"required" validate:"required"`
	Email          string  `json:"email" binding:"required,email" validate:"required,email"`
	Password       string  `json:"password" binding:"required,min=8" validate:"required,min=8"`
	Bio            string  `json:"bio"`
	Specialization string  `json:"specialization"`
	ServiceIDs     []int64 `json:"service_ids"`
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required" validate:"required"`
	Email    string `json:"email" binding:"required,email" validate:"required,email"`
	Password string `json:"password" binding:"required,min=8" validate:"required,min=8"`
	// Empty defaults to "admin"; only "admin" and "superadmin" are accepted.
	Role string `json:"role"`
}

// UpdateStylistRequest patches only the fields present. A ServiceIDs
// list, when supplied, replaces the stylist's whole service set.
type UpdateStylistRequest struct {
	Bio            *string  `json:"bio,omitempty"`
	Specialization *string  `json:"specialization,omitempty"`
	Verified       *bool    `json:"verified,omitempty"`
	IsActive       *bool    `json:"is_active,omitempty"`
	ServiceIDs     *[]int64 `json:"service_ids,omitempty"`
}
