package stylist

import "salonbooking/internal/domain"

type StylistWithServices struct {
	domain.Stylist
	Services []domain.Service `json:"services"`
}

type PasswordChangeRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
