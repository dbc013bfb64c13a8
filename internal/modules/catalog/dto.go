package catalog

import "salonbooking/internal/domain"

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

// UpdateServiceRequest patches only the fields present. A StylistIDs
// list, when supplied, replaces the whole association set.
type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Duration    *int     `json:"duration,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	StylistIDs  *[]int64 `json:"stylist_ids,omitempty"`
}

type ServiceWithStylists struct {
	domain.Service
	Stylists []domain.Stylist `json:"stylists"`
}
