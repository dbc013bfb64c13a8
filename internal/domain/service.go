package domain

import "time"

// Service is a catalog entry. The surrogate key column is service_id,
// not id; the original schema named it that way and the API exposes it.
type Service struct {
	ServiceID   int64     `json:"service_id" gorm:"column:service_id;primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"` // minutes
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Service) TableName() string { return "services" }
