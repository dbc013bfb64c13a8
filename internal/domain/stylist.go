package domain

import "time"

const RoleStylist = "stylist"

type Stylist struct {
	ID             int64     `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null"`
	Password       string    `json:"-" gorm:"not null"`
	Role           string    `json:"role" gorm:"default:stylist"`
	Bio            string    `json:"bio"`
	Specialization string    `json:"specialization"`
	Verified       bool      `json:"verified" gorm:"default:false"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Stylist) TableName() string { return "stylists" }

// StylistService is one row of the stylist↔service association table.
// Rows are managed explicitly by the repositories; deleting either side
// removes its rows first.
type StylistService struct {
	StylistID int64 `json:"stylist_id" gorm:"primaryKey;autoIncrement:false"`
	ServiceID int64 `json:"service_id" gorm:"primaryKey;autoIncrement:false"`
}

func (StylistService) TableName() string { return "stylist_services" }
