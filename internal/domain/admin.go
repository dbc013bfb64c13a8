package domain

import "time"

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type Admin struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:admin"`
	CreatedAt time.Time `json:"created_at"`
}

func (Admin) TableName() string { return "admins" }
