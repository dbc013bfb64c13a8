package domain

import "time"

// RoleClient is the only role a self-registered user can hold.
const RoleClient = "client"

type User struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:client"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string { return "users" }
