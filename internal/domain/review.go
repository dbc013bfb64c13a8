package domain

import "time"

// Review is immutable once written; there is no update or delete path.
type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"user_id" gorm:"index;not null"`
	StylistID  int64     `json:"stylist_id" gorm:"index;not null"`
	Rating     int       `json:"rating" gorm:"not null"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }
