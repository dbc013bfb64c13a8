package review

type CreateReviewRequest struct {
	StylistID  int64  `json:"stylist_id" binding:"required"`
	Rating     int    `json:"rating" binding:"required"`
	ReviewText string `json:"review_text"`
}

type AverageRatingResponse struct {
	StylistID     int64   `json:"stylist_id"`
	AverageRating float64 `json:"average_rating"`
}
