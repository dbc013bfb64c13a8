package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/middleware"
	"salonbooking/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	reviews := protected.Group("/reviews")
	{
		reviews.POST("/stylist", h.Create)
		reviews.GET("/stylist/:id", h.ListByStylist)
		reviews.GET("/average_rating", h.AverageRating)
	}
}

func (h *Handler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	rv, err := h.service.Create(c.Request.Context(), p, req)
	if err != nil {
		writeReviewError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": rv})
}

func (h *Handler) ListByStylist(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid stylist ID")
		return
	}

	reviews, err := h.service.ListByStylist(c.Request.Context(), id)
	if err != nil {
		writeReviewError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

func (h *Handler) AverageRating(c *gin.Context) {
	id, err := strconv.ParseInt(c.Query("stylist_id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid stylist ID")
		return
	}

	avg, err := h.service.AverageRating(c.Request.Context(), id)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute rating")
		return
	}

	response.Success(c, http.StatusOK, AverageRatingResponse{StylistID: id, AverageRating: avg})
}

func writeReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrStylistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stylist not found")
	case errors.Is(err, ErrInvalidRating):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Rating must be between 1 and 5")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only clients can leave reviews")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Review operation failed")
	}
}
