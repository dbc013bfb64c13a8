package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/domain"
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
	bookings := protected.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.POST("/create", h.Create)
		bookings.POST("/create/for/targeted_user", h.CreateOnBehalf)
		bookings.PUT("/update", h.Update)
		bookings.POST("/accept/:id", h.Accept)
		bookings.POST("/reject/:id", h.Reject)
		bookings.POST("/complete/:id", h.Complete)
		bookings.DELETE("/delete/:id", h.Delete)
	}
}

func (h *Handler) Create(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	if p.Kind != domain.KindClient {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only clients can book appointments")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), p.ID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) CreateOnBehalf(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	if p.Kind != domain.KindStylist && p.Kind != domain.KindAdmin {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only stylists or admins can book for a user")
		return
	}

	var req CreateForUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateOnBehalf(c.Request.Context(), req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) Update(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}
	if p.Kind != domain.KindClient {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Only the booking owner can reschedule")
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.UpdateTime(c.Request.Context(), p.ID, req)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Accept(c *gin.Context) {
	h.transition(c, domain.BookingConfirmed)
}

func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, domain.BookingRejected)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, domain.BookingCompleted)
}

func (h *Handler) transition(c *gin.Context, target domain.BookingStatus) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.Transition(c.Request.Context(), id, p, target)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) List(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	list, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Delete(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, p); err != nil {
		writeBookingError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func writeBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case errors.Is(err, ErrServiceNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not found")
	case errors.Is(err, ErrStylistNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stylist not found")
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, ErrNotOffered):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Stylist does not offer this service")
	case errors.Is(err, ErrPastTime):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Appointment time must be in the future")
	case errors.Is(err, ErrNotEditable):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Already confirmed/completed, create a new booking instead")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid status transition")
	case errors.Is(err, ErrSlotConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Stylist already booked at this time")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You cannot perform this action")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}
