package stylist

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

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

func (h *Handler) RegisterRoutes(protected, stylistOnly *gin.RouterGroup) {
	stylists := protected.Group("/stylists")
	{
		stylists.GET("", h.List)
		stylists.GET("/search", h.Search)
		stylists.GET("/:id", h.Get)
	}

	stylistOnly.PUT("/stylists/password", h.ChangePassword)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stylists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stylists": items})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid stylist ID")
		return
	}

	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stylist not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stylist")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stylist": st})
}

func (h *Handler) Search(c *gin.Context) {
	specialization := strings.TrimSpace(c.Query("specialization"))
	if specialization == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "specialization query parameter is required")
		return
	}

	items, err := h.service.Search(c.Request.Context(), specialization)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search stylists")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stylists": items})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), p.ID, req); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Stylist not found")
		case errors.Is(err, ErrWrongPassword):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Old password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to change password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}
