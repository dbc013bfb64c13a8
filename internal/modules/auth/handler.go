package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/domain"
	"salonbooking/internal/middleware"
	"salonbooking/internal/pkg/response"
	"salonbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/login", h.Login)
	v1.POST("/users/signup", h.Signup)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	users := protected.Group("/users")
	{
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
		users.DELETE("/profile", h.DeleteProfile)
		users.PUT("/profile/change_password", h.ChangePassword)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	tok, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid credentials")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, tok)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup fields", fields)
		return
	}

	u, err := h.service.SignupClient(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			response.Error(c, http.StatusConflict, "CONFLICT", "User with this username or email already exists")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", "Failed to create user")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) GetProfile(c *gin.Context) {
	p, ok := requireClient(c)
	if !ok {
		return
	}

	u, err := h.service.GetProfile(c.Request.Context(), p.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	p, ok := requireClient(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	u, err := h.service.UpdateProfile(c.Request.Context(), p.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User does not exist")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "Username or email already taken")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update profile")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": u})
}

func (h *Handler) DeleteProfile(c *gin.Context) {
	p, ok := requireClient(c)
	if !ok {
		return
	}

	if err := h.service.DeleteProfile(c.Request.Context(), p.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete profile")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	p, ok := requireClient(c)
	if !ok {
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
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User does not exist")
		case errors.Is(err, ErrWrongPassword):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Old password is incorrect")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to change password")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

func requireClient(c *gin.Context) (*domain.Principal, bool) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return nil, false
	}
	if p.Kind != domain.KindClient {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Client account required")
		return nil, false
	}
	return p, true
}
