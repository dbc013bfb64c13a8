package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salonbooking/internal/middleware"
	"salonbooking/internal/modules/booking"
	"salonbooking/internal/modules/catalog"
	"salonbooking/internal/pkg/response"
	"salonbooking/internal/pkg/validator"
)

// Handler wires the admin surface: account lifecycle through its own
// service, catalog CRUD through the catalog module and the unfiltered
// booking listing through the booking module.
type Handler struct {
	service  *Service
	catalog  *catalog.Service
	bookings *booking.Service
}

func NewHandler(service *Service, catalogSvc *catalog.Service, bookingSvc *booking.Service) *Handler {
	return &Handler{service: service, catalog: catalogSvc, bookings: bookingSvc}
}

// RegisterRoutes expects a group already narrowed by RequireAdmin.
func (h *Handler) RegisterRoutes(admins *gin.RouterGroup) {
	admins.POST("/create_user", h.CreateUser)
	admins.POST("/create_stylist", h.CreateStylist)
	admins.POST("/create_admin", h.CreateAdmin)
	admins.POST("/create_services", h.CreateService)

	admins.PUT("/update_service/:id", h.UpdateService)
	admins.PUT("/update_stylist/:id", h.UpdateStylist)

	admins.DELETE("/delete_service/:id", h.DeleteService)
	admins.DELETE("/delete_stylist/:id", h.DeleteStylist)
	admins.DELETE("/delete_admin/:id", h.DeleteAdmin)
	admins.DELETE("/delete_user/:id", h.DeleteUser)

	admins.GET("/users", h.ListUsers)
	admins.GET("/stylists", h.ListStylists)
	admins.GET("/bookings", h.ListBookings)

	admins.POST("/stylists/verify/:id", h.VerifyStylist)
	admins.POST("/stylists/suspend/:id", h.SuspendStylist)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"user": u})
}

func (h *Handler) CreateStylist(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	st, err := h.service.CreateStylist(c.Request.Context(), req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"stylist": st})
}

func (h *Handler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrors := validator.Validate(req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", fieldErrors)
		return
	}

	a, err := h.service.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"admin": a})
}

func (h *Handler) CreateService(c *gin.Context) {
	var req catalog.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req catalog.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		writeCatalogError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"service": svc})
}

func (h *Handler) UpdateStylist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	st, err := h.service.UpdateStylist(c.Request.Context(), id, req)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stylist": st})
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		writeCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteStylist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteStylist(c.Request.Context(), id); err != nil {
		writeAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAdmin(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteAdmin(c.Request.Context(), id); err != nil {
		writeAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteUser(c.Request.Context(), id); err != nil {
		writeAdminError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

func (h *Handler) ListStylists(c *gin.Context) {
	stylists, err := h.service.ListStylists(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stylists")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stylists": stylists})
}

func (h *Handler) ListBookings(c *gin.Context) {
	p := middleware.PrincipalFrom(c)
	if p == nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	list, err := h.bookings.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) VerifyStylist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.service.VerifyStylist(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stylist": st})
}

func (h *Handler) SuspendStylist(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	st, err := h.service.SuspendStylist(c.Request.Context(), id)
	if err != nil {
		writeAdminError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stylist": st})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func writeAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "Username, email or name already taken")
	case errors.Is(err, ErrInvalidRole):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Role must be admin or superadmin")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func writeCatalogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case errors.Is(err, catalog.ErrConflict):
		response.Error(c, http.StatusConflict, "CONFLICT", "A service with this name already exists")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
