package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salonbooking/internal/config"
	"salonbooking/internal/middleware"
	"salonbooking/internal/modules/admin"
	"salonbooking/internal/modules/auth"
	"salonbooking/internal/modules/booking"
	"salonbooking/internal/modules/catalog"
	"salonbooking/internal/modules/review"
	"salonbooking/internal/modules/stylist"
	"salonbooking/internal/pkg/jwt"
	"salonbooking/internal/pkg/response"
	"salonbooking/internal/repository"
)

// NewRouter wires repositories, services and handlers onto a gin
// engine. The same assembly backs the api binary and the e2e tests.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	jwtSvc := jwt.New(cfg.JWTSecret, cfg.JWTExpiry)

	userRepo := repository.NewUserRepository(db)
	stylistRepo := repository.NewStylistRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	principalRepo := repository.NewPrincipalRepository(db)

	authSvc := auth.NewService(userRepo, stylistRepo, adminRepo, jwtSvc)
	stylistSvc := stylist.NewService(stylistRepo)
	catalogSvc := catalog.NewService(serviceRepo)
	bookingSvc := booking.NewService(bookingRepo, serviceRepo, stylistRepo, userRepo)
	reviewSvc := review.NewService(reviewRepo, stylistRepo)
	adminSvc := admin.NewService(userRepo, stylistRepo, adminRepo)

	authHandler := auth.NewHandler(authSvc)
	stylistHandler := stylist.NewHandler(stylistSvc)
	catalogHandler := catalog.NewHandler(catalogSvc)
	bookingHandler := booking.NewHandler(bookingSvc)
	reviewHandler := review.NewHandler(reviewSvc)
	adminHandler := admin.NewHandler(adminSvc, catalogSvc, bookingSvc)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"message": "Welcome to the Salon Booking API"})
	})

	public := r.Group("")
	authHandler.RegisterPublicRoutes(public)

	protected := r.Group("", middleware.JWTAuth(jwtSvc, principalRepo))
	authHandler.RegisterProtectedRoutes(protected)
	catalogHandler.RegisterRoutes(protected)
	bookingHandler.RegisterRoutes(protected)
	reviewHandler.RegisterRoutes(protected)

	stylistOnly := protected.Group("", middleware.RequireStylist())
	stylistHandler.RegisterRoutes(protected, stylistOnly)

	admins := protected.Group("/admins", middleware.RequireAdmin())
	adminHandler.RegisterRoutes(admins)

	return r
}
