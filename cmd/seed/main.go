// Command seed bootstraps the initial superadmin account. It is safe
// to run repeatedly: an existing row with the same username is left
// untouched.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salonbooking/internal/config"
	"salonbooking/internal/database"
	"salonbooking/internal/domain"
	"salonbooking/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connect: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migrate: %v", err)
	}

	username := envOr("SEED_ADMIN_USERNAME", "superadmin")
	email := envOr("SEED_ADMIN_EMAIL", "superadmin@salon.local")
	password := envOr("SEED_ADMIN_PASSWORD", "changeme123")

	admins := repository.NewAdminRepository(db)
	ctx := context.Background()

	if existing, err := admins.GetByUsername(ctx, username); err == nil {
		log.Printf("superadmin %q already exists (id=%d), nothing to do", existing.Username, existing.ID)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("lookup: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	a := &domain.Admin{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleSuperAdmin,
	}
	if err := admins.Create(ctx, a); err != nil {
		log.Fatalf("create superadmin: %v", err)
	}

	log.Printf("superadmin %q created (id=%d)", a.Username, a.ID)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
