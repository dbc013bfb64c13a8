package main

import (
	"log"

	"github.com/joho/godotenv"

	"salonbooking/internal/app"
	"salonbooking/internal/config"
	"salonbooking/internal/database"
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

	r := app.NewRouter(db, cfg)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
