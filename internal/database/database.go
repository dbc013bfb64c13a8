package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"salonbooking/internal/domain"
)

// ConfirmedSlotIndex is the partial unique index that guarantees no two
// confirmed bookings share a stylist and appointment time. Slot conflicts
// are enforced here, at the store, not by a read-then-write check.
const ConfirmedSlotIndex = "idx_confirmed_slot"

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates the schema and the constraints the application relies
// on. Both PostgreSQL and SQLite support partial unique indexes, so the
// confirmed-slot invariant holds in dev and production alike.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Stylist{},
		&domain.Admin{},
		&domain.Service{},
		&domain.StylistService{},
		&domain.Booking{},
		&domain.Review{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS ` + ConfirmedSlotIndex +
			` ON bookings (stylist_id, appointment_time) WHERE status = 'confirmed'`,
	).Error
}
