package db

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"driftboard/internal/models"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=driftboard port=5432 sslmode=disable"
	}

	var err error
	// TranslateError surfaces uniqueness violations as gorm.ErrDuplicatedKey,
	// which the vote ledger relies on to retry its check-then-act sequence.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")
}

// Migrate creates or updates the schema, including the composite unique index
// on votes (user_id, target_kind, target_id).
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Submission{},
		&models.Comment{},
		&models.Vote{},
		&models.KarmaLog{},
		&models.Notification{},
	)
}
