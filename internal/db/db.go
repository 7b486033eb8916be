package db

import (
	"quibble/internal/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres database and runs migrations. The handle is
// returned rather than held globally so tests can run isolated instances.
func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=quibble port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Surface duplicate-key violations as gorm.ErrDuplicatedKey so the
		// like toggle can absorb the concurrent-insert race.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	log.Info("database connection established")

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	log.Info("database migration completed")

	return gdb, nil
}

// Migrate creates or updates the four relations.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
	)
}
