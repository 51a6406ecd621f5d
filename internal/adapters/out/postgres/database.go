// Package postgres wires the GORM-backed repositories to a PostgreSQL database.
//
// Identities come from autoIncrement primary keys, so they increase
// monotonically and are never reused, also after a delete. Replace and Remove
// run inside a transaction that locks the row (SELECT ... FOR UPDATE), which
// serializes concurrent mutations of the same record.
package postgres

import (
	"fmt"

	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Settings holds the connection parameters of the database.
type Settings struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (s Settings) DSN() string {
	sslMode := s.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		s.Host, s.Port, s.User, s.Password, s.Name, sslMode)
}

// Open connects to the database and migrates the schema.
func Open(settings Settings) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(settings.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the dishes and orders tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&dishrepo.DishDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
