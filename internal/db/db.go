package db

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"goalsmith/internal/config"
	"goalsmith/internal/goalrepo"
	"goalsmith/internal/user"
)

var DB *gorm.DB

// Init opens the configured database and migrates the schema. A DSN
// starting with "postgres://" or containing "host=" selects postgres;
// anything else is treated as a sqlite file path.
func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	dsn := cfg.Database.DSN
	if strings.HasPrefix(dsn, "postgres://") || strings.Contains(dsn, "host=") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&user.User{}, &goalrepo.Goal{}); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected and migrated")
	return nil
}
