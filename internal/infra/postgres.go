package infra

import (
	"os"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"roadtrip/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "postgresql://localhost/roadtrip"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		logrus.Fatalf("Error connecting to database: %v", err)
	}

	// The primary-key constraint on the derived id is the last line of
	// defense against concurrent duplicate creation.
	if err := db.AutoMigrate(&db_models.Destination{}); err != nil {
		logrus.Fatalf("Auto-migration failed: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logrus.Errorf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Errorf("Error closing database connection: %v", err)
	} else {
		logrus.Info("PostgreSQL database connection closed")
	}
}
