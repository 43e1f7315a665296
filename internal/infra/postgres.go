package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rihla/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	// TranslateError lets repositories detect unique-constraint violations
	// as gorm.ErrDuplicatedKey during lookup-or-insert.
	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// MigrateSchema creates the pgvector extension and keeps the table set in
// sync with the models. Runs once at startup.
func MigrateSchema(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS vector;`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&db_models.PreferenceProfile{},
		&db_models.Itinerary{},
		&db_models.DailyPlan{},
		&db_models.SelectedPlace{},
		&db_models.EnrichedPlace{},
		&db_models.Feedback{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
