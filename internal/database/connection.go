// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/arclux/watchdesk-backend/internal/config"
	"github.com/arclux/watchdesk-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.Operator{},
		&models.Watch{},
		&models.WatchMedia{},
		&models.Customer{},
		&models.Invoice{},
		&models.ActivityLogEntry{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// Watch indexes
		"CREATE INDEX IF NOT EXISTS idx_watches_brand_ref ON watches(brand, ref)",
		"CREATE INDEX IF NOT EXISTS idx_watches_status ON watches(status)",
		"CREATE INDEX IF NOT EXISTS idx_watches_ownership ON watches(ownership_type, status)",
		"CREATE INDEX IF NOT EXISTS idx_watches_public ON watches(is_public, status)",
		"CREATE INDEX IF NOT EXISTS idx_watches_created_at ON watches(created_at DESC)",

		// Media indexes
		"CREATE INDEX IF NOT EXISTS idx_watch_media_watch_position ON watch_media(watch_id, position)",

		// Invoice indexes
		"CREATE INDEX IF NOT EXISTS idx_invoices_watch ON invoices(watch_id)",
		"CREATE INDEX IF NOT EXISTS idx_invoices_customer ON invoices(customer_id)",
		"CREATE INDEX IF NOT EXISTS idx_invoices_sale_date ON invoices(sale_date DESC)",

		// Activity log indexes
		"CREATE INDEX IF NOT EXISTS idx_activity_logs_action ON activity_logs(action_type, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_activity_logs_user ON activity_logs(user_id)",

		// Customer search
		"CREATE INDEX IF NOT EXISTS idx_customers_name ON customers(full_name)",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// SeedInitialData creates the default operator account when none exists.
func SeedInitialData(db *gorm.DB) error {
	var count int64
	db.Model(&models.Operator{}).Count(&count)
	if count > 0 {
		return nil
	}

	op := &models.Operator{
		Email:    "admin@watchdesk.local",
		Name:     "Administrator",
		IsActive: true,
	}
	if err := op.SetPassword("change-me-now"); err != nil {
		return fmt.Errorf("failed to set operator password: %w", err)
	}
	if err := db.Create(op).Error; err != nil {
		return fmt.Errorf("failed to create default operator: %w", err)
	}

	log.Println("Default operator account created")
	return nil
}
