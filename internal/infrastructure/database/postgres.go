package database

import (
	"fmt"
	"log"

	"github.com/invoiceapp/invoice-api/internal/config"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// User entities
		&entity.User{},

		// Catalog entities
		&entity.Product{},
		&entity.PriceHistory{},

		// Invoicing entities
		&entity.Invoice{},
		&entity.InvoiceItem{},
		&entity.BusinessProfile{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the initial admin user and business profile
func SeedDefaultData(db *gorm.DB, cfg *config.SeedConfig) error {
	log.Println("Seeding default data...")

	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		var existing entity.User
		if err := db.Where("username = ?", cfg.AdminUsername).First(&existing).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				adminUser := entity.User{
					Username: cfg.AdminUsername,
					Email:    cfg.AdminEmail,
					FullName: "Administrator",
					Password: string(hashedPassword),
					Role:     enum.UserRoleAdmin,
					IsActive: true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", cfg.AdminUsername)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", cfg.AdminUsername)
		}
	}

	// Create an empty business profile so the settings page always has a row
	var profile entity.BusinessProfile
	if err := db.Order("created_at ASC").First(&profile).Error; err != nil {
		if err := db.Create(&entity.BusinessProfile{}).Error; err != nil {
			log.Printf("Warning: failed to create default business profile: %v", err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
