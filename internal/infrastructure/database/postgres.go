package database

import (
	"fmt"
	"log"

	"github.com/wekesadev/sokopos-api/internal/config"
	"github.com/wekesadev/sokopos-api/internal/domain/entity"
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

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.Branch{},
		&entity.Cashier{},
		&entity.Customer{},
		&entity.TaxCategory{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderTaxBreakdown{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the main branch, its default tax categories and
// an admin cashier when the database is empty.
func SeedDefaultData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding default data...")

	var branchCount int64
	if err := db.Model(&entity.Branch{}).Count(&branchCount).Error; err != nil {
		return fmt.Errorf("failed to count branches: %w", err)
	}
	if branchCount > 0 {
		log.Println("Database already seeded, skipping")
		return nil
	}

	branch := &entity.Branch{
		Name:          "Main Branch",
		TaxPercentage: cfg.Store.DefaultTaxPercentage,
	}
	if err := db.Create(branch).Error; err != nil {
		return fmt.Errorf("failed to create default branch: %w", err)
	}

	categories := []entity.TaxCategory{
		{BranchID: branch.ID, Name: "Standard Rate", Percentage: 18, IsActive: true},
		{BranchID: branch.ID, Name: "Reduced Rate", Percentage: 5, IsActive: true},
		{BranchID: branch.ID, Name: "Zero Rate", Percentage: 0, IsActive: true},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return fmt.Errorf("failed to create default tax category: %w", err)
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := &entity.Cashier{
		BranchID: branch.ID,
		FullName: "Administrator",
		Email:    cfg.Admin.Email,
		Password: string(hashed),
		Role:     "admin",
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin cashier: %w", err)
	}

	log.Println("Default data seeded successfully")
	return nil
}
