package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sweetshop-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a standalone database connection used by the
// migration script, separate from the global handle.
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	DbURL  string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
		Models: []interface{}{
			&models.Profile{},
			&models.Sweet{},
			&models.Order{},
			&models.OrderItem{},
			&models.Favorite{},
		},
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	if err := c.DB.AutoMigrate(c.Models...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}
	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}

// SeedCatalog inserts a starter catalog for development databases.
// Existing rows are left alone: the seed only runs on an empty table.
func (c *DBConnection) SeedCatalog() error {
	var count int64
	if err := c.DB.Model(&models.Sweet{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count sweets: %v", err)
	}
	if count > 0 {
		log.Printf("Catalog already has %d sweets, skipping seed", count)
		return nil
	}

	strptr := func(s string) *string { return &s }
	sweets := []models.Sweet{
		{Name: "Chocolate Truffle", Description: strptr("Dark chocolate ganache dusted with cocoa"), Price: 3.50, StockQuantity: 120, Category: "chocolate", IsAvailable: true},
		{Name: "Strawberry Macaron", Description: strptr("Almond shell with strawberry buttercream"), Price: 2.75, StockQuantity: 80, Category: "macarons", IsAvailable: true},
		{Name: "Salted Caramel Fudge", Description: strptr("Soft fudge with sea salt flakes"), Price: 4.00, StockQuantity: 60, Category: "fudge", IsAvailable: true},
		{Name: "Lemon Gummy Bears", Description: strptr("Tangy lemon gummies, 200g bag"), Price: 5.25, StockQuantity: 150, Category: "gummies", IsAvailable: true},
		{Name: "Pistachio Baklava", Description: strptr("Layered filo with pistachio and honey"), Price: 6.50, StockQuantity: 40, Category: "pastry", IsAvailable: true},
	}

	if err := c.DB.Create(&sweets).Error; err != nil {
		return fmt.Errorf("failed to seed catalog: %v", err)
	}
	log.Printf("✅ Seeded %d sweets into %s database", len(sweets), c.Name)
	return nil
}
