// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"autosales-api/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Lock waits fail fast and surface as a retryable busy error
	// instead of parking request handlers behind the 50s default.
	if err := db.Exec("SET SESSION innodb_lock_wait_timeout = 5").Error; err != nil {
		fmt.Printf("Warning: Could not set lock wait timeout: %v\n", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	// Parents before children so the FK clauses can be created in one
	// pass.
	err := db.AutoMigrate(
		&models.Address{},
		&models.Employee{},
		&models.User{},
		&models.Client{},
		&models.MotorVehicle{},
		&models.Car{},
		&models.Motorcycle{},
		&models.CarItem{},
		&models.VehicleImage{},
		&models.Sale{},
		&models.Message{},
		&models.BlacklistedToken{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Listing queries filter by city/status and sort by price.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_motor_vehicles_city_status ON motor_vehicles(city, status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for motor_vehicles: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_motor_vehicles_price ON motor_vehicles(price)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for motor_vehicles price: %v\n", err)
	}

	// Image galleries load per vehicle in display order.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_vehicle_images_vehicle_position ON vehicle_images(vehicle_id, position)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for vehicle_images: %v\n", err)
	}

	// Sale reports filter by date.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_sales_sale_date ON sales(sale_date)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for sales: %v\n", err)
	}

	return nil
}
