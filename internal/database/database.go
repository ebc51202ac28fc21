package database

import (
	"fmt"
	"log"
	"time"

	"hospital-ward-management/internal/config"
	"hospital-ward-management/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// schemaModels lists every persisted model, referenced tables ahead of the
// tables whose foreign keys point at them.
var schemaModels = []interface{}{
	&models.User{},
	&models.RefreshToken{},
	&models.AuditLog{},
	&models.Ward{},
	&models.Bed{},
	&models.Patient{},
	&models.Admission{},
}

// Connect initializes a GORM MySQL connection and brings the schema up to
// date before returning it
func Connect(cfg *config.Config) *gorm.DB {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.Database,
	)

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.Server.GinMode == "release" {
		gormLogger = logger.Default.LogMode(logger.Error)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	log.Println("Successfully connected to database")

	return db
}

// Migrate creates or updates the tables, enum columns and indexes declared
// on the domain models
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(schemaModels...)
}
