package db

import (
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/config"
	"github.com/VittaServices/marketplace-api/internal/models"
)

func NewDB(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Provider{},
		&models.Service{},
		&models.Customer{},
		&models.WeeklySchedule{},
		&models.ScheduleBreak{},
		&models.BookingSettings{},
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
