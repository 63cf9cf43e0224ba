package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AldebertBarber/aldebert-api/internal/config"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

func NewDB(cfg *config.Config, log *zap.SugaredLogger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalw("failed to connect database", "error", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalw("failed to get sql.DB", "error", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.User{},
		&models.Appointment{},
		&models.LoyaltyRecord{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalw("failed to migrate", "error", err)
	}

	// Unicidade de slot só entre linhas ativas: cancelar libera o
	// horário para novo agendamento. O AutoMigrate não expressa índice
	// parcial, então ele entra por SQL direto.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_active_slot
        ON appointments (date, time)
        WHERE status = 'Confirmado'
    `)

	return db
}
