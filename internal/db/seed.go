package db

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AldebertBarber/aldebert-api/internal/config"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// SeedAdmin cria o administrador padrão quando ADMIN_EMAIL/ADMIN_PASSWORD
// estão configurados e ainda não existe admin com esse e-mail.
func SeedAdmin(db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Warnw("admin seed skipped", "reason", "ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return
	}

	var existing models.Admin
	err := db.Where("email = ?", cfg.AdminEmail).First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Errorw("admin seed lookup failed", "error", err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Errorw("admin seed hash failed", "error", err)
		return
	}

	admin := models.Admin{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hashed),
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Errorw("admin seed insert failed", "error", err)
		return
	}

	log.Infow("default admin created", "email", admin.Email)
}
