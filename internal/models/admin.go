package models

import "time"

// Admin é semeado uma única vez no boot a partir do .env; depois disso a
// tabela é apenas lida no login.
type Admin struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null;default:'Administrador'" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
