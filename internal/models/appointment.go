package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Agendamento anônimo quando nil; o cancelamento do usuário não
	// apaga a linha, apenas desvincula.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Service string `gorm:"size:100;not null" json:"service"`

	// Slot = (Date, Time). Date em YYYY-MM-DD, Time é um token HH:MM da
	// grade fixa. A unicidade vale só para linhas Confirmado, via índice
	// parcial criado em internal/db.
	Date string `gorm:"size:10;not null;index:idx_appointments_slot" json:"date"`
	Time string `gorm:"size:5;not null;index:idx_appointments_slot" json:"time"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20;not null" json:"phone"`
	Price int    `gorm:"not null" json:"price"`

	Status string `gorm:"size:20;default:'Confirmado'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
