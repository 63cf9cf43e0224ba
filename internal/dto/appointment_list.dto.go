package dto

import (
	"time"

	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// AppointmentListDTO é a linha do painel admin: agendamento com o e-mail
// do usuário dono quando o booking não foi anônimo.
type AppointmentListDTO struct {
	ID        uint      `json:"id"`
	Service   string    `json:"service"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Price     int       `json:"price"`
	Status    string    `json:"status"`
	UserEmail string    `json:"user_email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	d := AppointmentListDTO{
		ID:        ap.ID,
		Service:   ap.Service,
		Date:      ap.Date,
		Time:      ap.Time,
		Name:      ap.Name,
		Phone:     ap.Phone,
		Price:     ap.Price,
		Status:    ap.Status,
		CreatedAt: ap.CreatedAt,
	}
	if ap.User != nil {
		d.UserEmail = ap.User.Email
	}
	return d
}
