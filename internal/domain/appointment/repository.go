package appointment

import (
	"context"

	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// Repository isola o ledger de agendamentos do gorm. A unicidade de slot
// ativo é responsabilidade do store: Create devolve ErrBusiness
// "slot_unavailable" quando o índice parcial rejeita a inserção.
type Repository interface {
	// -------- Availability --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	// -------- Booking --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListAll(
		ctx context.Context,
	) ([]models.Appointment, error)

	ListByUser(
		ctx context.Context,
		userID uint,
	) ([]models.Appointment, error)

	// -------- Cancellation --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetOwned(
		ctx context.Context,
		id uint,
		userID uint,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
