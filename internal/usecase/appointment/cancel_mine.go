package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/AldebertBarber/aldebert-api/internal/audit"
	"github.com/AldebertBarber/aldebert-api/internal/cache"
	domain "github.com/AldebertBarber/aldebert-api/internal/domain/appointment"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// CancelMyAppointment cancela apenas agendamentos do próprio usuário.
// Quando o id não é dele (ou não existe), responde not found em vez do
// sucesso silencioso da versão antiga do site.
type CancelMyAppointment struct {
	repo  domain.Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCancelMyAppointment(
	repo domain.Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *CancelMyAppointment {
	return &CancelMyAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CancelMyAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetOwned(ctx, appointmentID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		ActorRole: "user",
		ActorID:   &userID,
		Action:    audit.ActionAppointmentCancelled,
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
