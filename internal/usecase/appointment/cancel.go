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

// CancelAppointment é a variante admin: cancela qualquer agendamento por
// id via soft-cancel. Linhas nunca são apagadas fisicamente.
type CancelAppointment struct {
	repo  domain.Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	adminID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment_not_found")
		}
		return nil, err
	}

	return uc.finish(ctx, ap, "admin", adminID)
}

func (uc *CancelAppointment) finish(
	ctx context.Context,
	ap *models.Appointment,
	actorRole string,
	actorID uint,
) (*models.Appointment, error) {

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	uc.audit.Dispatch(audit.Event{
		ActorRole: actorRole,
		ActorID:   &actorID,
		Action:    audit.ActionAppointmentCancelled,
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
