package appointment

import (
	"context"
	"time"

	"github.com/AldebertBarber/aldebert-api/internal/audit"
	"github.com/AldebertBarber/aldebert-api/internal/cache"
	domain "github.com/AldebertBarber/aldebert-api/internal/domain/appointment"
	"github.com/AldebertBarber/aldebert-api/internal/domain/schedule"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	Service string
	Date    string // YYYY-MM-DD
	Time    string // token HH:MM da grade fixa
	Name    string
	Phone   string
	Price   int

	// Resolvido pelo guard em modo soft: nil agenda como anônimo.
	OwnerUserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	cache cache.AvailabilityCache
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	cache cache.AvailabilityCache,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !schedule.IsValidTime(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	ap := &models.Appointment{
		UserID:  in.OwnerUserID,
		Service: in.Service,
		Date:    in.Date,
		Time:    in.Time,
		Name:    in.Name,
		Phone:   in.Phone,
		Price:   in.Price,
		Status:  string(domain.InitialStatus()),
	}

	// O índice parcial decide corridas por slot: o perdedor recebe
	// slot_unavailable já tipado pelo repositório.
	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.Date)

	actorRole := ""
	if in.OwnerUserID != nil {
		actorRole = "user"
	}
	uc.audit.Dispatch(audit.Event{
		ActorRole: actorRole,
		ActorID:   in.OwnerUserID,
		Action:    audit.ActionAppointmentCreated,
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
