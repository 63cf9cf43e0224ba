package appointment

import (
	"context"
	"time"

	"github.com/AldebertBarber/aldebert-api/internal/cache"
	domain "github.com/AldebertBarber/aldebert-api/internal/domain/appointment"
	"github.com/AldebertBarber/aldebert-api/internal/domain/schedule"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
)

type DayAvailability struct {
	Date           string   `json:"date"`
	BookedTimes    []string `json:"bookedTimes"`
	AvailableTimes []string `json:"availableTimes"`
}

type GetAvailability struct {
	repo  domain.Repository
	cache cache.AvailabilityCache
}

func NewGetAvailability(
	repo domain.Repository,
	cache cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: cache,
	}
}

// Execute devolve os horários ocupados do dia e o complemento contra a
// grade fixa. booked ∪ available = grade, booked ∩ available = ∅.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) (*DayAvailability, error) {

	if date == "" {
		return nil, httperr.ErrBusiness("missing_date")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	booked, ok := uc.cache.GetBooked(ctx, date)
	if !ok {
		var err error
		booked, err = uc.repo.ListBookedTimes(ctx, date)
		if err != nil {
			return nil, err
		}
		uc.cache.SetBooked(ctx, date, booked)
	}

	if booked == nil {
		booked = []string{}
	}

	return &DayAvailability{
		Date:           date,
		BookedTimes:    booked,
		AvailableTimes: schedule.Available(booked),
	}, nil
}
