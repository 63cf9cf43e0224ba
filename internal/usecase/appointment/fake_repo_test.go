package appointment

import (
	"context"
	"sort"

	"gorm.io/gorm"

	domain "github.com/AldebertBarber/aldebert-api/internal/domain/appointment"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/models"
)

// fakeRepo simula o ledger em memória, incluindo a unicidade de slot
// ativo que em produção vem do índice parcial.
type fakeRepo struct {
	rows   map[uint]*models.Appointment
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uint]*models.Appointment{}, nextID: 1}
}

func (f *fakeRepo) ListBookedTimes(_ context.Context, date string) ([]string, error) {
	var times []string
	for _, ap := range f.rows {
		if ap.Date == date && ap.Status == string(domain.StatusConfirmed) {
			times = append(times, ap.Time)
		}
	}
	sort.Strings(times)
	return times, nil
}

func (f *fakeRepo) Create(_ context.Context, ap *models.Appointment) error {
	for _, existing := range f.rows {
		if existing.Date == ap.Date && existing.Time == ap.Time &&
			existing.Status == string(domain.StatusConfirmed) {
			return httperr.ErrBusiness("slot_unavailable")
		}
	}

	ap.ID = f.nextID
	f.nextID++
	cp := *ap
	f.rows[ap.ID] = &cp
	return nil
}

func (f *fakeRepo) ListAll(context.Context) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(f.rows))
	for _, ap := range f.rows {
		out = append(out, *ap)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.rows {
		if ap.UserID != nil && *ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) GetOwned(_ context.Context, id, userID uint) (*models.Appointment, error) {
	ap, ok := f.rows[id]
	if !ok || ap.UserID == nil || *ap.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeRepo) Update(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.rows[ap.ID] = &cp
	return nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeCache registra o que o use case pediu e serve hits pré-carregados.
type fakeCache struct {
	booked      map[string][]string
	sets        int
	invalidates []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{booked: map[string][]string{}}
}

func (f *fakeCache) GetBooked(_ context.Context, date string) ([]string, bool) {
	times, ok := f.booked[date]
	return times, ok
}

func (f *fakeCache) SetBooked(_ context.Context, date string, times []string) {
	f.booked[date] = times
	f.sets++
}

func (f *fakeCache) Invalidate(_ context.Context, date string) {
	delete(f.booked, date)
	f.invalidates = append(f.invalidates, date)
}
