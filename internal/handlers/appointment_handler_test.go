package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	domain "github.com/AldebertBarber/aldebert-api/internal/domain/appointment"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/middleware"
	"github.com/AldebertBarber/aldebert-api/internal/models"
	ucAppointment "github.com/AldebertBarber/aldebert-api/internal/usecase/appointment"
)

// fakeLedger guarda agendamentos em memória com a mesma regra de slot
// ativo único do índice parcial.
type fakeLedger struct {
	rows   map[uint]*models.Appointment
	nextID uint
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{rows: map[uint]*models.Appointment{}, nextID: 1}
}

func (f *fakeLedger) ListBookedTimes(_ context.Context, date string) ([]string, error) {
	var times []string
	for _, ap := range f.rows {
		if ap.Date == date && ap.Status == string(domain.StatusConfirmed) {
			times = append(times, ap.Time)
		}
	}
	sort.Strings(times)
	return times, nil
}

func (f *fakeLedger) Create(_ context.Context, ap *models.Appointment) error {
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

func (f *fakeLedger) ListAll(context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
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

func (f *fakeLedger) ListByUser(_ context.Context, userID uint) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.rows {
		if ap.UserID != nil && *ap.UserID == userID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeLedger) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeLedger) GetOwned(_ context.Context, id, userID uint) (*models.Appointment, error) {
	ap, ok := f.rows[id]
	if !ok || ap.UserID == nil || *ap.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *ap
	return &cp, nil
}

func (f *fakeLedger) Update(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	f.rows[ap.ID] = &cp
	return nil
}

var _ domain.Repository = (*fakeLedger)(nil)

// noopCache evita dependência de Redis nos testes de handler.
type noopCache struct{}

func (noopCache) GetBooked(context.Context, string) ([]string, bool) { return nil, false }
func (noopCache) SetBooked(context.Context, string, []string)       {}
func (noopCache) Invalidate(context.Context, string)                {}

func appointmentRouter(ledger *fakeLedger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(
		ucAppointment.NewGetAvailability(ledger, noopCache{}),
		ucAppointment.NewCreateBooking(ledger, noopCache{}, nil),
		ucAppointment.NewListAppointments(ledger),
		ucAppointment.NewListMyAppointments(ledger),
		ucAppointment.NewCancelAppointment(ledger, noopCache{}, nil),
		ucAppointment.NewCancelMyAppointment(ledger, noopCache{}, nil),
	)

	r := gin.New()
	r.GET("/api/availability", h.Availability)
	r.POST("/api/appointments", h.Create)
	r.POST("/api/appointments-as-user", asIdentity(7, middleware.RoleUser), h.Create)
	r.GET("/api/appointments", asIdentity(1, middleware.RoleAdmin), h.ListAll)
	r.DELETE("/api/appointments/:id", asIdentity(1, middleware.RoleAdmin), h.Cancel)
	r.GET("/api/my-appointments", asIdentity(7, middleware.RoleUser), h.ListMine)
	r.DELETE("/api/my-appointments/:id", asIdentity(7, middleware.RoleUser), h.CancelMine)
	return r
}

const bookingBody = `{
	"service": "Corte Social",
	"date": "2025-06-10",
	"time": "09:00",
	"name": "João da Silva",
	"phone": "11999990000",
	"price": 90
}`

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAvailabilityRequiresDateParam(t *testing.T) {
	r := appointmentRouter(newFakeLedger())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingConflictFlow(t *testing.T) {
	r := appointmentRouter(newFakeLedger())

	// Primeiro booking vence.
	w := postJSON(r, "/api/appointments", bookingBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Confirmado", created.Appointment.Status)
	assert.Equal(t, 90, created.Appointment.Price)

	// Mesmo slot com outro cliente: 409.
	other := strings.Replace(bookingBody, "João da Silva", "Maria Souza", 1)
	w = postJSON(r, "/api/appointments", other)
	assert.Equal(t, http.StatusConflict, w.Code)

	// O horário aparece como ocupado na disponibilidade do dia.
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2025-06-10", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var day struct {
		BookedTimes    []string `json:"bookedTimes"`
		AvailableTimes []string `json:"availableTimes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &day))
	assert.Contains(t, day.BookedTimes, "09:00")
	assert.NotContains(t, day.AvailableTimes, "09:00")
}

func TestBookingValidation(t *testing.T) {
	r := appointmentRouter(newFakeLedger())

	cases := map[string]string{
		"short_service": strings.Replace(bookingBody, "Corte Social", "X", 1),
		"short_name":    strings.Replace(bookingBody, "João da Silva", "Jo", 1),
		"short_phone":   strings.Replace(bookingBody, "11999990000", "1199", 1),
		"zero_price":    strings.Replace(bookingBody, `"price": 90`, `"price": 0`, 1),
		"off_grid_time": strings.Replace(bookingBody, "09:00", "12:00", 1),
	}

	for name, body := range cases {
		w := postJSON(r, "/api/appointments", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestBookingOwnerAttachment(t *testing.T) {
	ledger := newFakeLedger()
	r := appointmentRouter(ledger)

	w := postJSON(r, "/api/appointments-as-user", bookingBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Appointment models.Appointment `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Appointment.UserID)
	assert.Equal(t, uint(7), *created.Appointment.UserID)

	// E aparece em "meus agendamentos".
	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/my-appointments", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestAdminCancel(t *testing.T) {
	ledger := newFakeLedger()
	r := appointmentRouter(ledger)

	w := postJSON(r, "/api/appointments", bookingBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/appointments/1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Cancelar de novo: estado inválido.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/appointments/1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Id inexistente: not found.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/appointments/42", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Slot liberado: dá para reagendar o mesmo horário.
	w = postJSON(r, "/api/appointments", bookingBody)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUserCancelOnlyOwnRows(t *testing.T) {
	ledger := newFakeLedger()
	r := appointmentRouter(ledger)

	// Booking anônimo (id 1) não pertence ao usuário 7.
	w := postJSON(r, "/api/appointments", bookingBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/my-appointments/1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Booking do próprio usuário (id 2) pode ser cancelado.
	other := strings.Replace(bookingBody, "09:00", "09:30", 1)
	w = postJSON(r, "/api/appointments-as-user", other)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/my-appointments/2", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
