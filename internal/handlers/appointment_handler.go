package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AldebertBarber/aldebert-api/internal/dto"
	"github.com/AldebertBarber/aldebert-api/internal/httperr"
	"github.com/AldebertBarber/aldebert-api/internal/httpresp"
	"github.com/AldebertBarber/aldebert-api/internal/middleware"
	ucAppointment "github.com/AldebertBarber/aldebert-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	createUC       *ucAppointment.CreateBooking
	listUC         *ucAppointment.ListAppointments
	listMineUC     *ucAppointment.ListMyAppointments
	cancelUC       *ucAppointment.CancelAppointment
	cancelMineUC   *ucAppointment.CancelMyAppointment
}

func NewAppointmentHandler(
	availabilityUC *ucAppointment.GetAvailability,
	createUC *ucAppointment.CreateBooking,
	listUC *ucAppointment.ListAppointments,
	listMineUC *ucAppointment.ListMyAppointments,
	cancelUC *ucAppointment.CancelAppointment,
	cancelMineUC *ucAppointment.CancelMyAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		availabilityUC: availabilityUC,
		createUC:       createUC,
		listUC:         listUC,
		listMineUC:     listMineUC,
		cancelUC:       cancelUC,
		cancelMineUC:   cancelMineUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Service string `json:"service" binding:"required,min=3"`
	Date    string `json:"date" binding:"required"`
	Time    string `json:"time" binding:"required"`
	Name    string `json:"name" binding:"required,min=3"`
	Phone   string `json:"phone" binding:"required,min=8"`
	Price   int    `json:"price" binding:"required,gt=0"`
}

// ======================================================
// AVAILABILITY (público)
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	day, err := h.availabilityUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		if httperr.IsBusiness(err, "missing_date") {
			httperr.BadRequest(c, "missing_date", "Data obrigatória.")
			return
		}
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		httperr.Internal(c, "failed_to_get_availability", "Erro interno do servidor.")
		return
	}

	httpresp.OK(c, day)
}

// ======================================================
// CREATE (público, bearer opcional)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// Soft-auth: token de usuário vincula o dono; admin ou anônimo
	// agendam sem vínculo.
	var ownerID *uint
	if id, ok := middleware.IdentityFrom(c); ok && id.Role == middleware.RoleUser {
		uid := id.ID
		ownerID = &uid
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateBookingInput{
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Name:        req.Name,
		Phone:       req.Phone,
		Price:       req.Price,
		OwnerUserID: ownerID,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.Conflict(c, "slot_unavailable", "Horário indisponível.")
		case httperr.IsBusiness(err, "invalid_date"):
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
		case httperr.IsBusiness(err, "invalid_time"):
			httperr.BadRequest(c, "invalid_time", "Horário fora da grade.")
		default:
			httperr.Internal(c, "failed_to_create_appointment", "Erro interno do servidor.")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"appointment": ap})
}

// ======================================================
// LISTING
// ======================================================

func (h *AppointmentHandler) ListAll(c *gin.Context) {
	apps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro interno do servidor.")
		return
	}

	rows := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		rows = append(rows, dto.FromAppointment(ap))
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Credenciais inválidas.")
		return
	}

	apps, err := h.listMineUC.Execute(c.Request.Context(), id.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Erro interno do servidor.")
		return
	}

	rows := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		rows = append(rows, dto.FromAppointment(ap))
	}

	httpresp.List(c, rows)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Credenciais inválidas.")
		return
	}

	apID, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), apID, id.ID)
	if err != nil {
		writeCancelError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Agendamento cancelado.", "appointment": ap})
}

func (h *AppointmentHandler) CancelMine(c *gin.Context) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Unauthorized(c, "user_not_in_context", "Credenciais inválidas.")
		return
	}

	apID, err := parseIDParam(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelMineUC.Execute(c.Request.Context(), apID, id.ID)
	if err != nil {
		writeCancelError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Agendamento cancelado.", "appointment": ap})
}

// ======================================================
// HELPERS
// ======================================================

func parseIDParam(c *gin.Context) (uint, error) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(raw), nil
}

func writeCancelError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.Conflict(c, "invalid_state", "Agendamento já cancelado.")
	default:
		httperr.Internal(c, "failed_to_cancel_appointment", "Erro interno do servidor.")
	}
}
