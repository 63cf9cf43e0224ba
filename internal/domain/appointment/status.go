package appointment

import "github.com/AldebertBarber/aldebert-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "Confirmado"
	StatusCancelled Status = "Cancelado"
)

// CanCancel define se um agendamento ainda pode ser cancelado.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
