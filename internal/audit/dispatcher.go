package audit

import "go.uber.org/zap"

// Ações registradas pelo sistema.
const (
	ActionAppointmentCreated   = "appointment_created"
	ActionAppointmentCancelled = "appointment_cancelled"
	ActionLoyaltyCutAdded      = "loyalty_cut_added"
	ActionLoyaltyCutRemoved    = "loyalty_cut_removed"
	ActionLoyaltyCycleStarted  = "loyalty_cycle_started"
	ActionLoyaltyClaimed       = "loyalty_claimed"
)

type Event struct {
	ActorRole string
	ActorID   *uint
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

type Dispatcher struct {
	logger *Logger
	log    *zap.SugaredLogger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log *zap.SugaredLogger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorRole,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Errorw("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch nunca bloqueia a requisição: fila cheia descarta o evento.
// Dispatcher nil também descarta, o que simplifica testes de use case.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warnw("audit queue full, dropping event", "action", ev.Action)
	}
}
