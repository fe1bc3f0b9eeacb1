package audit

import "github.com/rs/zerolog"

type Event struct {
	ProviderID uint
	UserID     *uint
	Action     string
	Entity     string
	EntityID   *uint
	Metadata   any
}

// Dispatcher grava auditoria fora do caminho da requisição.
type Dispatcher struct {
	logger *Logger
	log    zerolog.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
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
			ev.ProviderID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	select {
	case d.queue <- ev:
	default:
		// fila cheia: descartamos auditoria, nunca quebramos a API
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
