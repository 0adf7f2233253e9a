package audit

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

const (
	ActionAppointmentCreated = "appointment_created"
	ActionAppointmentFailed  = "appointment_failed"
	ActionUserRegistered     = "user_registered"
	ActionGalleryUploaded    = "gallery_uploaded"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type sink interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher grava eventos de auditoria fora do caminho da requisição.
type Dispatcher struct {
	sink  sink
	log   zerolog.Logger
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log zerolog.Logger) *Dispatcher {
	return newDispatcher(logger, log, 100)
}

func newDispatcher(s sink, log zerolog.Logger, size int) *Dispatcher {
	d := &Dispatcher{
		sink:  s,
		log:   log,
		queue: make(chan Event, size),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Log(context.Background(), ev); err != nil {
			d.log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch nunca bloqueia: com a fila cheia o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drena a fila e espera o worker terminar.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
