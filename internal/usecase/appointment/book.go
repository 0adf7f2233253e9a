package appointment

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type BookInput struct {
	Name    string
	Phone   string
	Date    string
	Time    string
	Service string
}

type Booking struct {
	AppointmentID uint          `json:"appointment_id"`
	ClientID      uint          `json:"client_id"`
	ClientName    string        `json:"client_name"`
	ClientReused  bool          `json:"client_reused"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Service       string        `json:"service"`
	Status        domain.Status `json:"status"`
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	tx     domain.TxManager
	audit  *audit.Dispatcher
	log    zerolog.Logger
	status domain.Status

	// nil aceita qualquer HH:MM válido
	grid *domain.SlotGrid
}

func NewBookAppointment(
	tx domain.TxManager,
	audit *audit.Dispatcher,
	log zerolog.Logger,
	initialStatus domain.Status,
) *BookAppointment {
	if !initialStatus.IsActive() {
		initialStatus = domain.StatusPending
	}
	return &BookAppointment{
		tx:     tx,
		audit:  audit,
		log:    log,
		status: initialStatus,
	}
}

// WithSlotGrid passa a recusar horários que não começam um slot da grade.
func (uc *BookAppointment) WithSlotGrid(g domain.SlotGrid) *BookAppointment {
	uc.grid = &g
	return uc
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookInput,
) (*Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Validação (sem tocar no banco)
	// --------------------------------------------------
	in, err := validateBookInput(in)
	if err == nil && uc.grid != nil && !uc.grid.Contains(in.Time) {
		err = apperr.Invalid("time", "outside_slot_grid")
	}
	if err != nil {
		metrics.IncBooking(metrics.ResultValidation)
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Transação: slot, serviço, cliente, insert
	// --------------------------------------------------
	out := &Booking{
		ClientName: in.Name,
		Date:       in.Date,
		Time:       in.Time,
		Status:     uc.status,
	}

	op := "check_slot"
	err = uc.tx.WithinTx(ctx, func(tx domain.Store) error {
		busy, err := tx.Appointments().HasActiveAppointment(ctx, in.Date, in.Time)
		if err != nil {
			return err
		}
		if busy {
			return apperr.ErrSlotUnavailable
		}

		op = "resolve_service"
		svc, err := tx.Services().Resolve(ctx, in.Service)
		if err != nil {
			return err
		}
		out.Service = svc.Name

		op = "resolve_client"
		client, err := tx.Clients().FindByPhone(ctx, in.Phone)
		if err != nil {
			return err
		}
		if client != nil {
			out.ClientReused = true
		} else {
			op = "create_client"
			client, err = tx.Clients().Create(ctx, in.Name, in.Phone)
			if err != nil {
				return err
			}
		}
		out.ClientID = client.ID

		op = "insert_appointment"
		id, err := tx.Appointments().Insert(ctx, client.ID, svc, in.Date, in.Time, uc.status)
		if err != nil {
			return err
		}
		out.AppointmentID = id

		op = "commit"
		return nil
	})

	// --------------------------------------------------
	// 3️⃣ Classificação do erro + observabilidade
	// --------------------------------------------------
	if err != nil {
		err = apperr.Persistence(op, err)
		uc.observeFailure(in, err)
		return nil, err
	}

	metrics.IncBooking(metrics.ResultBooked)

	id := out.AppointmentID
	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &id,
		Metadata: map[string]any{
			"date":          out.Date,
			"time":          out.Time,
			"service":       out.Service,
			"client_id":     out.ClientID,
			"client_reused": out.ClientReused,
		},
	})

	return out, nil
}

func (uc *BookAppointment) observeFailure(in BookInput, err error) {
	if errors.Is(err, apperr.ErrSlotUnavailable) {
		metrics.IncBooking(metrics.ResultSlotUnavailable)
		return
	}

	metrics.IncBooking(metrics.ResultPersistence)

	var pe *apperr.PersistenceError
	if !errors.As(err, &pe) {
		return
	}

	uc.log.Error().
		Err(pe.Err).
		Str("op", pe.Op).
		Str("date", in.Date).
		Str("time", in.Time).
		Msg("booking persistence failure")

	uc.audit.Dispatch(audit.Event{
		Action: audit.ActionAppointmentFailed,
		Entity: "appointment",
		Metadata: map[string]any{
			"op":    pe.Op,
			"date":  in.Date,
			"time":  in.Time,
			"cause": pe.Err.Error(),
		},
	})
}

// validateBookInput apara os campos e normaliza data/hora.
func validateBookInput(in BookInput) (BookInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Service = strings.TrimSpace(in.Service)

	fields := []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"phone", in.Phone},
		{"date", in.Date},
		{"time", in.Time},
		{"service", in.Service},
	}
	for _, f := range fields {
		if f.value == "" {
			return in, apperr.Missing(f.name)
		}
	}

	date, err := domain.NormalizeDate(in.Date)
	if err != nil {
		return in, apperr.Invalid("date", "invalid_date")
	}
	in.Date = date

	hm, err := domain.NormalizeTime(in.Time)
	if err != nil {
		return in, apperr.Invalid("time", "invalid_time")
	}
	in.Time = hm

	return in, nil
}
