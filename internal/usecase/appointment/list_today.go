package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ListToday é a agenda pública do dia: só agendamentos ativos.
type ListToday struct {
	store domain.Store
	clock timezone.Clock
}

func NewListToday(store domain.Store, clock timezone.Clock) *ListToday {
	return &ListToday{store: store, clock: clock}
}

func (uc *ListToday) Execute(ctx context.Context) ([]dto.TodayAppointmentDTO, error) {
	appointments, err := uc.store.Appointments().ListActiveForDate(ctx, uc.clock.Today())
	if err != nil {
		return nil, apperr.Persistence("list_today", err)
	}

	out := make([]dto.TodayAppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewTodayAppointment(ap))
	}
	return out, nil
}
