package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type ListAppointmentsByDate struct {
	store domain.Store
	clock timezone.Clock
}

func NewListAppointmentsByDate(
	store domain.Store,
	clock timezone.Clock,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		store: store,
		clock: clock,
	}
}

// Execute lista todos os agendamentos da data (qualquer status) por horário crescente.
// Data vazia significa hoje no fuso da barbearia.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]dto.AppointmentListDTO, error) {

	date = strings.TrimSpace(date)
	if date == "" {
		date = uc.clock.Today()
	}

	date, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, apperr.Invalid("date", "invalid_date")
	}

	appointments, err := uc.store.Appointments().ListForDate(ctx, date)
	if err != nil {
		return nil, apperr.Persistence("list_for_date", err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentList(ap))
	}

	return out, nil
}
