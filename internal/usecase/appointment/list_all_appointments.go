package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
)

type ListAllAppointments struct {
	store domain.Store
}

func NewListAllAppointments(store domain.Store) *ListAllAppointments {
	return &ListAllAppointments{store: store}
}

func (uc *ListAllAppointments) Execute(ctx context.Context) ([]dto.AppointmentListDTO, error) {
	appointments, err := uc.store.Appointments().ListAll(ctx)
	if err != nil {
		return nil, apperr.Persistence("list_all", err)
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.NewAppointmentList(ap))
	}
	return out, nil
}
