package appointment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

type GetAvailability struct {
	store domain.Store
	grid  domain.SlotGrid
}

func NewGetAvailability(store domain.Store, grid domain.SlotGrid) *GetAvailability {
	return &GetAvailability{store: store, grid: grid}
}

// Execute devolve os horários da grade ainda livres na data.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.TimeSlot, error) {

	date = strings.TrimSpace(date)
	if date == "" {
		return nil, apperr.Missing("date")
	}

	date, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, apperr.Invalid("date", "invalid_date")
	}

	appointments, err := uc.store.Appointments().ListActiveForDate(ctx, date)
	if err != nil {
		return nil, apperr.Persistence("list_active_for_date", err)
	}

	busy := make(map[string]struct{}, len(appointments))
	for _, ap := range appointments {
		busy[ap.Time] = struct{}{}
	}

	slots := []domain.TimeSlot{}
	for _, s := range uc.grid.Slots() {
		if _, taken := busy[s.Start]; taken {
			continue
		}
		slots = append(slots, s)
	}

	return slots, nil
}
