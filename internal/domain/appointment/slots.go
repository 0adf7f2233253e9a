package appointment

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotGrid é a grade fixa de horários de atendimento, com pausa de almoço opcional.
type SlotGrid struct {
	open       time.Duration
	close      time.Duration
	lunchStart time.Duration
	lunchEnd   time.Duration
	hasLunch   bool
	interval   time.Duration
}

func NewSlotGrid(openAt, closeAt, lunchStart, lunchEnd string, interval time.Duration) (SlotGrid, error) {
	if interval <= 0 {
		return SlotGrid{}, fmt.Errorf("slot interval must be positive")
	}

	g := SlotGrid{interval: interval}

	var err error
	if g.open, err = parseHM(openAt); err != nil {
		return SlotGrid{}, err
	}
	if g.close, err = parseHM(closeAt); err != nil {
		return SlotGrid{}, err
	}
	if g.close <= g.open {
		return SlotGrid{}, fmt.Errorf("close %s must be after open %s", closeAt, openAt)
	}

	if lunchStart != "" && lunchEnd != "" {
		if g.lunchStart, err = parseHM(lunchStart); err != nil {
			return SlotGrid{}, err
		}
		if g.lunchEnd, err = parseHM(lunchEnd); err != nil {
			return SlotGrid{}, err
		}
		g.hasLunch = g.lunchEnd > g.lunchStart
	}

	return g, nil
}

// Slots lista todos os horários da grade, sem considerar ocupação.
func (g SlotGrid) Slots() []TimeSlot {
	var out []TimeSlot
	for cur := g.open; cur+g.interval <= g.close; cur += g.interval {
		end := cur + g.interval

		// almoço
		if g.hasLunch && cur < g.lunchEnd && end > g.lunchStart {
			continue
		}

		out = append(out, TimeSlot{Start: formatHM(cur), End: formatHM(end)})
	}
	return out
}

// Contains informa se hm (HH:MM) é o início de um horário da grade.
func (g SlotGrid) Contains(hm string) bool {
	for _, s := range g.Slots() {
		if s.Start == hm {
			return true
		}
	}
	return false
}

// NormalizeDate aceita YYYY-MM-DD e devolve a forma canônica.
func NormalizeDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", err
	}
	return d.Format(DateLayout), nil
}

// NormalizeTime aceita "9:00" ou "09:00" e devolve HH:MM.
func NormalizeTime(s string) (string, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return "", err
	}
	return t.Format(TimeLayout), nil
}

func parseHM(hm string) (time.Duration, error) {
	t, err := time.Parse(TimeLayout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func formatHM(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
