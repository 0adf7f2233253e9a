package appointment

import "fmt"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "Pending"
	StatusScheduled Status = "Scheduled"

	// Existem no schema, mas nenhum fluxo atual leva um agendamento até eles.
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// ActiveStatuses ocupam o horário.
func ActiveStatuses() []string {
	return []string{string(StatusPending), string(StatusScheduled)}
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusScheduled
}

// InitialStatus valida o status configurado para novos agendamentos.
func InitialStatus(configured string) (Status, error) {
	s := Status(configured)
	if !s.IsActive() {
		return "", fmt.Errorf("invalid initial status %q", configured)
	}
	return s, nil
}
