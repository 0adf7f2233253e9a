package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ClientRegistry resolve a identidade do cliente pelo telefone.
type ClientRegistry interface {
	// FindByPhone retorna nil, nil quando não existe cliente com o telefone.
	FindByPhone(ctx context.Context, phone string) (*models.Client, error)

	Create(ctx context.Context, name, phone string) (*models.Client, error)

	List(ctx context.Context, query string) ([]models.Client, error)
}

type AppointmentStore interface {
	HasActiveAppointment(ctx context.Context, date, time string) (bool, error)

	Insert(
		ctx context.Context,
		clientID uint,
		service ServiceRef,
		date string,
		time string,
		status Status,
	) (uint, error)

	// ListForDate ordena por horário crescente.
	ListForDate(ctx context.Context, date string) ([]models.Appointment, error)

	ListActiveForDate(ctx context.Context, date string) ([]models.Appointment, error)

	// ListAll ordena por data e horário decrescentes (painel do barbeiro).
	ListAll(ctx context.Context) ([]models.Appointment, error)
}

type ServiceCatalog interface {
	List(ctx context.Context) ([]models.Service, error)

	// Resolve casa o rótulo com o catálogo (id ou nome); sem match vira texto livre.
	Resolve(ctx context.Context, label string) (ServiceRef, error)
}

type ServiceRef struct {
	ID   *uint
	Name string
}

type Store interface {
	Clients() ClientRegistry
	Appointments() AppointmentStore
	Services() ServiceCatalog
}

// TxManager entrega um Store ligado a uma única transação.
// Qualquer erro devolvido por fn desfaz todas as escritas.
type TxManager interface {
	Store
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
