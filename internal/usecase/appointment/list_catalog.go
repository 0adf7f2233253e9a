package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type ListServices struct {
	store domain.Store
}

func NewListServices(store domain.Store) *ListServices {
	return &ListServices{store: store}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	services, err := uc.store.Services().List(ctx)
	if err != nil {
		return nil, apperr.Persistence("list_services", err)
	}
	return services, nil
}

type ListClients struct {
	store domain.Store
}

func NewListClients(store domain.Store) *ListClients {
	return &ListClients{store: store}
}

// Execute filtra por nome ou telefone quando query não é vazia.
func (uc *ListClients) Execute(ctx context.Context, query string) ([]models.Client, error) {
	clients, err := uc.store.Clients().List(ctx, query)
	if err != nil {
		return nil, apperr.Persistence("list_clients", err)
	}
	return clients, nil
}
