package account

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	// Create devolve apperr.ErrDuplicateEmail quando o índice único de email dispara.
	Create(ctx context.Context, user *models.User) error

	// FindByEmail retorna nil, nil quando não encontrado.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	FindByID(ctx context.Context, id uint) (*models.User, error)
}
