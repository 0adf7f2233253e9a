package gallery

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	Create(ctx context.Context, img *models.GalleryImage) error

	// List ordena pelo upload mais recente.
	List(ctx context.Context) ([]models.GalleryImage, error)
}
