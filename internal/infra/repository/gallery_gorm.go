package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/gallery"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type GalleryGormRepository struct {
	db *gorm.DB
}

func NewGalleryGormRepository(db *gorm.DB) *GalleryGormRepository {
	return &GalleryGormRepository{db: db}
}

func (r *GalleryGormRepository) Create(ctx context.Context, img *models.GalleryImage) error {
	return r.db.WithContext(ctx).Create(img).Error
}

func (r *GalleryGormRepository) List(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	if err := r.db.WithContext(ctx).
		Order("uploaded_at DESC").
		Order("id DESC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

var _ gallery.Repository = (*GalleryGormRepository)(nil)
