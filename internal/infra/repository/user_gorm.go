package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/account"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// Create confia no índice único de email; não há checagem prévia.
func (r *UserGormRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if apperr.IsUniqueViolation(err) {
			return apperr.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *UserGormRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Limit(1).
		Find(&users).Error; err != nil {
		return nil, err
	}

	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *UserGormRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

var _ account.Repository = (*UserGormRepository)(nil)
