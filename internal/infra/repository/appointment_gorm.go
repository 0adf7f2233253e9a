package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// --------------------------------------------------
// Store (transaction scope)
// --------------------------------------------------

type GormStore struct {
	db *gorm.DB

	clients      *ClientGormRepository
	appointments *AppointmentGormRepository
	services     *ServiceGormRepository
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:           db,
		clients:      &ClientGormRepository{db: db},
		appointments: &AppointmentGormRepository{db: db},
		services:     &ServiceGormRepository{db: db},
	}
}

func (s *GormStore) Clients() domain.ClientRegistry { return s.clients }

func (s *GormStore) Appointments() domain.AppointmentStore { return s.appointments }

func (s *GormStore) Services() domain.ServiceCatalog { return s.services }

// WithinTx roda fn numa transação; erro ou panic em fn fazem rollback.
func (s *GormStore) WithinTx(
	ctx context.Context,
	fn func(tx domain.Store) error,
) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewGormStore(tx))
	})
}

// --------------------------------------------------
// Client
// --------------------------------------------------

type ClientGormRepository struct {
	db *gorm.DB
}

func (r *ClientGormRepository) FindByPhone(
	ctx context.Context,
	phone string,
) (*models.Client, error) {

	var clients []models.Client
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Limit(1).
		Find(&clients).Error; err != nil {
		return nil, err
	}

	if len(clients) == 0 {
		return nil, nil
	}
	return &clients[0], nil
}

// Create é idempotente por telefone: se outra transação criou o mesmo
// telefone antes, devolve o registro existente.
func (r *ClientGormRepository) Create(
	ctx context.Context,
	name string,
	phone string,
) (*models.Client, error) {

	client := models.Client{Name: name, Phone: phone}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phone"}},
			DoNothing: true,
		}).
		Create(&client)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 || client.ID == 0 {
		existing, err := r.FindByPhone(ctx, phone)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("client %s vanished after conflict", phone)
		}
		return existing, nil
	}

	return &client, nil
}

func (r *ClientGormRepository) List(
	ctx context.Context,
	query string,
) ([]models.Client, error) {

	q := r.db.WithContext(ctx)

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.Order("created_at DESC").Order("id DESC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// HasActiveAppointment trava as linhas encontradas (FOR UPDATE no postgres).
// A garantia final contra reserva dupla é o índice único parcial do slot.
func (r *AppointmentGormRepository) HasActiveAppointment(
	ctx context.Context,
	date string,
	time string,
) (bool, error) {

	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("date = ? AND time = ? AND status IN ?", date, time, domain.ActiveStatuses()).
		Limit(1).
		Pluck("id", &ids).Error; err != nil {
		return false, err
	}

	return len(ids) > 0, nil
}

func (r *AppointmentGormRepository) Insert(
	ctx context.Context,
	clientID uint,
	service domain.ServiceRef,
	date string,
	time string,
	status domain.Status,
) (uint, error) {

	ap := models.Appointment{
		ClientID:    clientID,
		ServiceID:   service.ID,
		ServiceName: service.Name,
		Date:        date,
		Time:        time,
		Status:      string(status),
	}

	if err := r.db.WithContext(ctx).Create(&ap).Error; err != nil {
		if apperr.IsUniqueViolation(err) || apperr.IsExclusionConflict(err) {
			return 0, fmt.Errorf("insert appointment %s %s: %w", date, time, apperr.ErrSlotUnavailable)
		}
		return 0, err
	}

	return ap.ID, nil
}

func (r *AppointmentGormRepository) ListForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("date = ?", date).
		Order("time ASC").
		Order("id ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListActiveForDate(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Where("date = ? AND status IN ?", date, domain.ActiveStatuses()).
		Order("time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAll(
	ctx context.Context,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Order("date DESC").
		Order("time DESC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

type ServiceGormRepository struct {
	db *gorm.DB
}

func (r *ServiceGormRepository) List(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *ServiceGormRepository) Resolve(
	ctx context.Context,
	label string,
) (domain.ServiceRef, error) {

	label = strings.TrimSpace(label)

	q := r.db.WithContext(ctx).Where("active = ?", true)
	if id, err := strconv.ParseUint(label, 10, 64); err == nil {
		q = q.Where("id = ?", id)
	} else {
		q = q.Where("LOWER(name) = ?", strings.ToLower(label))
	}

	var found []models.Service
	if err := q.Limit(1).Find(&found).Error; err != nil {
		return domain.ServiceRef{}, err
	}

	if len(found) == 0 {
		return domain.ServiceRef{Name: label}, nil
	}

	id := found[0].ID
	return domain.ServiceRef{ID: &id, Name: found[0].Name}, nil
}

// Compile-time check
var (
	_ domain.TxManager        = (*GormStore)(nil)
	_ domain.ClientRegistry   = (*ClientGormRepository)(nil)
	_ domain.AppointmentStore = (*AppointmentGormRepository)(nil)
	_ domain.ServiceCatalog   = (*ServiceGormRepository)(nil)
)
