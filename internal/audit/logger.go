package audit

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Logger grava eventos na tabela audit_logs.
type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	row := models.AuditLog{
		UserID:   ev.UserID,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.db.WithContext(ctx).Create(&row).Error
}

type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time // exclusivo
	Page   int
	Limit  int
}

// Normalize aplica página 1 e limite 50 (máx. 200) quando ausentes.
func (f *Filter) Normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
}

// List devolve uma página de eventos, mais recentes primeiro, e o total filtrado.
func (l *Logger) List(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f.Normalize()

	q := l.db.WithContext(ctx).Model(&models.AuditLog{})

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Order("id DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
