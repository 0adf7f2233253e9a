package models

import "time"

// Service é o catálogo de serviços da barbearia (somente leitura para o agendamento).
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name" yaml:"name"`
	Price       float64 `json:"price" yaml:"price"`
	DurationMin int     `json:"duration_min" yaml:"duration_min"`
	Active      bool    `gorm:"default:true" json:"active" yaml:"-"`

	CreatedAt time.Time `json:"created_at" yaml:"-"`
	UpdatedAt time.Time `json:"updated_at" yaml:"-"`
}
