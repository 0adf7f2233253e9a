package models

import "time"

// Cliente simples, sem login. O telefone identifica o cliente entre agendamentos.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:30;uniqueIndex;not null" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
