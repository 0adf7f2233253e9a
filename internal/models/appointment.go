package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	// ServiceID fica nulo quando o serviço veio como texto livre.
	ServiceID   *uint    `json:"service_id"`
	Service     *Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service,omitempty"`
	ServiceName string   `gorm:"size:100;not null" json:"service_name"`

	Date string `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`        // HH:MM

	Status string `gorm:"size:20;not null;default:'Pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
