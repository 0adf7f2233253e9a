package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Path        string `gorm:"size:255;not null" json:"path"`
	URL         string `gorm:"size:512;not null" json:"url"`
	Description string `gorm:"size:255" json:"description"`

	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	UploadedAt time.Time `gorm:"index" json:"uploaded_at"`
}
