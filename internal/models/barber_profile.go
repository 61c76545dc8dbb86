package models

import "time"

type BarberProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Bio            string `gorm:"type:text" json:"bio"`
	Specialization string `gorm:"size:200" json:"specialization"`
	IsAvailable    bool   `gorm:"not null" json:"is_available"`
	IsApproved     bool   `gorm:"default:false" json:"is_approved"`

	WorkingHours []WorkingHours `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
