package models

import "time"

// WorkingHours is one working day of a barber profile. Days without a row
// are days off.
type WorkingHours struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	BarberProfileID uint `gorm:"uniqueIndex:idx_working_hours_day;not null" json:"barber_profile_id"`

	// Monday=0 .. Sunday=6
	Weekday int `gorm:"uniqueIndex:idx_working_hours_day;not null" json:"weekday"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
