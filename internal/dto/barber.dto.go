package dto

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type BarberProfileRequest struct {
	UserID         *uint                      `json:"user_id"`
	Bio            *string                    `json:"bio"`
	Specialization *string                    `json:"specialization" binding:"omitempty,max=200"`
	IsAvailable    *bool                      `json:"is_available"`
	WorkingHours   map[string]barber.DayInput `json:"working_hours"`
}

type HoursDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type BarberProfileDTO struct {
	ID             uint                `json:"id"`
	User           UserDTO             `json:"user"`
	Bio            string              `json:"bio"`
	Specialization string              `json:"specialization"`
	IsAvailable    bool                `json:"is_available"`
	IsApproved     bool                `json:"is_approved"`
	WorkingHours   map[string]HoursDTO `json:"working_hours"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

func NewBarberProfileDTO(p *models.BarberProfile) BarberProfileDTO {
	week := barber.HoursFromModels(p.WorkingHours)
	hours := make(map[string]HoursDTO, len(week))
	for day, h := range week {
		hours[day.String()] = HoursDTO{Start: h.Start.String(), End: h.End.String()}
	}

	return BarberProfileDTO{
		ID:             p.ID,
		User:           NewUserDTO(&p.User),
		Bio:            p.Bio,
		Specialization: p.Specialization,
		IsAvailable:    p.IsAvailable,
		IsApproved:     p.IsApproved,
		WorkingHours:   hours,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func NewBarberProfileDTOs(ps []models.BarberProfile) []BarberProfileDTO {
	out := make([]BarberProfileDTO, 0, len(ps))
	for i := range ps {
		out = append(out, NewBarberProfileDTO(&ps[i]))
	}
	return out
}
