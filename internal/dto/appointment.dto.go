package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type CreateAppointmentRequest struct {
	BarberID        uint   `json:"barber_id" binding:"required"`
	ServiceID       uint   `json:"service_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required,isodate"`
	AppointmentTime string `json:"appointment_time" binding:"required,hhmm"`
	Notes           string `json:"notes" binding:"max=2000"`
}

type AppointmentDTO struct {
	ID uint `json:"id"`

	ClientID   uint   `json:"client"`
	ClientName string `json:"client_name"`
	BarberID   uint   `json:"barber"`
	BarberName string `json:"barber_name"`

	ServiceID       uint            `json:"service"`
	ServiceName     string          `json:"service_name"`
	ServicePrice    decimal.Decimal `json:"service_price"`
	ServiceDuration int             `json:"service_duration"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	Status          string `json:"status"`
	Notes           string `json:"notes"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		ClientID:        ap.ClientID,
		ClientName:      ap.Client.FullName(),
		BarberID:        ap.BarberID,
		BarberName:      ap.Barber.FullName(),
		ServiceID:       ap.ServiceID,
		ServiceName:     ap.Service.Name,
		ServicePrice:    ap.Service.Price,
		ServiceDuration: ap.Service.Duration,
		AppointmentDate: timezone.FormatDate(ap.AppointmentDate),
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		Notes:           ap.Notes,
		ConfirmedAt:     ap.ConfirmedAt,
		CompletedAt:     ap.CompletedAt,
		CancelledAt:     ap.CancelledAt,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}

func NewAppointmentDTOs(aps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(aps))
	for i := range aps {
		out = append(out, NewAppointmentDTO(&aps[i]))
	}
	return out
}
