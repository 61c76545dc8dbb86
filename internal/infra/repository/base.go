package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// base holds the lookups several repositories share.
type base struct {
	db *gorm.DB
}

func (r base) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r base) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, translate(err)
	}
	return &s, nil
}

func (r base) profiles(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekday ASC")
		})
}

func (r base) GetProfile(ctx context.Context, id uint) (*models.BarberProfile, error) {
	var p models.BarberProfile
	if err := r.profiles(ctx).First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r base) GetProfileByUser(ctx context.Context, userID uint) (*models.BarberProfile, error) {
	var p models.BarberProfile
	if err := r.profiles(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r base) CountAppointments(ctx context.Context, f domain.ListFilter) (int64, error) {
	var n int64
	err := applyFilter(r.db.WithContext(ctx).Model(&models.Appointment{}), f).
		Count(&n).Error
	return n, translate(err)
}

func applyFilter(q *gorm.DB, f domain.ListFilter) *gorm.DB {
	if f.ClientID != nil {
		q = q.Where("client_id = ?", *f.ClientID)
	}
	if f.BarberID != nil {
		q = q.Where("barber_id = ?", *f.BarberID)
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		q = q.Where("status IN ?", statuses)
	}
	if f.Date != nil {
		q = q.Where("appointment_date = ?", *f.Date)
	}
	if f.Time != nil {
		q = q.Where("appointment_time = ?", *f.Time)
	}
	if f.FromDate != nil {
		q = q.Where("appointment_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("appointment_date < ?", *f.ToDate)
	}
	return q
}
