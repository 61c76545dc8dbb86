package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type BarberGormRepository struct {
	base
}

func NewBarberGormRepository(db *gorm.DB) *BarberGormRepository {
	return &BarberGormRepository{base{db: db}}
}

func (r *BarberGormRepository) ListProfiles(
	ctx context.Context,
	f barber.ProfileFilter,
) ([]models.BarberProfile, error) {

	q := r.profiles(ctx)
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.ApprovedOnly {
		q = q.Where("is_approved = ?", true)
	}

	var out []models.BarberProfile
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *BarberGormRepository) CreateProfile(
	ctx context.Context,
	p *models.BarberProfile,
) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		return insertHours(tx, p)
	}))
}

func (r *BarberGormRepository) SaveProfile(
	ctx context.Context,
	p *models.BarberProfile,
	replaceHours bool,
) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(p).Error; err != nil {
			return err
		}
		if !replaceHours {
			return nil
		}
		if err := tx.Where("barber_profile_id = ?", p.ID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}
		return insertHours(tx, p)
	}))
}

func insertHours(tx *gorm.DB, p *models.BarberProfile) error {
	if len(p.WorkingHours) == 0 {
		return nil
	}
	for i := range p.WorkingHours {
		p.WorkingHours[i].ID = 0
		p.WorkingHours[i].BarberProfileID = p.ID
	}
	return tx.Create(&p.WorkingHours).Error
}

var _ barber.Repository = (*BarberGormRepository)(nil)
