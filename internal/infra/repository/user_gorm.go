package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/dashboard"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/user"
)

type UserGormRepository struct {
	base
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{base{db: db}}
}

func (r *UserGormRepository) CreateUser(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *UserGormRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *UserGormRepository) UpdateUser(ctx context.Context, u *models.User) error {
	return translate(r.db.WithContext(ctx).Save(u).Error)
}

func (r *UserGormRepository) ListUsers(ctx context.Context, f identity.UserFilter) ([]models.User, error) {
	q := r.db.WithContext(ctx)
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.ClientsOfBarber != nil {
		q = q.Where("id IN (?)", r.db.Model(&models.Appointment{}).
			Select("client_id").
			Where("barber_id = ?", *f.ClientsOfBarber))
	}

	var out []models.User
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *UserGormRepository) CountUsers(ctx context.Context, role *identity.Role) (int64, error) {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if role != nil {
		q = q.Where("user_type = ?", *role)
	}
	var n int64
	err := q.Count(&n).Error
	return n, translate(err)
}

var (
	_ user.Repository      = (*UserGormRepository)(nil)
	_ dashboard.Repository = (*UserGormRepository)(nil)
)
