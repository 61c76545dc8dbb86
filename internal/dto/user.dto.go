package dto

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type RegisterRequest struct {
	Username  string `json:"username" binding:"required,max=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
	FirstName string `json:"first_name" binding:"max=150"`
	LastName  string `json:"last_name" binding:"max=150"`
	UserType  string `json:"user_type" binding:"omitempty,oneof=client barber admin"`
	Phone     string `json:"phone" binding:"omitempty,phone"`
	BirthDate string `json:"birth_date" binding:"omitempty,isodate"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateMeRequest struct {
	Email     *string `json:"email" binding:"omitempty,email"`
	FirstName *string `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string `json:"last_name" binding:"omitempty,max=150"`
	Phone     *string `json:"phone" binding:"omitempty,phone"`
	BirthDate *string `json:"birth_date" binding:"omitempty,isodate"`
}

type UserDTO struct {
	ID        uint          `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	UserType  identity.Role `json:"user_type"`
	Phone     string        `json:"phone"`
	BirthDate *string       `json:"birth_date"`
	CreatedAt time.Time     `json:"created_at"`
}

type AuthResponse struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

func NewUserDTO(u *models.User) UserDTO {
	out := UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		UserType:  u.UserType,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
	if u.BirthDate != nil {
		s := timezone.FormatDate(*u.BirthDate)
		out.BirthDate = &s
	}
	return out
}

func NewUserDTOs(users []models.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUserDTO(&users[i]))
	}
	return out
}
