// Command seedadmin creates or updates the admin account from ADMIN_USERNAME,
// ADMIN_EMAIL and ADMIN_PASSWORD. Registration never creates admins.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barbershop-booking/internal/db"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	if cfg.AdminPassword == "" {
		log.Fatal().Msg("ADMIN_PASSWORD is required")
	}
	if problem := validators.PasswordProblem(cfg.AdminPassword); problem != "" {
		log.Fatal().Str("reason", problem).Msg("ADMIN_PASSWORD rejected")
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt error")
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect error")
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: hash,
		UserType:     identity.RoleAdmin,
		IsActive:     true,
	}

	err = db.WithContext(context.Background()).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "username"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "password_hash", "user_type", "is_active", "updated_at"}),
		}).
		Create(&admin).Error
	if err != nil {
		log.Fatal().Err(err).Msg("upsert admin")
	}

	log.Info().Str("username", admin.Username).Msg("admin account ready")
}
