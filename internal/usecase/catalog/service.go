package catalog

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Repository interface {
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetService(ctx context.Context, id uint) (*models.Service, error)
	CreateService(ctx context.Context, s *models.Service) error
	UpdateService(ctx context.Context, s *models.Service) error
}

// ServiceInput is a partial service; nil fields are left untouched.
type ServiceInput struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *decimal.Decimal
	IsActive    *bool
}

func (in ServiceInput) apply(s *models.Service) error {
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Duration != nil {
		s.Duration = *in.Duration
	}
	if in.Price != nil {
		s.Price = in.Price.Round(2)
	}
	if in.IsActive != nil {
		s.IsActive = *in.IsActive
	}

	switch {
	case s.Name == "":
		return httperr.ErrValidation("name", "required", "Name is required")
	case s.Duration <= 0:
		return httperr.ErrValidation("duration", "invalid_duration", "Duration must be a positive number of minutes")
	case s.Price.IsNegative():
		return httperr.ErrValidation("price", "invalid_price", "Price cannot be negative")
	}
	return nil
}

func requireAdmin(caller identity.Principal) error {
	if !caller.IsAdmin() {
		return httperr.ErrForbidden("admin_only", "Only admins can manage services")
	}
	return nil
}

func errServiceNotFound() error {
	return httperr.ErrNotFound("service_not_found", "Service not found")
}

type ListServices struct {
	repo Repository
}

func NewListServices(repo Repository) *ListServices {
	return &ListServices{repo: repo}
}

// Execute hides inactive services from everyone but admins.
func (uc *ListServices) Execute(ctx context.Context, caller identity.Principal) ([]models.Service, error) {
	return uc.repo.ListServices(ctx, !caller.IsAdmin())
}

type GetService struct {
	repo Repository
}

func NewGetService(repo Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, caller identity.Principal, id uint) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errServiceNotFound()
	}
	if err != nil {
		return nil, err
	}
	if !s.IsActive && !caller.IsAdmin() {
		return nil, errServiceNotFound()
	}
	return s, nil
}

type CreateService struct {
	repo  Repository
	audit audit.Recorder
}

func NewCreateService(repo Repository, audit audit.Recorder) *CreateService {
	return &CreateService{repo: repo, audit: audit}
}

func (uc *CreateService) Execute(ctx context.Context, caller identity.Principal, in ServiceInput) (*models.Service, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	s := &models.Service{IsActive: true}
	if err := in.apply(s); err != nil {
		return nil, err
	}
	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.UserID,
		Action:   "service_created",
		Entity:   "service",
		EntityID: &s.ID,
	})
	return s, nil
}

type UpdateService struct {
	repo  Repository
	audit audit.Recorder
}

func NewUpdateService(repo Repository, audit audit.Recorder) *UpdateService {
	return &UpdateService{repo: repo, audit: audit}
}

func (uc *UpdateService) Execute(ctx context.Context, caller identity.Principal, id uint, in ServiceInput) (*models.Service, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	s, err := uc.repo.GetService(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errServiceNotFound()
	}
	if err != nil {
		return nil, err
	}

	if err := in.apply(s); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &caller.UserID,
		Action:   "service_updated",
		Entity:   "service",
		EntityID: &s.ID,
	})
	return s, nil
}
