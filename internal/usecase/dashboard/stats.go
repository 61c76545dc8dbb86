package dashboard

import (
	"context"
	"fmt"

	appointment "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type Repository interface {
	CountUsers(ctx context.Context, role *identity.Role) (int64, error)
	CountAppointments(ctx context.Context, f appointment.ListFilter) (int64, error)
}

// Stats maps a counter name to its value. The key set depends on the
// caller's role.
type Stats map[string]int64

type GetStats struct {
	repo  Repository
	clock timezone.Clock
}

func NewGetStats(repo Repository, clock timezone.Clock) *GetStats {
	return &GetStats{repo: repo, clock: clock}
}

type counter struct {
	key   string
	count func(ctx context.Context) (int64, error)
}

func (uc *GetStats) Execute(ctx context.Context, caller identity.Principal) (Stats, error) {
	var counters []counter
	switch caller.Role {
	case identity.RoleAdmin:
		counters = uc.adminCounters()
	case identity.RoleBarber:
		counters = uc.barberCounters(caller.UserID)
	case identity.RoleClient:
		counters = uc.clientCounters(caller.UserID)
	default:
		return nil, fmt.Errorf("dashboard: unsupported role %s", caller.Role)
	}

	out := make(Stats, len(counters))
	for _, c := range counters {
		n, err := c.count(ctx)
		if err != nil {
			return nil, fmt.Errorf("dashboard %s: %w", c.key, err)
		}
		out[c.key] = n
	}
	return out, nil
}

func (uc *GetStats) users(role *identity.Role) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) { return uc.repo.CountUsers(ctx, role) }
}

func (uc *GetStats) appointments(f appointment.ListFilter) func(context.Context) (int64, error) {
	return func(ctx context.Context) (int64, error) { return uc.repo.CountAppointments(ctx, f) }
}

func (uc *GetStats) adminCounters() []counter {
	clients, barbers := identity.RoleClient, identity.RoleBarber
	return []counter{
		{"total_users", uc.users(nil)},
		{"total_clients", uc.users(&clients)},
		{"total_barbers", uc.users(&barbers)},
		{"total_appointments", uc.appointments(appointment.ListFilter{})},
		{"pending_appointments", uc.appointments(appointment.ListFilter{
			Statuses: []appointment.Status{appointment.StatusScheduled},
		})},
	}
}

func (uc *GetStats) barberCounters(id uint) []counter {
	today := timezone.Today(uc.clock)
	return []counter{
		{"total_appointments", uc.appointments(appointment.ListFilter{BarberID: &id})},
		{"today_appointments", uc.appointments(appointment.ListFilter{BarberID: &id, Date: &today})},
		{"pending_appointments", uc.appointments(appointment.ListFilter{
			BarberID: &id,
			Statuses: []appointment.Status{appointment.StatusScheduled},
		})},
		{"completed_appointments", uc.appointments(appointment.ListFilter{
			BarberID: &id,
			Statuses: []appointment.Status{appointment.StatusCompleted},
		})},
	}
}

func (uc *GetStats) clientCounters(id uint) []counter {
	today := timezone.Today(uc.clock)
	return []counter{
		{"total_appointments", uc.appointments(appointment.ListFilter{ClientID: &id})},
		{"upcoming_appointments", uc.appointments(appointment.ListFilter{
			ClientID: &id,
			FromDate: &today,
			Statuses: []appointment.Status{appointment.StatusScheduled, appointment.StatusConfirmed},
		})},
		{"past_appointments", uc.appointments(appointment.ListFilter{ClientID: &id, ToDate: &today})},
	}
}
