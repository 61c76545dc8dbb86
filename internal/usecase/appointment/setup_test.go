package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Monday 2026-10-19, 08:00 UTC.
var fixedNow = time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fixture struct {
	store   *memstore.Store
	locker  *memstore.Locker
	trail   *memstore.AuditTrail
	client  identity.Principal
	barber  identity.Principal
	barber2 identity.Principal
	admin   identity.Principal
	profile *models.BarberProfile
	service *models.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memstore.New()

	mk := func(name string, role identity.Role) identity.Principal {
		u := &models.User{Username: name, FirstName: name, UserType: role, IsActive: true}
		require.NoError(t, s.CreateUser(ctx, u))
		return identity.Principal{UserID: u.ID, Role: role}
	}

	f := &fixture{
		store:  s,
		locker: memstore.NewLocker(),
		trail:  &memstore.AuditTrail{},
	}
	f.client = mk("carla", identity.RoleClient)
	f.barber = mk("bruno", identity.RoleBarber)
	f.barber2 = mk("beto", identity.RoleBarber)
	f.admin = mk("root", identity.RoleAdmin)

	f.profile = &models.BarberProfile{
		UserID:     f.barber.UserID,
		IsApproved: true,
		WorkingHours: []models.WorkingHours{
			{Weekday: 0, StartTime: "09:00", EndTime: "12:00"},
		},
	}
	require.NoError(t, s.CreateProfile(ctx, f.profile))

	f.service = &models.Service{Name: "Haircut", Duration: 30, Price: decimal.RequireFromString("25.00"), IsActive: true}
	require.NoError(t, s.CreateService(ctx, f.service))
	return f
}

func (f *fixture) create() *CreateAppointment {
	return NewCreateAppointment(f.store, f.locker, f.trail, fixedClock)
}

func (f *fixture) book(t *testing.T, date, at string) *models.Appointment {
	t.Helper()
	ap, err := f.create().Execute(context.Background(), CreateAppointmentInput{
		Caller:    f.client,
		BarberID:  f.barber.UserID,
		ServiceID: f.service.ID,
		Date:      date,
		Time:      at,
	})
	require.NoError(t, err)
	return ap
}
