package barber

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	barber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memstore"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type env struct {
	store  *memstore.Store
	trail  *memstore.AuditTrail
	barber identity.Principal
	other  identity.Principal
	client identity.Principal
	admin  identity.Principal
}

func setup(t *testing.T) *env {
	t.Helper()
	s := memstore.New()
	mk := func(name string, role identity.Role) identity.Principal {
		u := &models.User{Username: name, UserType: role}
		require.NoError(t, s.CreateUser(context.Background(), u))
		return identity.Principal{UserID: u.ID, Role: role}
	}
	return &env{
		store:  s,
		trail:  &memstore.AuditTrail{},
		barber: mk("bruno", identity.RoleBarber),
		other:  mk("beto", identity.RoleBarber),
		client: mk("carla", identity.RoleClient),
		admin:  mk("root", identity.RoleAdmin),
	}
}

func str(s string) *string { return &s }

func requireCode(t *testing.T, err error, kind httperr.Kind, code string) {
	t.Helper()
	be, ok := httperr.AsBusiness(err)
	require.True(t, ok, "expected business error, got %v", err)
	assert.Equal(t, kind, be.Kind)
	assert.Equal(t, code, be.Code)
}

func TestCreateProfile_ByBarber(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	p, err := NewCreateProfile(e.store, e.trail).Execute(ctx, e.barber, ProfileInput{
		Bio: str("Fades and beards"),
		WorkingHours: map[string]barber.DayInput{
			"monday": {Start: str("09:00"), End: str("17:00")},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, e.barber.UserID, p.UserID)
	assert.False(t, p.IsApproved)
	assert.True(t, p.IsAvailable)
	assert.Equal(t, "bruno", p.User.Username)
	require.Len(t, p.WorkingHours, 1)
	assert.Equal(t, "17:00", p.WorkingHours[0].EndTime)

	_, err = NewCreateProfile(e.store, e.trail).Execute(ctx, e.barber, ProfileInput{})
	requireCode(t, err, httperr.KindConflict, "profile_exists")
}

func TestCreateProfile_Rules(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	uc := NewCreateProfile(e.store, e.trail)

	_, err := uc.Execute(ctx, e.client, ProfileInput{})
	requireCode(t, err, httperr.KindForbidden, "barber_only")

	_, err = uc.Execute(ctx, e.admin, ProfileInput{})
	requireCode(t, err, httperr.KindValidation, "required")

	_, err = uc.Execute(ctx, e.admin, ProfileInput{UserID: &e.client.UserID})
	requireCode(t, err, httperr.KindValidation, "invalid_barber")
	be, _ := httperr.AsBusiness(err)
	assert.Equal(t, "user_id", be.Field)

	_, err = uc.Execute(ctx, e.barber, ProfileInput{WorkingHours: map[string]barber.DayInput{
		"monday": {Start: str("09:00")},
	}})
	requireCode(t, err, httperr.KindValidation, "incomplete_hours")

	p, err := uc.Execute(ctx, e.admin, ProfileInput{UserID: &e.other.UserID})
	require.NoError(t, err)
	assert.Equal(t, e.other.UserID, p.UserID)
}

func TestUpdateProfile(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	p, err := NewCreateProfile(e.store, e.trail).Execute(ctx, e.barber, ProfileInput{
		WorkingHours: map[string]barber.DayInput{
			"monday":  {Start: str("09:00"), End: str("12:00")},
			"tuesday": {Start: str("09:00"), End: str("12:00")},
		},
	})
	require.NoError(t, err)

	update := NewUpdateProfile(e.store, e.trail)

	_, err = update.Execute(ctx, e.other, p.ID, ProfileInput{Bio: str("x")})
	requireCode(t, err, httperr.KindNotFound, "profile_not_found")

	got, err := update.Execute(ctx, e.barber, p.ID, ProfileInput{Specialization: str("Beards")})
	require.NoError(t, err)
	assert.Equal(t, "Beards", got.Specialization)
	assert.Len(t, got.WorkingHours, 2, "hours untouched without working_hours")

	got, err = update.Execute(ctx, e.admin, p.ID, ProfileInput{WorkingHours: map[string]barber.DayInput{
		"friday": {Start: str("10:00"), End: str("18:00")},
	}})
	require.NoError(t, err)
	week := barber.HoursFromModels(got.WorkingHours)
	assert.Len(t, week, 1)
	_, ok := week.On(barber.Friday)
	assert.True(t, ok)

	// approval is not editable through update
	assert.False(t, got.IsApproved)
}

func TestUpdateProfile_ClientSeesApprovedButCannotEdit(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	p, err := NewCreateProfile(e.store, e.trail).Execute(ctx, e.barber, ProfileInput{})
	require.NoError(t, err)
	_, err = NewApproveProfile(e.store, e.trail).Execute(ctx, e.admin, p.ID)
	require.NoError(t, err)

	_, err = NewUpdateProfile(e.store, e.trail).Execute(ctx, e.client, p.ID, ProfileInput{Bio: str("hacked")})
	requireCode(t, err, httperr.KindForbidden, "not_profile_owner")
}

func TestApproveProfile(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	p, err := NewCreateProfile(e.store, e.trail).Execute(ctx, e.barber, ProfileInput{})
	require.NoError(t, err)

	approve := NewApproveProfile(e.store, e.trail)
	_, err = approve.Execute(ctx, e.barber, p.ID)
	requireCode(t, err, httperr.KindForbidden, "admin_only")

	got, err := approve.Execute(ctx, e.admin, p.ID)
	require.NoError(t, err)
	assert.True(t, got.IsApproved)

	_, err = approve.Execute(ctx, e.admin, 999)
	requireCode(t, err, httperr.KindNotFound, "profile_not_found")

	assert.Equal(t, []string{"barber_profile_created", "barber_profile_approved"}, e.trail.Actions())
}

func TestListAndGetProfiles(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	create := NewCreateProfile(e.store, e.trail)

	mine, err := create.Execute(ctx, e.barber, ProfileInput{})
	require.NoError(t, err)
	theirs, err := create.Execute(ctx, e.other, ProfileInput{})
	require.NoError(t, err)
	_, err = NewApproveProfile(e.store, e.trail).Execute(ctx, e.admin, theirs.ID)
	require.NoError(t, err)

	list := NewListProfiles(e.store)

	all, err := list.Execute(ctx, e.admin)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	public, err := list.Execute(ctx, identity.Anonymous())
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, theirs.ID, public[0].ID)

	own, err := list.Execute(ctx, e.barber)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, mine.ID, own[0].ID)

	_, err = NewGetProfile(e.store).Execute(ctx, e.client, mine.ID)
	requireCode(t, err, httperr.KindNotFound, "profile_not_found")

	got, err := NewMyProfile(e.store).Execute(ctx, e.barber)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	_, err = NewMyProfile(e.store).Execute(ctx, e.client)
	requireCode(t, err, httperr.KindForbidden, "barber_only")
}

func TestMyProfile_NoneYet(t *testing.T) {
	e := setup(t)
	_, err := NewMyProfile(e.store).Execute(context.Background(), e.barber)
	requireCode(t, err, httperr.KindNotFound, "profile_not_found")
}
