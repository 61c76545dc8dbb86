package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

func TestAuthorizeCancel(t *testing.T) {
	ap := &models.Appointment{ClientID: 30, BarberID: 20}

	assert.NoError(t, AuthorizeCancel(identity.Principal{UserID: 30, Role: identity.RoleClient}, ap))
	assert.NoError(t, AuthorizeCancel(identity.Principal{UserID: 20, Role: identity.RoleBarber}, ap))
	assert.NoError(t, AuthorizeCancel(identity.Principal{UserID: 1, Role: identity.RoleAdmin}, ap))

	err := AuthorizeCancel(identity.Principal{UserID: 31, Role: identity.RoleClient}, ap)
	assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
	assert.Error(t, AuthorizeCancel(identity.Anonymous(), ap))
}

func TestAuthorizeBarberAction(t *testing.T) {
	ap := &models.Appointment{ClientID: 30, BarberID: 20}

	assert.NoError(t, AuthorizeBarberAction(identity.Principal{UserID: 20, Role: identity.RoleBarber}, ap, "confirm"))

	err := AuthorizeBarberAction(identity.Principal{UserID: 1, Role: identity.RoleAdmin}, ap, "confirm")
	assert.True(t, httperr.IsBusiness(err, "barber_only"))

	err = AuthorizeBarberAction(identity.Principal{UserID: 30, Role: identity.RoleClient}, ap, "complete")
	assert.True(t, httperr.IsBusiness(err, "barber_only"))

	err = AuthorizeBarberAction(identity.Principal{UserID: 21, Role: identity.RoleBarber}, ap, "complete")
	assert.True(t, httperr.IsBusiness(err, "not_your_appointment"))
}

func TestCanViewAndScope(t *testing.T) {
	ap := &models.Appointment{ClientID: 30, BarberID: 20}
	barber := identity.Principal{UserID: 20, Role: identity.RoleBarber}
	other := identity.Principal{UserID: 31, Role: identity.RoleClient}

	assert.True(t, CanView(barber, ap))
	assert.False(t, CanView(other, ap))
	assert.False(t, CanView(identity.Anonymous(), ap))

	f := ScopeFilter(barber, ListFilter{})
	if assert.NotNil(t, f.BarberID) {
		assert.Equal(t, uint(20), *f.BarberID)
	}
	assert.Nil(t, f.ClientID)

	f = ScopeFilter(identity.Principal{UserID: 1, Role: identity.RoleAdmin}, ListFilter{})
	assert.Nil(t, f.BarberID)
	assert.Nil(t, f.ClientID)
}
