package appointment

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// CanView: admins see everything, barbers their own agenda, clients their
// own bookings.
func CanView(p identity.Principal, ap *models.Appointment) bool {
	switch {
	case p.Is(identity.RoleAdmin):
		return true
	case p.Is(identity.RoleBarber):
		return ap.BarberID == p.UserID
	case p.Is(identity.RoleClient):
		return ap.ClientID == p.UserID
	}
	return false
}

// AuthorizeCancel allows the appointment's client, its barber or an admin.
func AuthorizeCancel(p identity.Principal, ap *models.Appointment) error {
	if p.IsAdmin() || (p.IsAuthenticated() && (ap.ClientID == p.UserID || ap.BarberID == p.UserID)) {
		return nil
	}
	return httperr.ErrForbidden("not_appointment_party",
		"You do not have permission to cancel this appointment")
}

// AuthorizeBarberAction allows only the barber holding the appointment.
func AuthorizeBarberAction(p identity.Principal, ap *models.Appointment, action string) error {
	if !p.Is(identity.RoleBarber) {
		return httperr.ErrForbidden("barber_only", "Only barbers can "+action+" appointments")
	}
	if ap.BarberID != p.UserID {
		return httperr.ErrForbidden("not_your_appointment", "You can only "+action+" your own appointments")
	}
	return nil
}

// ScopeFilter restricts a listing to what p may see.
func ScopeFilter(p identity.Principal, f ListFilter) ListFilter {
	id := p.UserID
	switch {
	case p.Is(identity.RoleBarber):
		f.BarberID = &id
	case p.Is(identity.RoleClient):
		f.ClientID = &id
	}
	return f
}
