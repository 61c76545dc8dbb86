package barber

import (
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// CanView: admins see every profile, barbers only their own, everyone else
// only approved ones.
func CanView(p identity.Principal, profile *models.BarberProfile) bool {
	switch {
	case p.Is(identity.RoleAdmin):
		return true
	case p.Is(identity.RoleBarber):
		return profile.UserID == p.UserID
	default:
		return profile.IsApproved
	}
}

// IsBookable reports whether appointments can be made with the profile's
// barber. A nil profile means the barber never created one.
func IsBookable(profile *models.BarberProfile) bool {
	return profile != nil && profile.IsApproved
}

// CanEdit: the owning barber or an admin.
func CanEdit(p identity.Principal, profile *models.BarberProfile) bool {
	return p.IsAdmin() || (p.Is(identity.RoleBarber) && profile.UserID == p.UserID)
}
