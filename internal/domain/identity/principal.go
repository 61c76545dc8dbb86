package identity

// Principal is the authenticated caller handed to every use case.
// A zero Principal is an anonymous caller.
type Principal struct {
	UserID uint
	Role   Role
}

func Anonymous() Principal { return Principal{} }

func (p Principal) IsAuthenticated() bool { return p.UserID != 0 && p.Role.Valid() }

func (p Principal) Is(role Role) bool { return p.IsAuthenticated() && p.Role == role }

func (p Principal) IsAdmin() bool { return p.Is(RoleAdmin) }

// UserFilter narrows user listings. ClientsOfBarber keeps only clients that
// hold at least one appointment with that barber.
type UserFilter struct {
	ID              *uint
	ClientsOfBarber *uint
}
