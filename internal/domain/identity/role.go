package identity

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role is the closed set of account types. The zero value is not a valid
// role and is rejected by ParseRole and Value.
type Role int

const (
	RoleClient Role = iota + 1
	RoleBarber
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleClient: "client",
	RoleBarber: "barber",
	RoleAdmin:  "admin",
}

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "client":
		return RoleClient, nil
	case "barber":
		return RoleBarber, nil
	case "admin":
		return RoleAdmin, nil
	}
	return 0, fmt.Errorf("identity: unknown role %q", s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("identity: cannot marshal %s", r)
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Value stores the role as its lowercase name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("identity: cannot store %s", r)
	}
	return r.String(), nil
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	case nil:
		*r = 0
		return nil
	}
	return fmt.Errorf("identity: cannot scan %T into Role", src)
}
