package staff

import "errors"

var ErrInvalidRole = errors.New("invalid staff role")

// Role of an authenticated operator. Visitors never authenticate.
type Role string

const (
	RoleDoor  Role = "door"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDoor, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

var hierarchy = map[Role]int{
	RoleDoor:  1,
	RoleAdmin: 2,
}

// AtLeast reports whether r grants everything min grants.
func (r Role) AtLeast(min Role) bool {
	have, ok := hierarchy[r]
	want, okMin := hierarchy[min]
	return ok && okMin && have >= want
}
