package workforce

import (
	"fmt"
	"strings"
)

// Role is stored as a small integer in users.role.
type Role int

const (
	RoleEmployee Role = 1
	RoleAdmin    Role = 2
	RoleVendor   Role = 3
)

var Roles = []Role{RoleEmployee, RoleAdmin, RoleVendor}

func (r Role) Valid() bool {
	switch r {
	case RoleEmployee, RoleAdmin, RoleVendor:
		return true
	}
	return false
}

func (r Role) String() string {
	switch r {
	case RoleEmployee:
		return "employee"
	case RoleAdmin:
		return "admin"
	case RoleVendor:
		return "vendor"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if strings.EqualFold(s, r.String()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}
