package access_rules

import (
	"fmt"

	"github.com/Xenn-00/personal-meister/internal/rules"
)

// Role is closed: only the three constants below are valid.
type Role uint8

const (
	Employee Role = iota + 1
	Admin
	SuperAdmin
)

var roleNames = map[Role]string{
	Employee:   "employee",
	Admin:      "admin",
	SuperAdmin: "super_admin",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// Roles lists every role in ascending privilege.
func Roles() []Role {
	return []Role{Employee, Admin, SuperAdmin}
}

func ParseRole(s string) (Role, error) {
	for r, name := range roleNames {
		if name == s {
			return r, nil
		}
	}
	return 0, rules.Invalid("validation.role", fmt.Sprintf("unknown role %q", s))
}

// Actor is the authenticated caller of a single request.
type Actor struct {
	ID   string
	Role Role
}

func NewActor(id, role string) (Actor, error) {
	r, err := ParseRole(role)
	if err != nil {
		return Actor{}, err
	}
	if id == "" {
		return Actor{}, rules.Invalid("validation.required", "actor id is empty")
	}
	return Actor{ID: id, Role: r}, nil
}
