package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Role is a capability carried by an API key
type Role uint8

const (
	RoleAdmin Role = 1 << iota
	RoleCheckoutStaff
	RoleStudentStorageStaff
)

// String returns the wire name of the role
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return RoleNameAdmin
	case RoleCheckoutStaff:
		return RoleNameCheckoutStaff
	case RoleStudentStorageStaff:
		return RoleNameStudentStorageStaff
	default:
		return fmt.Sprintf("role(%d)", uint8(r))
	}
}

// ParseRole parses a role name as written in config and fixture files
func ParseRole(s string) (Role, error) {
	switch foldName(s) {
	case RoleNameAdmin:
		return RoleAdmin, nil
	case RoleNameCheckoutStaff, "checkout":
		return RoleCheckoutStaff, nil
	case RoleNameStudentStorageStaff, "storage_staff", "storage":
		return RoleStudentStorageStaff, nil
	default:
		return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
	}
}

// RoleSet is a set of roles
type RoleSet uint8

// NewRoleSet builds a set from the given roles
func NewRoleSet(roles ...Role) RoleSet {
	var rs RoleSet
	for _, r := range roles {
		rs |= RoleSet(r)
	}
	return rs
}

// Has reports whether the set contains r
func (rs RoleSet) Has(r Role) bool {
	return rs&RoleSet(r) != 0
}

// Union returns the roles held by either set
func (rs RoleSet) Union(other RoleSet) RoleSet {
	return rs | other
}

// Satisfies reports whether the set meets a requirement of any one of required.
// Admin satisfies every requirement. An empty requirement is met by any non-empty set.
func (rs RoleSet) Satisfies(required ...Role) bool {
	if rs == 0 {
		return false
	}
	if rs.Has(RoleAdmin) || len(required) == 0 {
		return true
	}
	for _, r := range required {
		if rs.Has(r) {
			return true
		}
	}
	return false
}

// Roles lists the roles in the set in a stable order
func (rs RoleSet) Roles() []Role {
	var out []Role
	for _, r := range []Role{RoleAdmin, RoleCheckoutStaff, RoleStudentStorageStaff} {
		if rs.Has(r) {
			out = append(out, r)
		}
	}
	return out
}

// AuthLevel is the ordered authorization level stored on a user
type AuthLevel int

const (
	AuthLevelStudent AuthLevel = iota
	AuthLevelCheckoutStaff
	AuthLevelStorageStaff
	AuthLevelAdmin
)

// Rank orders levels. Checkout and storage staff are peers.
func (l AuthLevel) Rank() int {
	switch l {
	case AuthLevelCheckoutStaff, AuthLevelStorageStaff:
		return 1
	case AuthLevelAdmin:
		return 2
	default:
		return 0
	}
}

// AtLeast reports whether l ranks at or above other
func (l AuthLevel) AtLeast(other AuthLevel) bool {
	return l.Rank() >= other.Rank()
}

// Roles returns the role capabilities granted by the level
func (l AuthLevel) Roles() RoleSet {
	switch l {
	case AuthLevelCheckoutStaff:
		return NewRoleSet(RoleCheckoutStaff)
	case AuthLevelStorageStaff:
		return NewRoleSet(RoleStudentStorageStaff)
	case AuthLevelAdmin:
		return NewRoleSet(RoleAdmin)
	default:
		return 0
	}
}

// IsValid reports whether l is a known level
func (l AuthLevel) IsValid() bool {
	return l >= AuthLevelStudent && l <= AuthLevelAdmin
}

func (l AuthLevel) String() string {
	switch l {
	case AuthLevelStudent:
		return AuthLevelNameStudent
	case AuthLevelCheckoutStaff:
		return AuthLevelNameCheckoutStaff
	case AuthLevelStorageStaff:
		return AuthLevelNameStorageStaff
	case AuthLevelAdmin:
		return AuthLevelNameAdmin
	default:
		return fmt.Sprintf("auth_level(%d)", int(l))
	}
}

// ParseAuthLevel parses a level name, ignoring case
func ParseAuthLevel(s string) (AuthLevel, error) {
	switch foldName(s) {
	case AuthLevelNameStudent, "base", "user":
		return AuthLevelStudent, nil
	case AuthLevelNameCheckoutStaff, "checkout", "checkoutstaff":
		return AuthLevelCheckoutStaff, nil
	case AuthLevelNameStorageStaff, "storage", "storagestaff", "student_storage_staff":
		return AuthLevelStorageStaff, nil
	case AuthLevelNameAdmin:
		return AuthLevelAdmin, nil
	default:
		return 0, fmt.Errorf("%w: unknown auth level %q", ErrInvalidInput, s)
	}
}

// MarshalText encodes the level by name
func (l AuthLevel) MarshalText() ([]byte, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: auth level %d", ErrInvalidInput, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name
func (l *AuthLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseAuthLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// foldName normalises a user-supplied name. Casers carry state, so one is built per call.
func foldName(s string) string {
	return strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(s)), "-", "_")
}
