package order

import "strings"

// Role is the kind of actor requesting a status change. Authentication happens
// upstream; the role is trusted as given.
type Role int

const (
	RoleUnknown Role = iota
	RoleCustomer
	RoleRestaurantOwner
	// RoleDriver and RoleAdmin are parsed so they can be named in logs; the status
	// engine grants them nothing.
	RoleDriver
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleUnknown:         "Unknown",
	RoleCustomer:        "Customer",
	RoleRestaurantOwner: "Restaurant Owner",
	RoleDriver:          "Driver",
	RoleAdmin:           "Admin",
}

// ParseRole accepts the user-type names issued by the auth service ("Customer",
// "Restaurant Owner", "Driver", "Admin"), case-insensitively. Underscore and
// hyphen separators are tolerated for "Restaurant Owner".
func ParseRole(s string) Role {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)

	for role, name := range roleNames {
		if role != RoleUnknown && strings.ToLower(name) == norm {
			return role
		}
	}
	if norm == "restaurantowner" || norm == "owner" || norm == "vendor" {
		return RoleRestaurantOwner
	}
	return RoleUnknown
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return roleNames[RoleUnknown]
}
