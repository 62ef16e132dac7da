package entity

// Role represents the marketplace side a profile acts on.
type Role string

const (
	// RoleCustomer browses cakes and places orders.
	RoleCustomer Role = "customer"
	// RoleSeller runs a bakery and fulfils orders.
	RoleSeller Role = "seller"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller:
		return true
	default:
		return false
	}
}

// RoleOrDefault returns r when it is valid, RoleCustomer when r is empty.
// The second result is false for a non-empty unknown role.
func RoleOrDefault(r Role) (Role, bool) {
	if r == "" {
		return RoleCustomer, true
	}

	return r, r.IsValid()
}
