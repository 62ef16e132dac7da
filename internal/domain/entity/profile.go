// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the marketplace identity of an authenticated principal.
// Exactly one profile exists per principal and its role never changes.
type Profile struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	PrincipalID uuid.UUID // The account this profile belongs to (unique).
	Role        Role      // Customer or seller, fixed at provisioning time.
	DisplayName string    // Name shown to the other side of the marketplace.
	Email       string    // Contact email, copied from the account.
	Phone       string    // Optional contact phone.
	Address     string    // Optional default address.
	CreatedAt   time.Time // Timestamp of when this profile was provisioned.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// IsSeller reports whether the profile may manage a bakery.
func (p *Profile) IsSeller() bool {
	return p != nil && p.Role == RoleSeller
}

// IsCustomer reports whether the profile may place orders.
func (p *Profile) IsCustomer() bool {
	return p != nil && p.Role == RoleCustomer
}
