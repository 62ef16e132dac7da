package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bakery is a seller's shop front. A seller owns at most one.
type Bakery struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // Seller profile that owns the bakery.
	Name        string
	Description string
	Address     string
	Phone       string
	ImageURL    string // Opaque image reference, never fetched by the service.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether profileID owns the bakery.
func (b *Bakery) IsOwnedBy(profileID uuid.UUID) bool {
	return b != nil && b.OwnerID == profileID
}
