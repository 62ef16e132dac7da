package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxPreparationHours bounds a cake's lead time to one year.
const MaxPreparationHours = 24 * 365

// MaxCakePrice is the largest price a numeric(10,2) column holds.
var MaxCakePrice = decimal.RequireFromString("99999999.99")

// Cake is a catalog item sold by a bakery.
type Cake struct {
	ID               uuid.UUID
	BakeryID         uuid.UUID
	Name             string
	Description      string
	Price            decimal.Decimal // Unit price, strictly positive.
	Category         string
	Allergens        []string
	ImageURL         string
	Available        bool // Only available cakes can be ordered.
	PreparationHours int  // Lead time, never negative.
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CakeListing is an available cake together with the public fields of its bakery.
type CakeListing struct {
	Cake
	BakeryName    string
	BakeryAddress string
}

// CakeFilter narrows the public catalog listing.
type CakeFilter struct {
	Category string
	BakeryID uuid.UUID // uuid.Nil means every bakery.
	Page     Page
}

// ParseAllergens splits free-text allergen labels on commas.
// Tokens are trimmed, empty tokens dropped and duplicates removed keeping first occurrence.
func ParseAllergens(raw string) []string {
	parts := strings.Split(raw, ",")
	allergens := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		key := strings.ToLower(token)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		allergens = append(allergens, token)
	}

	return allergens
}
