package usecase

import (
	"context"

	"bakeandtaste/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BakeryInput holds the editable fields of a bakery.
type BakeryInput struct {
	Name        string
	Description string
	Address     string
	Phone       string
	ImageURL    string
}

// CakeInput holds the editable fields of a cake. Updates replace every field.
type CakeInput struct {
	Name             string
	Description      string
	Price            decimal.Decimal
	Category         string
	Allergens        string // Comma separated labels.
	ImageURL         string
	Available        bool
	PreparationHours int
}

// CatalogUsecase manages bakeries and the cakes they sell.
// Caller IDs are profile IDs.
type CatalogUsecase interface {
	// ListAvailableCakes returns orderable cakes with their bakery, newest first.
	ListAvailableCakes(ctx context.Context, filter entity.CakeFilter) ([]*entity.CakeListing, error)

	// GetAvailableCake returns ErrCakeNotFound for missing and unavailable cakes alike.
	GetAvailableCake(ctx context.Context, cakeID uuid.UUID) (*entity.CakeListing, error)

	GetBakery(ctx context.Context, bakeryID uuid.UUID) (*entity.Bakery, error)

	// GenerateBakeryQR renders the share QR code of an existing bakery.
	GenerateBakeryQR(ctx context.Context, bakeryID uuid.UUID) ([]byte, error)

	// GetOwnBakery returns the seller's bakery, or nil when none was created yet.
	GetOwnBakery(ctx context.Context, sellerID uuid.UUID) (*entity.Bakery, error)

	// UpsertBakery creates the seller's bakery or updates it in place.
	UpsertBakery(ctx context.Context, sellerID uuid.UUID, input *BakeryInput) (*entity.Bakery, error)

	ListOwnCakes(ctx context.Context, callerID, bakeryID uuid.UUID) ([]*entity.Cake, error)
	CreateCake(ctx context.Context, callerID, bakeryID uuid.UUID, input *CakeInput) (*entity.Cake, error)
	UpdateCake(ctx context.Context, callerID, cakeID uuid.UUID, input *CakeInput) (*entity.Cake, error)
	DeleteCake(ctx context.Context, callerID, cakeID uuid.UUID) error
	SetAvailability(ctx context.Context, callerID, cakeID uuid.UUID, available bool) (*entity.Cake, error)
}
