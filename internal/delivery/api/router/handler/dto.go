package handler

import (
	"time"

	"bakeandtaste/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProfileResponse is the public shape of a profile.
type ProfileResponse struct {
	ID          uuid.UUID   `json:"id"`
	Role        entity.Role `json:"role"`
	DisplayName string      `json:"display_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone,omitempty"`
	Address     string      `json:"address,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// AuthResponse is returned by sign up and sign in.
type AuthResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	Profile     *ProfileResponse `json:"profile"`
}

// BakeryResponse is the public shape of a bakery.
type BakeryResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Address     string    `json:"address,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CakeResponse is the public shape of a cake. Bakery fields are set on catalog listings.
type CakeResponse struct {
	ID               uuid.UUID       `json:"id"`
	BakeryID         uuid.UUID       `json:"bakery_id"`
	Name             string          `json:"name"`
	Description      string          `json:"description,omitempty"`
	Price            decimal.Decimal `json:"price"`
	Category         string          `json:"category,omitempty"`
	Allergens        []string        `json:"allergens"`
	ImageURL         string          `json:"image_url,omitempty"`
	Available        bool            `json:"available"`
	PreparationHours int             `json:"preparation_hours"`
	BakeryName       string          `json:"bakery_name,omitempty"`
	BakeryAddress    string          `json:"bakery_address,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// OrderResponse is the shape of an order. The embedded detail fields depend on who lists it.
type OrderResponse struct {
	ID                  uuid.UUID            `json:"id"`
	CustomerID          uuid.UUID            `json:"customer_id"`
	CakeID              uuid.UUID            `json:"cake_id"`
	BakeryID            uuid.UUID            `json:"bakery_id"`
	Quantity            int                  `json:"quantity"`
	TotalAmount         decimal.Decimal      `json:"total_amount"`
	DeliveryType        entity.DeliveryType  `json:"delivery_type"`
	DeliveryAddress     string               `json:"delivery_address,omitempty"`
	PreferredTime       *time.Time           `json:"preferred_time,omitempty"`
	SpecialInstructions string               `json:"special_instructions,omitempty"`
	Status              entity.OrderStatus   `json:"status"`
	PaymentStatus       entity.PaymentStatus `json:"payment_status"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`

	Cake     *OrderCakeInfo     `json:"cake,omitempty"`
	Bakery   *OrderBakeryInfo   `json:"bakery,omitempty"`
	Customer *OrderCustomerInfo `json:"customer,omitempty"`
}

// OrderCakeInfo is the cake as shown next to an order.
type OrderCakeInfo struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// OrderBakeryInfo is the bakery as shown to the customer.
type OrderBakeryInfo struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// OrderCustomerInfo is the customer as shown to the seller.
type OrderCustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

func toProfileResponse(p *entity.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:          p.ID,
		Role:        p.Role,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		Phone:       p.Phone,
		Address:     p.Address,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toBakeryResponse(b *entity.Bakery) *BakeryResponse {
	return &BakeryResponse{
		ID:          b.ID,
		OwnerID:     b.OwnerID,
		Name:        b.Name,
		Description: b.Description,
		Address:     b.Address,
		Phone:       b.Phone,
		ImageURL:    b.ImageURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toCakeResponse(c *entity.Cake) *CakeResponse {
	allergens := c.Allergens
	if allergens == nil {
		allergens = []string{}
	}

	return &CakeResponse{
		ID:               c.ID,
		BakeryID:         c.BakeryID,
		Name:             c.Name,
		Description:      c.Description,
		Price:            c.Price,
		Category:         c.Category,
		Allergens:        allergens,
		ImageURL:         c.ImageURL,
		Available:        c.Available,
		PreparationHours: c.PreparationHours,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toCakeListingResponse(l *entity.CakeListing) *CakeResponse {
	resp := toCakeResponse(&l.Cake)
	resp.BakeryName = l.BakeryName
	resp.BakeryAddress = l.BakeryAddress

	return resp
}

func toOrderResponse(o *entity.Order) *OrderResponse {
	return &OrderResponse{
		ID:                  o.ID,
		CustomerID:          o.CustomerID,
		CakeID:              o.CakeID,
		BakeryID:            o.BakeryID,
		Quantity:            o.Quantity,
		TotalAmount:         o.TotalAmount,
		DeliveryType:        o.DeliveryType,
		DeliveryAddress:     o.DeliveryAddress,
		PreferredTime:       o.PreferredTime,
		SpecialInstructions: o.SpecialInstructions,
		Status:              o.Status,
		PaymentStatus:       o.PaymentStatus,
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func toCustomerOrderResponse(v *entity.CustomerOrderView) *OrderResponse {
	resp := toOrderResponse(&v.Order)
	resp.Cake = &OrderCakeInfo{Name: v.CakeName, Price: v.CakePrice}
	resp.Bakery = &OrderBakeryInfo{Name: v.BakeryName, Address: v.BakeryAddress}

	return resp
}

func toBakeryOrderResponse(v *entity.BakeryOrderView) *OrderResponse {
	resp := toOrderResponse(&v.Order)
	resp.Cake = &OrderCakeInfo{Name: v.CakeName, Price: v.CakePrice}
	resp.Customer = &OrderCustomerInfo{Name: v.CustomerName, Email: v.CustomerEmail, Phone: v.CustomerPhone}

	return resp
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
