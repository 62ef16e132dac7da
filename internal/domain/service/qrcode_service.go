package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBakeryQR renders a PNG QR code that points to a bakery.
	GenerateBakeryQR(bakeryID uuid.UUID) ([]byte, error)

	// ParseBakeryQR parses the payload of a bakery QR code and returns the bakery ID.
	ParseBakeryQR(qrData string) (uuid.UUID, error)
}
