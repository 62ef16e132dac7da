// Package qrcode renders and parses the QR codes bakeries print for customers.
package qrcode

import (
	"encoding/json"
	"strings"

	"bakeandtaste/config"
	"bakeandtaste/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	payloadTypeBakery = "bakery"
	defaultSize       = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Payload is the JSON encoded into a bakery QR code.
type Payload struct {
	BakeryID string `json:"bakery_id"`
	Type     string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
	}
}

// parseRecoveryLevel accepts the single-letter or spelled-out level name. Unknown values mean medium.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateBakeryQR renders a PNG QR code pointing at a bakery.
func (s *qrcodeService) GenerateBakeryQR(bakeryID uuid.UUID) ([]byte, error) {
	jsonData, err := json.Marshal(Payload{
		BakeryID: bakeryID.String(),
		Type:     payloadTypeBakery,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseBakeryQR parses a scanned bakery QR payload and returns the bakery ID.
func (s *qrcodeService) ParseBakeryQR(qrData string) (uuid.UUID, error) {
	var data Payload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != payloadTypeBakery {
		return uuid.Nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	bakeryID, err := uuid.Parse(data.BakeryID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse bakery ID")
	}

	return bakeryID, nil
}
