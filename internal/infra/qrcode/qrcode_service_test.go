package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"bakeandtaste/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(size int, level string) *qrcodeService {
	return NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	}).(*qrcodeService)
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	srv := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultSize, srv.size)
	assert.Equal(t, qrcode.Medium, srv.errorCorrectionLevel)
}

func TestQRCodeService_GenerateBakeryQR(t *testing.T) {
	srv := newService(256, "M")

	qrBytes, err := srv.GenerateBakeryQR(uuid.New())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_ParseBakeryQR_RoundTripPayload(t *testing.T) {
	srv := newService(256, "M")
	bakeryID := uuid.New()

	payload, err := json.Marshal(Payload{BakeryID: bakeryID.String(), Type: "bakery"})
	require.NoError(t, err)

	got, err := srv.ParseBakeryQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, bakeryID, got)
}

func TestQRCodeService_ParseBakeryQR_Errors(t *testing.T) {
	srv := newService(256, "M")

	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"not json", "not-json", "failed to unmarshal QR code data"},
		{"wrong type", `{"bakery_id":"` + uuid.NewString() + `","type":"subscription"}`, "invalid QR code type"},
		{"bad id", `{"bakery_id":"nope","type":"bakery"}`, "failed to parse bakery ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := srv.ParseBakeryQR(tt.data)
			require.Error(t, err)
			assert.Equal(t, uuid.Nil, id)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
