package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakeandtaste/config"
	deliverycontext "bakeandtaste/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"https://shop.example"}

	return cfg
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (code, requestID string) {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code, body.Meta.RequestID
}

func TestNewEcho_UnknownRouteRendersEnvelope(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	code, requestID := decodeError(t, rec)
	assert.Equal(t, "HTTP_ERROR", code)
	assert.NotEmpty(t, requestID)
	assert.Equal(t, requestID, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.POST("/sink", func(c echo.Context) error {
		_, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return err
		}

		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sink", strings.NewReader(strings.Repeat("a", 4096)))
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sink", strings.NewReader("small")))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewEcho_CORSExposesRequestID(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderOrigin, "https://shop.example")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://shop.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlExposeHeaders), deliverycontext.HeaderXRequestID)
}

func TestNewEcho_RecoversPanics(t *testing.T) {
	e := newEcho(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	e.GET("/boom", func(echo.Context) error { panic("boom") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
