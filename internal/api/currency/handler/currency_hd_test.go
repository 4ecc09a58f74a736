package currencyHandler

import (
	currencyService "OmniCalc/internal/api/currency/service"
	"OmniCalc/internal/middleware"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	mw := middleware.New(logger)

	service := currencyService.NewCurrencyService(logger, nil)

	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())
	New(logger, validator.New(), mw, service).Start(app)

	return app
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestGetCurrencies(t *testing.T) {
	resp, err := setupApp().Test(httptest.NewRequest(http.MethodGet, "/api/currencies", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode(t, resp)

	currencies, ok := body["currencies"].([]interface{})
	require.True(t, ok)
	assert.Len(t, currencies, 10)

	first := currencies[0].(map[string]interface{})
	assert.Equal(t, "USD", first["code"])
	assert.Equal(t, 1.0, first["rate"])
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		status  int
		message string
		result  float64
	}{
		{"success", `{"amount":100,"from":"USD","to":"EUR"}`, http.StatusOK, "", 85},
		{"unsupported", `{"amount":100,"from":"USD","to":"XYZ"}`, http.StatusBadRequest, "Currency not supported", 0},
		{"invalid json", `{"amount":`, http.StatusBadRequest, "amount, from and to are required", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/currency/convert", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := setupApp().Test(req, -1)
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			body := decode(t, resp)
			if tt.message != "" {
				assert.Equal(t, tt.message, body["message"])
				return
			}
			assert.InDelta(t, tt.result, body["result"], 1e-9)
		})
	}
}

func TestConvert_ValidationError(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/currency/convert", strings.NewReader(`{"amount":-5,"from":"USD","to":"EUR"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := setupApp().Test(req, -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode(t, resp)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}
