package utils_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaravmahajanofficial/supplements-storefront/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type promoInput struct {
	Code string `json:"code" validate:"required"`
}

func TestParseAndValidate(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		ok     bool
		status int
		code   string
	}{
		{name: "Success - Valid Body", body: `{"code":"SAVE10"}`, ok: true, status: http.StatusOK},
		{name: "Failure - Empty Body", body: "", status: http.StatusBadRequest, code: "BAD_REQUEST"},
		{name: "Failure - Malformed JSON", body: `{"code":`, status: http.StatusBadRequest, code: "BAD_REQUEST"},
		{name: "Failure - Missing Field", body: `{}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{name: "Failure - Oversized Body", body: `{"code":"` + strings.Repeat("A", utils.MaxJSONBody) + `"}`, status: http.StatusRequestEntityTooLarge, code: "PAYLOAD_TOO_LARGE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/promo", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			var dest promoInput

			// Act
			ok := utils.ParseAndValidate(req, rec, &dest, validator.New())

			// Assert
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.status, rec.Code)

			if tc.ok {
				assert.Equal(t, "SAVE10", dest.Code)
			} else {
				assert.Contains(t, rec.Body.String(), `"code":"`+tc.code+`"`)
			}
		})
	}
}

func TestPageParams(t *testing.T) {
	tests := []struct {
		query    string
		page     int
		pageSize int
	}{
		{query: "", page: 1, pageSize: 20},
		{query: "page=4&pageSize=12", page: 4, pageSize: 12},
		{query: "page=0&pageSize=-3", page: 1, pageSize: 20},
		{query: "page=abc&pageSize=5000", page: 1, pageSize: 100},
	}

	for _, tc := range tests {
		t.Run("Success - "+tc.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products?"+tc.query, nil)

			page, pageSize := utils.PageParams(req, 20, 100)

			assert.Equal(t, tc.page, page)
			assert.Equal(t, tc.pageSize, pageSize)
		})
	}
}
