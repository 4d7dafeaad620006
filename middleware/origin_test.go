package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameOrigin(t *testing.T) {
	app := fiber.New()
	app.Use(SameOrigin())
	app.All("/notes", func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		name           string
		method         string
		headers        map[string]string
		expectedStatus int
	}{
		{
			name:           "Read from another site is allowed",
			method:         http.MethodGet,
			headers:        map[string]string{"Sec-Fetch-Site": "cross-site", "Origin": "https://evil.example"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Post without browser headers",
			method:         http.MethodPost,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Post from own page",
			method:         http.MethodPost,
			headers:        map[string]string{"Sec-Fetch-Site": "same-origin", "Origin": "http://example.com"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Post flagged cross-site",
			method:         http.MethodPost,
			headers:        map[string]string{"Sec-Fetch-Site": "cross-site"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Post from sibling port",
			method:         http.MethodPost,
			headers:        map[string]string{"Sec-Fetch-Site": "same-site"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Delete with foreign Origin only",
			method:         http.MethodDelete,
			headers:        map[string]string{"Origin": "https://evil.example"},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Opaque origin from sandboxed frame",
			method:         http.MethodPut,
			headers:        map[string]string{"Origin": "null"},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://example.com/notes", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}
