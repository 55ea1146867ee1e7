package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "planner/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	err := mw.Process(func(c echo.Context) error {
		seen = deliverycontext.RequestIDFromContext(c.Request().Context())
		assert.Equal(t, seen, deliverycontext.GetRequestID(c))
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("handled")

		return nil
	})(c)
	require.NoError(t, err)

	return rec, seen, &buf
}

func TestRequestIDMiddleware_ReusesClientID(t *testing.T) {
	rec, seen, logs := runRequestID(t, "client-abc-123")

	assert.Equal(t, "client-abc-123", seen)
	assert.Equal(t, "client-abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Contains(t, logs.String(), `"request_id":"client-abc-123"`)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	tests := map[string]string{
		"missing":       "",
		"too long":      strings.Repeat("a", maxRequestIDLength+1),
		"control chars": "abc\ninjected",
		"spaces":        "has space",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			rec, seen, _ := runRequestID(t, header)

			_, err := uuid.Parse(seen)
			assert.NoError(t, err)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}
