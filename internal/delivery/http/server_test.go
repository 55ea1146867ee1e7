package http

import (
	"io"
	"log/slog"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"planner/config"
	httpmiddleware "planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router"
	"planner/internal/delivery/http/router/handler"
	requestmiddleware "planner/internal/delivery/middleware"
	"planner/internal/infra/auth"
	"planner/internal/infra/persistence/memory"
	"planner/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParams(t *testing.T) HTTPParams {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.HTTP.MaxRequestBodySize = "1KB"

	directory := memory.NewUserDirectory()
	hasher, err := auth.NewPBKDF2HasherWithParams(10, 16, 64)
	require.NoError(t, err)

	return HTTPParams{
		Config: cfg,
		Logger: logger,
		RouterParams: router.RouterParams{
			CredentialHandler: handler.NewCredentialHandler(
				impl.NewRegistrationService(impl.RegistrationServiceParams{
					Directory: directory,
					Hasher:    hasher,
					Config:    cfg,
					Logger:    logger,
				}),
				impl.NewVerificationService(impl.VerificationServiceParams{
					Directory: directory,
					Hasher:    hasher,
					Logger:    logger,
				}),
			),
		},
		ErrorMiddleware:  httpmiddleware.NewErrorMiddleware(logger),
		LoggerMiddleware: httpmiddleware.NewLoggerMiddleware(logger, cfg),
		RequestID:        requestmiddleware.NewRequestIDMiddleware(logger),
	}
}

func TestNewEcho_Health(t *testing.T) {
	e := newEcho(newTestParams(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/health", nil))

	assert.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewEcho_EchoesClientRequestID(t *testing.T) {
	e := newEcho(newTestParams(t))

	req := httptest.NewRequest(stdhttp.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "trace-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get("X-Request-Id"))
}

func TestNewEcho_BodyLimit(t *testing.T) {
	e := newEcho(newTestParams(t))

	body := `{"username":"` + strings.Repeat("a", 2048) + `"}`
	req := httptest.NewRequest(stdhttp.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, stdhttp.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewEcho_RegisterThenLogin(t *testing.T) {
	e := newEcho(newTestParams(t))

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(stdhttp.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	rec := post("/auth/register", `{"username":"alice","email":"alice@example.com","password":"longpass1","confirmPassword":"longpass1"}`)
	require.Equal(t, stdhttp.StatusCreated, rec.Code)

	rec = post("/auth/login", `{"identifier":"alice@example.com","password":"longpass1"}`)
	assert.Equal(t, stdhttp.StatusOK, rec.Code)
}

func TestNewEcho_UnknownRoute(t *testing.T) {
	e := newEcho(newTestParams(t))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/nope", nil))

	assert.Equal(t, stdhttp.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
