package impl

import (
	"bytes"
	"io"
	"log/slog"

	"planner/config"
	"planner/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	return cfg
}

func validRequest() *entity.RegistrationRequest {
	return &entity.RegistrationRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "longpass1",
		ConfirmPassword: "longpass1",
	}
}
