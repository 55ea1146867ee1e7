package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/delivery/http/response"
	domainerrors "planner/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		m.respond(c, response.FromAppError(c, appErr))

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := fmt.Sprint(httpErr.Message)
		m.respond(c, response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""))

		return
	}

	// Anything else is a defect; keep the details in the log only.
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.respond(c, response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()))
}

func (m *ErrorMiddleware) respond(c echo.Context, err error) {
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Warn("Failed to write error response",
			slog.Any("error", err),
			slog.Int("status", http.StatusInternalServerError),
		)
	}
}
