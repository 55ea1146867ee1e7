// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the sign-up form body. Field rules are enforced by the
// registration usecase so that the first failing field is reported in a
// fixed order.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LoginRequest is the sign-in form body.
type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// IdentityResponse is the public view of a user. Hash and salt are never
// part of it.
type IdentityResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// CredentialHandler holds dependencies for the registration and sign-in handlers.
type CredentialHandler struct {
	registration usecase.RegistrationUsecase
	verification usecase.VerificationUsecase
}

// NewCredentialHandler is the constructor for CredentialHandler, injected by Fx.
func NewCredentialHandler(registration usecase.RegistrationUsecase, verification usecase.VerificationUsecase) *CredentialHandler {
	return &CredentialHandler{
		registration: registration,
		verification: verification,
	}
}

// Register handles the sign-up request.
func (h *CredentialHandler) Register(c echo.Context) error {
	var input RegisterRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.registration.Register(c.Request().Context(), &entity.RegistrationRequest{
		Username:        input.Username,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toIdentityResponse(output.Identity), "User registered successfully")
}

// Login handles the sign-in request.
func (h *CredentialHandler) Login(c echo.Context) error {
	var input LoginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.verification.Verify(c.Request().Context(), &entity.LoginAttempt{
		Identifier: input.Identifier,
		Password:   input.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(output.Identity), "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

func toIdentityResponse(identity *entity.Identity) *IdentityResponse {
	if identity == nil {
		return nil
	}

	return &IdentityResponse{
		ID:        identity.ID,
		Username:  identity.Username,
		Email:     identity.Email,
		CreatedAt: identity.CreatedAt,
	}
}
