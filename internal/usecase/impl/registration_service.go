// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"

	"planner/config"
	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// registrationService implements the RegistrationUsecase interface.
type registrationService struct {
	directory         repository.UserDirectory
	hasher            service.CredentialHasher
	validate          *validator.Validate
	minUsernameLength int
	minPasswordLength int
	logger            *slog.Logger
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	Directory repository.UserDirectory
	Hasher    service.CredentialHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewRegistrationService is the constructor for registrationService.
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	minUsername, minPassword := config.DefaultMinUsernameLength, config.DefaultMinPasswordLength
	if params.Config != nil && params.Config.Registration != nil {
		if params.Config.Registration.MinUsernameLength > 0 {
			minUsername = params.Config.Registration.MinUsernameLength
		}
		if params.Config.Registration.MinPasswordLength > 0 {
			minPassword = params.Config.Registration.MinPasswordLength
		}
	}

	return &registrationService{
		directory:         params.Directory,
		hasher:            params.Hasher,
		validate:          validator.New(),
		minUsernameLength: minUsername,
		minPasswordLength: minPassword,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register runs the registration pipeline. Each step short-circuits.
func (srv *registrationService) Register(ctx context.Context, req *entity.RegistrationRequest) (*usecase.RegistrationResult, error) {
	if req == nil {
		return nil, domainerrors.NewValidationError("request", "is required")
	}

	if err := srv.validateRequest(req); err != nil {
		srv.log(ctx).Debug("Registration rejected by validation", slog.String("field", err.Field()))

		return nil, err
	}

	if err := srv.ensureAvailable(ctx, entity.LookupUsername, req.Username, domainerrors.ErrUsernameTaken); err != nil {
		return nil, err
	}
	if err := srv.ensureAvailable(ctx, entity.LookupEmail, req.Email, domainerrors.ErrEmailTaken); err != nil {
		return nil, err
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt", slog.Any("error", err))

		return nil, domainerrors.Ensure(err, domainerrors.ErrHashingFailed)
	}

	digest, err := srv.hasher.DeriveHash(req.Password, salt)
	if err != nil {
		srv.log(ctx).Error("Failed to derive password hash", slog.Any("error", err))

		return nil, domainerrors.Ensure(err, domainerrors.ErrHashingFailed)
	}

	record := &entity.UserCredentialRecord{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hex.EncodeToString(digest),
		Salt:         hex.EncodeToString(salt),
	}

	if err := srv.directory.Insert(ctx, record); err != nil {
		// A concurrent registration won the race after our pre-check passed.
		if domainerrors.IsKind(err, domainerrors.KindConflict) {
			srv.log(ctx).Info("Registration lost uniqueness race", slog.String("reason", err.Error()))

			return nil, err
		}

		srv.log(ctx).Error("Failed to insert user record", slog.String("username", req.Username), slog.Any("error", err))

		return nil, domainerrors.Ensure(err, domainerrors.ErrPersistenceFailed)
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", record.ID), slog.String("username", record.Username))

	return &usecase.RegistrationResult{Identity: record.Identity()}, nil
}

// validateRequest checks the preconditions in field order and reports the
// first violation only.
func (srv *registrationService) validateRequest(req *entity.RegistrationRequest) *domainerrors.FieldError {
	checks := []struct {
		field  string
		reason string
		check  func() error
	}{
		{
			field:  "username",
			reason: fmt.Sprintf("must be at least %d characters", srv.minUsernameLength),
			check: func() error {
				return srv.validate.Var(req.Username, fmt.Sprintf("min=%d", srv.minUsernameLength))
			},
		},
		{
			field:  "email",
			reason: "must be a valid email address",
			check:  func() error { return srv.validate.Var(req.Email, "required,email") },
		},
		{
			field:  "password",
			reason: fmt.Sprintf("must be at least %d characters", srv.minPasswordLength),
			check: func() error {
				return srv.validate.Var(req.Password, fmt.Sprintf("min=%d", srv.minPasswordLength))
			},
		},
		{
			field:  "confirmPassword",
			reason: "must match password",
			check:  func() error { return srv.validate.VarWithValue(req.ConfirmPassword, req.Password, "eqcsfield") },
		},
	}

	for _, c := range checks {
		if err := c.check(); err != nil {
			return domainerrors.NewValidationError(c.field, c.reason)
		}
	}

	return nil
}

// ensureAvailable is an early exit; the directory's unique constraint is
// what actually guarantees uniqueness.
func (srv *registrationService) ensureAvailable(ctx context.Context, field entity.LookupField, value string, taken *domainerrors.BaseError) error {
	_, err := srv.directory.FindOne(ctx, field, value)
	switch {
	case err == nil:
		srv.log(ctx).Info("Registration conflict", slog.String("field", string(field)))

		return errors.WithStack(taken)
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil
	default:
		srv.log(ctx).Error("User directory lookup failed", slog.String("field", string(field)), slog.Any("error", err))

		return domainerrors.ErrPersistenceFailed.WithCause(err)
	}
}
