package impl

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"

	deliverycontext "planner/internal/delivery/context"
	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/domain/service"
	"planner/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationService implements the VerificationUsecase interface.
type verificationService struct {
	directory repository.UserDirectory
	hasher    service.CredentialHasher
	logger    *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	Directory repository.UserDirectory
	Hasher    service.CredentialHasher
	Logger    *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		directory: params.Directory,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Verify resolves the identifier on exactly one field, chosen by
// entity.ClassifyIdentifier, and compares digests in constant time.
func (srv *verificationService) Verify(ctx context.Context, attempt *entity.LoginAttempt) (*usecase.VerificationResult, error) {
	if attempt == nil {
		return nil, domainerrors.NewValidationError("request", "is required")
	}

	field := attempt.LookupField()

	record, err := srv.directory.FindOne(ctx, field, attempt.Identifier)
	if err != nil {
		// Lookup failures are reported as NotFound too; the caller sends
		// the user to registration either way.
		if !errors.Is(err, repository.ErrRecordNotFound) {
			srv.log(ctx).Warn("User directory lookup failed during sign-in", slog.String("field", string(field)), slog.Any("error", err))
		}

		return nil, domainerrors.ErrUserNotFound.WithCause(err)
	}

	salt, err := hex.DecodeString(record.Salt)
	if err != nil || len(salt) == 0 {
		srv.log(ctx).Error("Stored salt is unreadable", slog.Any("userID", record.ID))

		return nil, domainerrors.ErrHashingFailed.WithCause(errors.Wrap(errStoredMaterial, "salt"))
	}

	stored, err := hex.DecodeString(record.PasswordHash)
	if err != nil {
		srv.log(ctx).Error("Stored password hash is unreadable", slog.Any("userID", record.ID))

		return nil, domainerrors.ErrHashingFailed.WithCause(errors.Wrap(errStoredMaterial, "password hash"))
	}

	digest, err := srv.hasher.DeriveHash(attempt.Password, salt)
	if err != nil {
		srv.log(ctx).Error("Failed to derive password hash", slog.Any("userID", record.ID), slog.Any("error", err))

		return nil, domainerrors.Ensure(err, domainerrors.ErrHashingFailed)
	}

	// A length mismatch means the record was derived with another key length.
	if len(digest) != len(stored) {
		srv.log(ctx).Error("Stored password hash length does not match the configured key length",
			slog.Any("userID", record.ID),
			slog.Int("storedLength", len(stored)),
			slog.Int("derivedLength", len(digest)),
		)

		return nil, domainerrors.ErrHashingFailed.WithCause(errors.WithStack(errKeyLengthMismatch))
	}

	if subtle.ConstantTimeCompare(digest, stored) != 1 {
		srv.log(ctx).Debug("Sign-in rejected", slog.Any("userID", record.ID))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	srv.log(ctx).Info("User signed in", slog.Any("userID", record.ID))

	return &usecase.VerificationResult{Identity: record.Identity()}, nil
}

// errStoredMaterial keeps the undecodable value itself out of error text.
var (
	errStoredMaterial    = errors.New("stored credential material is not valid hex")
	errKeyLengthMismatch = errors.New("stored password hash length differs from derived key length")
)
