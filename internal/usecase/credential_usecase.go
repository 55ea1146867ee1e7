// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// RegistrationResult signals that the new identity can be used to sign in.
type RegistrationResult struct {
	Identity *entity.Identity
}

// VerificationResult is the authenticated identity of a successful sign-in.
type VerificationResult struct {
	Identity *entity.Identity
}

// RegistrationUsecase creates credential records.
type RegistrationUsecase interface {
	// Register validates the request, checks username then email
	// availability, derives a salted digest and inserts the record. The
	// first failing step decides the returned error.
	Register(ctx context.Context, req *entity.RegistrationRequest) (*RegistrationResult, error)
}

// VerificationUsecase checks a login attempt against the stored record.
type VerificationUsecase interface {
	Verify(ctx context.Context, attempt *entity.LoginAttempt) (*VerificationResult, error)
}
