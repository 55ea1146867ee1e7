// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LookupField names the record field a directory lookup is keyed on.
type LookupField string

const (
	LookupUsername LookupField = "username"
	LookupEmail    LookupField = "email"
)

// UserCredentialRecord is the persisted identity unit. It is created once at
// registration and never mutated afterwards.
type UserCredentialRecord struct {
	ID           uuid.UUID // Assigned by the user directory on insert.
	Username     string    // Unique across all records.
	Email        string    // Unique across all records.
	PasswordHash string    // Hex-encoded key-derivation output, never the cleartext.
	Salt         string    // Hex-encoded per-record random salt.
	CreatedAt    time.Time // Set by the user directory on insert.
}

// Identity returns the public view of the record, without hash or salt.
func (r *UserCredentialRecord) Identity() *Identity {
	if r == nil {
		return nil
	}

	return &Identity{
		ID:        r.ID,
		Username:  r.Username,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
	}
}

// Identity is what the flows hand back to callers once a user is known.
type Identity struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
}

// RegistrationRequest is the submitted sign-up form. It lives for one
// registration call only.
type RegistrationRequest struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginAttempt is the submitted sign-in form. It is never persisted or logged.
type LoginAttempt struct {
	Identifier string // Username or email, as typed.
	Password   string
}

// LookupField routes the attempt to the email field when the identifier
// contains "@", and to the username field otherwise.
func (a LoginAttempt) LookupField() LookupField {
	return ClassifyIdentifier(a.Identifier)
}

// ClassifyIdentifier is a syntactic check only: any "@" means email.
func ClassifyIdentifier(identifier string) LookupField {
	if strings.Contains(identifier, "@") {
		return LookupEmail
	}

	return LookupUsername
}
