// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"planner/internal/domain/entity"
)

// ErrRecordNotFound is returned by FindOne when no record matches. It is a
// lookup outcome, not a transport failure.
var ErrRecordNotFound = errors.New("user credential record not found")

// UserDirectory is the external store of credential records and the
// authority of record for username and email uniqueness.
type UserDirectory interface {
	// FindOne returns the single record whose field equals value, or
	// ErrRecordNotFound. Any other error means the directory could not answer.
	FindOne(ctx context.Context, field entity.LookupField, value string) (*entity.UserCredentialRecord, error)

	// Insert stores a new record and fills in its ID and CreatedAt. A
	// username or email collision yields a conflict-kind error, enforced
	// atomically by the store; other failures yield a persistence-kind error.
	Insert(ctx context.Context, record *entity.UserCredentialRecord) error
}
