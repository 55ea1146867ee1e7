// Package memory provides a process-local user directory for development and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/errors"

	"github.com/google/uuid"
)

// userDirectory keeps records in maps guarded by a single lock, so the
// uniqueness check and the write in Insert are one atomic step.
type userDirectory struct {
	mu         sync.RWMutex
	byID       map[uuid.UUID]entity.UserCredentialRecord
	byUsername map[string]uuid.UUID
	byEmail    map[string]uuid.UUID
	now        func() time.Time
}

// NewUserDirectory returns an empty in-memory directory.
func NewUserDirectory() repository.UserDirectory {
	return newUserDirectory(time.Now)
}

func newUserDirectory(now func() time.Time) *userDirectory {
	return &userDirectory{
		byID:       make(map[uuid.UUID]entity.UserCredentialRecord),
		byUsername: make(map[string]uuid.UUID),
		byEmail:    make(map[string]uuid.UUID),
		now:        now,
	}
}

func (d *userDirectory) FindOne(ctx context.Context, field entity.LookupField, value string) (*entity.UserCredentialRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "find user")
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	var index map[string]uuid.UUID
	switch field {
	case entity.LookupUsername:
		index = d.byUsername
	case entity.LookupEmail:
		index = d.byEmail
	default:
		return nil, errors.Errorf("unsupported lookup field %q", field)
	}

	id, ok := index[value]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}

	record := d.byID[id]

	return &record, nil
}

func (d *userDirectory) Insert(ctx context.Context, record *entity.UserCredentialRecord) error {
	if err := ctx.Err(); err != nil {
		return domainerrors.ErrPersistenceFailed.WithCause(err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, taken := d.byUsername[record.Username]; taken {
		return domainerrors.ErrUsernameTaken
	}
	if _, taken := d.byEmail[record.Email]; taken {
		return domainerrors.ErrEmailTaken
	}

	stored := *record
	stored.ID = uuid.New()
	stored.CreatedAt = d.now().UTC()

	d.byID[stored.ID] = stored
	d.byUsername[stored.Username] = stored.ID
	d.byEmail[stored.Email] = stored.ID

	record.ID = stored.ID
	record.CreatedAt = stored.CreatedAt

	return nil
}
