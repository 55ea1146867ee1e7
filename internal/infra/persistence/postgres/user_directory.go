// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/domain/repository"
	"planner/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// lookupColumns whitelists the columns FindOne may filter on.
var lookupColumns = map[entity.LookupField]string{
	entity.LookupUsername: "username",
	entity.LookupEmail:    "email",
}

// userDirectory implements the repository.UserDirectory interface using GORM.
type userDirectory struct {
	db *gorm.DB
}

// NewUserDirectory is the constructor for userDirectory.
func NewUserDirectory(db *gorm.DB) repository.UserDirectory {
	return &userDirectory{db: db}
}

// FindOne reads from the primary so a record inserted a moment ago is visible.
func (d *userDirectory) FindOne(ctx context.Context, field entity.LookupField, value string) (*entity.UserCredentialRecord, error) {
	column, ok := lookupColumns[field]
	if !ok {
		return nil, errors.Errorf("unsupported lookup field %q", field)
	}

	var userM model.UserModel
	err := d.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where(column+" = ?", value).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecordNotFound
		}

		return nil, errors.Wrapf(err, "failed to find user by %s", column)
	}

	return toRecordDomain(&userM), nil
}

// Insert relies on the unique indexes, so of two concurrent inserts with the
// same username or email exactly one succeeds.
func (d *userDirectory) Insert(ctx context.Context, record *entity.UserCredentialRecord) error {
	userM := fromRecordDomain(record)

	if err := d.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueViolationError(err)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert user")
	}

	record.ID = userM.ID
	record.CreatedAt = userM.CreatedAt

	return nil
}

func toRecordDomain(userM *model.UserModel) *entity.UserCredentialRecord {
	return &entity.UserCredentialRecord{
		ID:           userM.ID,
		Username:     userM.Username,
		Email:        userM.Email,
		PasswordHash: userM.PasswordHash,
		Salt:         userM.Salt,
		CreatedAt:    userM.CreatedAt,
	}
}

func fromRecordDomain(record *entity.UserCredentialRecord) *model.UserModel {
	return &model.UserModel{
		ID:           record.ID,
		Username:     record.Username,
		Email:        record.Email,
		PasswordHash: record.PasswordHash,
		Salt:         record.Salt,
		CreatedAt:    record.CreatedAt,
	}
}
