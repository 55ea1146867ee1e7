package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"planner/internal/domain/entity"
	domainerrors "planner/internal/domain/errors"
	"planner/internal/infra/auth"
	"planner/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFlow_RegisterThenVerify(t *testing.T) {
	ctx := context.Background()
	directory := memory.NewUserDirectory()
	hasher, err := auth.NewPBKDF2HasherWithParams(1000, 16, 64)
	require.NoError(t, err)

	registration := NewRegistrationService(RegistrationServiceParams{
		Directory: directory,
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})
	verification := NewVerificationService(VerificationServiceParams{
		Directory: directory,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})

	registered, err := registration.Register(ctx, validRequest())
	require.NoError(t, err)

	record, err := directory.FindOne(ctx, entity.LookupUsername, "alice")
	require.NoError(t, err)
	unsalted := sha256.Sum256([]byte("longpass1"))
	assert.NotEqual(t, "longpass1", record.PasswordHash)
	assert.NotEqual(t, hex.EncodeToString(unsalted[:]), record.PasswordHash)
	assert.Len(t, record.PasswordHash, 128)
	assert.Len(t, record.Salt, 32)

	t.Run("duplicate username", func(t *testing.T) {
		req := validRequest()
		req.Email = "other@example.com"

		_, err := registration.Register(ctx, req)
		assert.True(t, errors.Is(err, domainerrors.ErrUsernameTaken))
	})

	t.Run("username and password", func(t *testing.T) {
		result, err := verification.Verify(ctx, &entity.LoginAttempt{Identifier: "alice", Password: "longpass1"})
		require.NoError(t, err)
		assert.Equal(t, registered.Identity.ID, result.Identity.ID)
	})

	t.Run("email and password", func(t *testing.T) {
		result, err := verification.Verify(ctx, &entity.LoginAttempt{Identifier: "alice@example.com", Password: "longpass1"})
		require.NoError(t, err)
		assert.Equal(t, registered.Identity.ID, result.Identity.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := verification.Verify(ctx, &entity.LoginAttempt{Identifier: "alice", Password: "wrongpass"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := verification.Verify(ctx, &entity.LoginAttempt{Identifier: "bob", Password: "longpass1"})
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}
