package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonsphere/service-booking/internal/domain"
)

func TestAccountStoreSaveAndFind(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormAccountStore(db)
	ctx := context.Background()

	acct := seedAccount(t, db, "Alice", "alice@example.com", "111-222")

	t.Run("finds account by email", func(t *testing.T) {
		found, err := store.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, acct.ID(), found.ID())
		assert.Equal(t, "Alice", found.Name())
		assert.False(t, found.LoggedIn())
	})

	t.Run("finds account by phone identifier", func(t *testing.T) {
		found, err := store.FindByIdentifier(ctx, "111-222")
		require.NoError(t, err)
		assert.Equal(t, acct.ID(), found.ID())
	})

	t.Run("unknown email yields not found", func(t *testing.T) {
		_, err := store.FindByEmail(ctx, "ghost@example.com")
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("duplicate email yields conflict", func(t *testing.T) {
		dupe, err := accountDomainNew(t, "Alice Two", "alice@example.com", "999-999")
		require.NoError(t, err)

		err = store.Save(ctx, dupe)
		require.Error(t, err)
		assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))
	})

	t.Run("duplicate phone yields conflict", func(t *testing.T) {
		dupe, err := accountDomainNew(t, "Alice Three", "alice3@example.com", "111-222")
		require.NoError(t, err)

		err = store.Save(ctx, dupe)
		require.Error(t, err)
		assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))
	})
}

func TestAccountStoreUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	store := NewGormAccountStore(db)
	ctx := context.Background()

	t.Run("persists login flag", func(t *testing.T) {
		acct := seedAccount(t, db, "Bob", "bob@example.com", "333-444")

		acct.SetLoggedIn()
		require.NoError(t, store.Update(ctx, acct))

		found, err := store.FindByEmail(ctx, "bob@example.com")
		require.NoError(t, err)
		assert.True(t, found.LoggedIn())
	})

	t.Run("lists all accounts", func(t *testing.T) {
		seedAccount(t, db, "Cara", "cara@example.com", "555-666")

		accounts, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(accounts), 2)
	})

	t.Run("delete removes account and its bookings", func(t *testing.T) {
		acct := seedAccount(t, db, "Dana", "dana@example.com", "777-888")
		seedBooking(t, db, acct.ID(), "shop@example.com", "ORD-DEL", time.Now().UTC())

		require.NoError(t, store.Delete(ctx, acct.ID()))

		_, err := store.FindByEmail(ctx, "dana@example.com")
		assert.True(t, domain.IsNotFound(err))

		repo := NewGormBookingRepository(db)
		remaining, err := repo.FindByOwnerID(ctx, acct.ID())
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("deleting unknown account yields not found", func(t *testing.T) {
		err := store.Delete(ctx, uuid.New())
		assert.True(t, domain.IsNotFound(err))
	})
}
