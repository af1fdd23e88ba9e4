package account

import (
	"context"

	"github.com/google/uuid"
)

// Store defines the persistence contract for customer accounts.
type Store interface {
	// FindByEmail retrieves an account by its unique email.
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// FindByIdentifier retrieves an account by email or phone.
	FindByIdentifier(ctx context.Context, identifier string) (*Account, error)

	// ListAll retrieves every account.
	ListAll(ctx context.Context) ([]*Account, error)

	// Save persists a new account. Duplicate email or phone yields a conflict.
	Save(ctx context.Context, account *Account) error

	// Update persists changes to an existing account.
	Update(ctx context.Context, account *Account) error

	// Delete removes an account by ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
