package booking

import (
	"context"

	"github.com/google/uuid"
)

// CustomerBooking annotates a booking with the identity of the account that
// owns it, for provider-facing views.
type CustomerBooking struct {
	CustomerName  string
	CustomerEmail string
	Booking       *Booking
}

// Repository defines the persistence contract for booking entities. Bookings
// are always owned by an account; cross-account lookups exist for the
// provider-identified operations and reporting views.
type Repository interface {
	// FindByID retrieves a booking owned by the given account.
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Booking, error)

	// FindByOwnerID retrieves all bookings for an account, oldest first.
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*Booking, error)

	// FindByOrderID retrieves the oldest booking owned by the account whose
	// caller-supplied order identifier matches.
	FindByOrderID(ctx context.Context, ownerID uuid.UUID, orderID string) (*Booking, error)

	// FindAnyByOrderID retrieves the oldest booking with the given order
	// identifier across all accounts.
	FindAnyByOrderID(ctx context.Context, orderID string) (*Booking, error)

	// FindByProvider retrieves the oldest booking matching both provider email
	// and booking identifier, across all accounts.
	FindByProvider(ctx context.Context, providerEmail string, id uuid.UUID) (*Booking, error)

	// ListByProviderEmail retrieves all bookings for a provider, each annotated
	// with the owning customer's name and email.
	ListByProviderEmail(ctx context.Context, providerEmail string) ([]CustomerBooking, error)

	// ListAll retrieves every booking, oldest first.
	ListAll(ctx context.Context) ([]*Booking, error)

	// ListAllPaginated retrieves bookings page by page (admin).
	ListAllPaginated(ctx context.Context, page, limit int) ([]*Booking, int64, error)

	// CountByConfirmation returns booking counts grouped by confirmation status (admin).
	CountByConfirmation(ctx context.Context) (map[string]int64, error)

	// Save persists a new booking.
	Save(ctx context.Context, booking *Booking) error

	// Update persists lifecycle changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error
}
