package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	accountDomain "github.com/salonsphere/service-booking/internal/domain/account"
	bookingDomain "github.com/salonsphere/service-booking/internal/domain/booking"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&AccountModel{}, &ProviderModel{}, &BookingModel{}))
	return db
}

func accountDomainNew(t *testing.T, name, email, phone string) (*accountDomain.Account, error) {
	t.Helper()
	return accountDomain.NewAccount(
		name, email, phone,
		accountDomain.GenderFemale,
		time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		"customer",
		"$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
	)
}

func seedAccount(t *testing.T, db *gorm.DB, name, email, phone string) *accountDomain.Account {
	t.Helper()

	acct, err := accountDomainNew(t, name, email, phone)
	require.NoError(t, err)
	require.NoError(t, NewGormAccountStore(db).Save(context.Background(), acct))
	return acct
}

// seedBooking persists a booking with an explicit creation time so ordering
// assertions are deterministic.
func seedBooking(t *testing.T, db *gorm.DB, ownerID uuid.UUID, providerEmail, orderID string, createdAt time.Time) *bookingDomain.Booking {
	t.Helper()

	bk := bookingDomain.ReconstructBooking(
		uuid.New(), ownerID,
		providerEmail, "Luxe Salon", "Alice",
		time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), "10:30", 45,
		"Haircut", []string{"Blow Dry"}, "Dana",
		bookingDomain.ConfirmationPending, bookingDomain.PaymentPending,
		"", orderID, 4500, 0, "", "",
		nil, "", "", "",
		1, createdAt, createdAt,
	)
	require.NoError(t, NewGormBookingRepository(db).Save(context.Background(), bk))
	return bk
}
