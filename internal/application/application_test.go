package application

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	providerDomain "github.com/salonsphere/service-booking/internal/domain/provider"
	"github.com/salonsphere/service-booking/internal/kafka"
	"github.com/salonsphere/service-booking/internal/repository"
)

// fakePublisher records published events instead of writing to Kafka.
type fakePublisher struct {
	mu     sync.Mutex
	events []kafka.CloudEvent
}

func (p *fakePublisher) PublishEvent(_ context.Context, _ string, event kafka.CloudEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) eventTypes() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	types := make([]string, len(p.events))
	for i, e := range p.events {
		types[i] = e.Type
	}
	return types
}

type testEnv struct {
	db        *gorm.DB
	accounts  *repository.GormAccountStore
	bookings  *repository.GormBookingRepository
	providers *repository.GormProviderCatalog
	publisher *fakePublisher
	service   *BookingService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&repository.AccountModel{},
		&repository.ProviderModel{},
		&repository.BookingModel{},
	))

	accounts := repository.NewGormAccountStore(db)
	bookings := repository.NewGormBookingRepository(db)
	providers := repository.NewGormProviderCatalog(db)
	publisher := &fakePublisher{}

	return &testEnv{
		db:        db,
		accounts:  accounts,
		bookings:  bookings,
		providers: providers,
		publisher: publisher,
		service:   NewBookingService(accounts, bookings, publisher, zap.NewNop()),
	}
}

func registerTestAccount(t *testing.T, env *testEnv, name, email, phone string) {
	t.Helper()

	svc := NewAccountService(env.accounts, env.providers, nil, zap.NewNop())
	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:        name,
		Email:       email,
		Phone:       phone,
		Gender:      "Female",
		DateOfBirth: time.Date(1995, 4, 12, 0, 0, 0, 0, time.UTC),
		Designation: "customer",
		Password:    "s3cret-pass",
	})
	require.NoError(t, err)
}

func seedTestProvider(t *testing.T, env *testEnv, shopName, email, passwordHash string, approved bool, services []providerDomain.ServiceOffering) {
	t.Helper()

	raw, err := json.Marshal(services)
	require.NoError(t, err)

	model := &repository.ProviderModel{
		ID:           uuid.New(),
		ShopName:     shopName,
		Email:        email,
		Phone:        "000-000",
		Location:     "Downtown",
		Designation:  "stylist",
		Approved:     approved,
		PasswordHash: passwordHash,
		Services:     raw,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, env.db.Create(model).Error)
}

func validCreateRequest(providerEmail, orderID string) CreateBookingRequest {
	return CreateBookingRequest{
		ProviderEmail:   providerEmail,
		ProviderName:    "Luxe Salon",
		CustomerName:    "Alice",
		Date:            time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		TimeSlot:        "10:30",
		DurationMinutes: 45,
		Service:         "Haircut",
		RelatedServices: []string{"Blow Dry"},
		PreferredStaff:  "Dana",
		AmountCents:     4500,
		OrderID:         orderID,
	}
}
