package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salonsphere/service-booking/internal/domain"
	bookingDomain "github.com/salonsphere/service-booking/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OwnerID           uuid.UUID       `gorm:"type:uuid;index;not null"`
	ProviderEmail     string          `gorm:"size:255;not null;index:idx_bookings_provider_email"`
	ProviderName      string          `gorm:"size:255;not null"`
	CustomerName      string          `gorm:"size:255;not null"`
	Date              time.Time       `gorm:"not null"`
	TimeSlot          string          `gorm:"size:20;not null"`
	DurationMinutes   int             `gorm:""`
	Service           string          `gorm:"size:255;not null"`
	RelatedServices   json.RawMessage `gorm:"type:jsonb"`
	PreferredStaff    string          `gorm:"size:255"`
	Confirmation      string          `gorm:"size:20;not null;index"`
	Payment           string          `gorm:"size:10;not null"`
	TransactionID     string          `gorm:"size:100"`
	OrderID           string          `gorm:"size:100;index"`
	AmountCents       int64           `gorm:"not null"`
	TotalAmountCents  int64           `gorm:""`
	PaymentMode       string          `gorm:"size:50"`
	FailureReason     string          `gorm:"size:500"`
	Rating            *float64        `gorm:""`
	Review            string          `gorm:"size:2000"`
	CustomerComplaint string          `gorm:"size:2000"`
	ProviderComplaint string          `gorm:"size:2000"`
	Version           int64           `gorm:"not null;default:1"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID retrieves a booking owned by the given account.
func (r *GormBookingRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).Where("owner_id = ? AND id = ?", ownerID, id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByOwnerID retrieves all bookings for an account, oldest first.
func (r *GormBookingRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find owner bookings: %w", err)
	}
	return toDomainBookings(models)
}

// FindByOrderID retrieves the oldest booking owned by the account whose order
// identifier matches.
func (r *GormBookingRepository) FindByOrderID(ctx context.Context, ownerID uuid.UUID, orderID string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND order_id = ?", ownerID, orderID).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", orderID)
		}
		return nil, fmt.Errorf("failed to find booking by order ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindAnyByOrderID retrieves the oldest booking with the given order
// identifier across all accounts.
func (r *GormBookingRepository) FindAnyByOrderID(ctx context.Context, orderID string) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", orderID)
		}
		return nil, fmt.Errorf("failed to find booking by order ID: %w", err)
	}
	return toDomainBooking(&model)
}

// FindByProvider retrieves the oldest booking matching both provider email and
// booking identifier, across all accounts.
func (r *GormBookingRepository) FindByProvider(ctx context.Context, providerEmail string, id uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel
	if err := r.db.WithContext(ctx).
		Where("provider_email = ? AND id = ?", providerEmail, id).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", id.String())
		}
		return nil, fmt.Errorf("failed to find booking by provider: %w", err)
	}
	return toDomainBooking(&model)
}

// ListByProviderEmail retrieves all bookings for a provider, each annotated
// with the owning customer's name and email.
func (r *GormBookingRepository) ListByProviderEmail(ctx context.Context, providerEmail string) ([]bookingDomain.CustomerBooking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where("provider_email = ?", providerEmail).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list provider bookings: %w", err)
	}

	if len(models) == 0 {
		return []bookingDomain.CustomerBooking{}, nil
	}

	ownerIDs := make([]uuid.UUID, 0, len(models))
	seen := make(map[uuid.UUID]bool)
	for _, m := range models {
		if !seen[m.OwnerID] {
			seen[m.OwnerID] = true
			ownerIDs = append(ownerIDs, m.OwnerID)
		}
	}

	var owners []AccountModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ownerIDs).Find(&owners).Error; err != nil {
		return nil, fmt.Errorf("failed to load booking owners: %w", err)
	}
	ownerByID := make(map[uuid.UUID]AccountModel, len(owners))
	for _, o := range owners {
		ownerByID[o.ID] = o
	}

	results := make([]bookingDomain.CustomerBooking, 0, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		owner := ownerByID[models[i].OwnerID]
		results = append(results, bookingDomain.CustomerBooking{
			CustomerName:  owner.Name,
			CustomerEmail: owner.Email,
			Booking:       bk,
		})
	}
	return results, nil
}

// ListAll retrieves every booking, oldest first.
func (r *GormBookingRepository) ListAll(ctx context.Context) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toDomainBookings(models)
}

// ListAllPaginated retrieves bookings page by page (admin).
func (r *GormBookingRepository) ListAllPaginated(ctx context.Context, page, limit int) ([]*bookingDomain.Booking, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	var models []BookingModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	bookings, err := toDomainBookings(models)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// CountByConfirmation returns booking counts grouped by confirmation status (admin).
func (r *GormBookingRepository) CountByConfirmation(ctx context.Context) (map[string]int64, error) {
	type statusCount struct {
		Confirmation string
		Count        int64
	}
	var results []statusCount
	if err := r.db.WithContext(ctx).Model(&BookingModel{}).
		Select("confirmation, count(*) as count").
		Group("confirmation").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by confirmation: %w", err)
	}

	counts := make(map[string]int64)
	for _, sc := range results {
		counts[sc.Confirmation] = sc.Count
	}
	return counts, nil
}

// Save persists a new booking.
func (r *GormBookingRepository) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert booking to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save booking: %w", err)
	}
	return nil
}

// Update patches the lifecycle and feedback columns of an existing booking.
// The update only applies if the stored version matches the version the
// caller loaded; a mismatch means a concurrent writer won.
func (r *GormBookingRepository) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	model, err := toBookingModel(bk)
	if err != nil {
		return fmt.Errorf("failed to convert booking to model: %w", err)
	}

	expectedVersion := bk.Version() - 1
	result := r.db.WithContext(ctx).
		Model(&BookingModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"confirmation":       model.Confirmation,
			"payment":            model.Payment,
			"transaction_id":     model.TransactionID,
			"total_amount_cents": model.TotalAmountCents,
			"payment_mode":       model.PaymentMode,
			"failure_reason":     model.FailureReason,
			"rating":             model.Rating,
			"review":             model.Review,
			"customer_complaint": model.CustomerComplaint,
			"provider_complaint": model.ProviderComplaint,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update booking: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewConflictError("booking was modified by another transaction")
	}
	return nil
}

// --- Conversion Helpers ---

func toBookingModel(bk *bookingDomain.Booking) (*BookingModel, error) {
	relatedJSON, err := json.Marshal(bk.RelatedServices())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal related services: %w", err)
	}

	return &BookingModel{
		ID:                bk.ID(),
		OwnerID:           bk.OwnerID(),
		ProviderEmail:     bk.ProviderEmail(),
		ProviderName:      bk.ProviderName(),
		CustomerName:      bk.CustomerName(),
		Date:              bk.Date(),
		TimeSlot:          bk.TimeSlot(),
		DurationMinutes:   bk.DurationMinutes(),
		Service:           bk.Service(),
		RelatedServices:   relatedJSON,
		PreferredStaff:    bk.PreferredStaff(),
		Confirmation:      string(bk.Confirmation()),
		Payment:           string(bk.Payment()),
		TransactionID:     bk.TransactionID(),
		OrderID:           bk.OrderID(),
		AmountCents:       bk.AmountCents(),
		TotalAmountCents:  bk.TotalAmountCents(),
		PaymentMode:       bk.PaymentMode(),
		FailureReason:     bk.FailureReason(),
		Rating:            bk.Rating(),
		Review:            bk.Review(),
		CustomerComplaint: bk.CustomerComplaint(),
		ProviderComplaint: bk.ProviderComplaint(),
		Version:           bk.Version(),
		CreatedAt:         bk.CreatedAt(),
		UpdatedAt:         bk.UpdatedAt(),
	}, nil
}

func toDomainBooking(m *BookingModel) (*bookingDomain.Booking, error) {
	var related []string
	if len(m.RelatedServices) > 0 {
		if err := json.Unmarshal(m.RelatedServices, &related); err != nil {
			return nil, fmt.Errorf("failed to unmarshal related services: %w", err)
		}
	}
	if related == nil {
		related = []string{}
	}

	confirmation, err := bookingDomain.ParseConfirmationStatus(m.Confirmation)
	if err != nil {
		return nil, err
	}
	payment, err := bookingDomain.ParsePaymentStatus(m.Payment)
	if err != nil {
		return nil, err
	}

	return bookingDomain.ReconstructBooking(
		m.ID,
		m.OwnerID,
		m.ProviderEmail,
		m.ProviderName,
		m.CustomerName,
		m.Date,
		m.TimeSlot,
		m.DurationMinutes,
		m.Service,
		related,
		m.PreferredStaff,
		confirmation,
		payment,
		m.TransactionID,
		m.OrderID,
		m.AmountCents,
		m.TotalAmountCents,
		m.PaymentMode,
		m.FailureReason,
		m.Rating,
		m.Review,
		m.CustomerComplaint,
		m.ProviderComplaint,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func toDomainBookings(models []BookingModel) ([]*bookingDomain.Booking, error) {
	bookings := make([]*bookingDomain.Booking, len(models))
	for i := range models {
		bk, err := toDomainBooking(&models[i])
		if err != nil {
			return nil, err
		}
		bookings[i] = bk
	}
	return bookings, nil
}
