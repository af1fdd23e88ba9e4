package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/domain"
	accountDomain "github.com/salonsphere/service-booking/internal/domain/account"
	bookingDomain "github.com/salonsphere/service-booking/internal/domain/booking"
	"github.com/salonsphere/service-booking/internal/events"
	"github.com/salonsphere/service-booking/internal/kafka"
)

// EventPublisher publishes CloudEvents to a topic. Satisfied by *kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// CreateBookingRequest holds the data needed to create a new booking.
// Required-field validation happens in the domain so every missing field
// surfaces as a ValidationError.
type CreateBookingRequest struct {
	ProviderEmail   string    `json:"provider_email"`
	ProviderName    string    `json:"provider_name"`
	CustomerName    string    `json:"customer_name"`
	Date            time.Time `json:"date"`
	TimeSlot        string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	Service         string    `json:"service"`
	RelatedServices []string  `json:"related_services"`
	PreferredStaff  string    `json:"preferred_staff"`
	AmountCents     int64     `json:"amount_cents"`
	OrderID         string    `json:"order_id"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID                uuid.UUID `json:"id"`
	OwnerID           uuid.UUID `json:"owner_id"`
	ProviderEmail     string    `json:"provider_email"`
	ProviderName      string    `json:"provider_name"`
	CustomerName      string    `json:"customer_name"`
	Date              time.Time `json:"date"`
	TimeSlot          string    `json:"time"`
	DurationMinutes   int       `json:"duration_minutes,omitempty"`
	Service           string    `json:"service"`
	RelatedServices   []string  `json:"related_services"`
	PreferredStaff    string    `json:"preferred_staff"`
	Confirmation      string    `json:"confirmation"`
	Payment           string    `json:"payment_status"`
	TransactionID     string    `json:"transaction_id,omitempty"`
	OrderID           string    `json:"order_id,omitempty"`
	AmountCents       int64     `json:"amount_cents"`
	TotalAmountCents  int64     `json:"total_amount_cents,omitempty"`
	PaymentMode       string    `json:"payment_mode,omitempty"`
	FailureReason     string    `json:"failure_reason,omitempty"`
	Rating            *float64  `json:"rating,omitempty"`
	Review            string    `json:"review,omitempty"`
	CustomerComplaint string    `json:"customer_complaint,omitempty"`
	ProviderComplaint string    `json:"provider_complaint,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProviderBookingDTO is a booking annotated with the owning customer's identity.
type ProviderBookingDTO struct {
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Booking       BookingDTO `json:"booking"`
}

// CustomerBookingsDTO is the customer-facing bookings view.
type CustomerBookingsDTO struct {
	Name     string       `json:"name"`
	Bookings []BookingDTO `json:"bookings"`
}

// BookingStatsDTO holds booking statistics for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings  int64            `json:"total_bookings"`
	ByConfirmation map[string]int64 `json:"by_confirmation"`
}

// BookingService orchestrates the booking lifecycle and the cross-account
// reporting views.
type BookingService struct {
	accounts  accountDomain.Store
	bookings  bookingDomain.Repository
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	accounts accountDomain.Store,
	bookings bookingDomain.Repository,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		accounts:  accounts,
		bookings:  bookings,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking appends a booking to the account identified by ownerEmail.
func (s *BookingService) CreateBooking(ctx context.Context, ownerEmail string, req CreateBookingRequest) (*BookingDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	bk, err := bookingDomain.NewBooking(
		acct.ID(),
		req.ProviderEmail,
		req.ProviderName,
		req.CustomerName,
		req.Date,
		req.TimeSlot,
		req.DurationMinutes,
		req.Service,
		req.RelatedServices,
		req.PreferredStaff,
		req.AmountCents,
		req.OrderID,
	)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	evt := events.BookingCreatedEvent{
		BookingID:     bk.ID(),
		OwnerID:       bk.OwnerID(),
		ProviderEmail: bk.ProviderEmail(),
		Service:       bk.Service(),
		Date:          bk.Date(),
		TimeSlot:      bk.TimeSlot(),
		AmountCents:   bk.AmountCents(),
		OccurredAt:    time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingCreated, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// GetOwnerBookings returns all bookings for the account identified by email,
// oldest first.
func (s *BookingService) GetOwnerBookings(ctx context.Context, ownerEmail string) ([]BookingDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByOwnerID(ctx, acct.ID())
	if err != nil {
		return nil, err
	}
	return toBookingDTOs(bookings), nil
}

// GetBooking returns a single booking owned by the account identified by email.
func (s *BookingService) GetBooking(ctx context.Context, ownerEmail string, bookingID uuid.UUID) (*BookingDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	bk, err := s.bookings.FindByID(ctx, acct.ID(), bookingID)
	if err != nil {
		return nil, err
	}
	result := toBookingDTO(bk)
	return &result, nil
}

// GetCustomerView returns the account name together with its bookings.
func (s *BookingService) GetCustomerView(ctx context.Context, ownerEmail string) (*CustomerBookingsDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindByOwnerID(ctx, acct.ID())
	if err != nil {
		return nil, err
	}

	return &CustomerBookingsDTO{
		Name:     acct.Name(),
		Bookings: toBookingDTOs(bookings),
	}, nil
}

// ConfirmBooking confirms the booking identified by (providerEmail, bookingID).
// The lookup matches at most one booking; re-confirming succeeds without error.
func (s *BookingService) ConfirmBooking(ctx context.Context, providerEmail string, bookingID uuid.UUID) (*BookingDTO, error) {
	bk, err := s.bookings.FindByProvider(ctx, providerEmail, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bk.Confirm(); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.BookingConfirmedEvent{
		BookingID:     bk.ID(),
		ProviderEmail: bk.ProviderEmail(),
		OccurredAt:    time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingConfirmed, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// RateBooking sets the rating and review on the booking identified by
// (ownerEmail, orderID). Both fields update together.
func (s *BookingService) RateBooking(ctx context.Context, ownerEmail, orderID string, rating float64, review string) (*BookingDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	bk, err := s.bookings.FindByOrderID(ctx, acct.ID(), orderID)
	if err != nil {
		return nil, err
	}

	bk.Rate(rating, review)
	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.BookingRatedEvent{
		BookingID:  bk.ID(),
		OrderID:    orderID,
		Rating:     rating,
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingRated, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// FileCustomerComplaint sets the customer complaint on the booking identified
// by (ownerEmail, orderID).
func (s *BookingService) FileCustomerComplaint(ctx context.Context, ownerEmail, orderID, text string) (*BookingDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, ownerEmail)
	if err != nil {
		return nil, err
	}

	bk, err := s.bookings.FindByOrderID(ctx, acct.ID(), orderID)
	if err != nil {
		return nil, err
	}

	bk.FileCustomerComplaint(text)
	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.ComplaintFiledEvent{
		BookingID:  bk.ID(),
		Author:     "customer",
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingComplaintFiled, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// FileProviderComplaint sets the provider complaint on the booking identified
// by (providerEmail, bookingID). Empty or whitespace-only text is rejected
// before any lookup.
func (s *BookingService) FileProviderComplaint(ctx context.Context, providerEmail string, bookingID uuid.UUID, text string) (*BookingDTO, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("complaint text is required")
	}

	bk, err := s.bookings.FindByProvider(ctx, providerEmail, bookingID)
	if err != nil {
		return nil, err
	}

	if err := bk.FileProviderComplaint(text); err != nil {
		return nil, err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return nil, err
	}

	evt := events.ComplaintFiledEvent{
		BookingID:  bk.ID(),
		Author:     "provider",
		OccurredAt: time.Now().UTC(),
	}
	s.publishEvent(ctx, events.TopicBookingEvents, events.BookingComplaintFiled, evt)

	result := toBookingDTO(bk)
	return &result, nil
}

// RecordPaymentSuccess marks the booking with the given order identifier PAID.
func (s *BookingService) RecordPaymentSuccess(ctx context.Context, orderID, transactionID, paymentMode string, totalAmountCents int64) error {
	bk, err := s.bookings.FindAnyByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := bk.MarkPaid(transactionID, paymentMode, totalAmountCents); err != nil {
		return err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return err
	}

	s.logger.Info("payment recorded",
		zap.String("booking_id", bk.ID().String()),
		zap.String("order_id", orderID),
		zap.String("transaction_id", transactionID),
	)
	return nil
}

// RecordPaymentFailure marks the booking with the given order identifier
// FAILED and stores the reason.
func (s *BookingService) RecordPaymentFailure(ctx context.Context, orderID, transactionID, reason string) error {
	bk, err := s.bookings.FindAnyByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := bk.MarkFailed(transactionID, reason); err != nil {
		return err
	}

	bk.IncrementVersion()
	if err := s.bookings.Update(ctx, bk); err != nil {
		return err
	}

	s.logger.Info("payment failure recorded",
		zap.String("booking_id", bk.ID().String()),
		zap.String("order_id", orderID),
		zap.String("reason", reason),
	)
	return nil
}

// ListAllBookings returns every booking across all accounts.
func (s *BookingService) ListAllBookings(ctx context.Context) ([]BookingDTO, error) {
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return toBookingDTOs(bookings), nil
}

// ListBookingsPaginated returns a page of all bookings (admin).
func (s *BookingService) ListBookingsPaginated(ctx context.Context, page, limit int) (*domain.PaginatedResult[BookingDTO], error) {
	bookings, total, err := s.bookings.ListAllPaginated(ctx, page, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	result := domain.NewPaginatedResult(toBookingDTOs(bookings), total, page, limit)
	return &result, nil
}

// GetProviderBookings returns every booking for the given provider, each
// annotated with the owning customer's name and email.
func (s *BookingService) GetProviderBookings(ctx context.Context, providerEmail string) ([]ProviderBookingDTO, error) {
	rows, err := s.bookings.ListByProviderEmail(ctx, providerEmail)
	if err != nil {
		return nil, err
	}

	dtos := make([]ProviderBookingDTO, len(rows))
	for i, row := range rows {
		dtos[i] = ProviderBookingDTO{
			CustomerName:  row.CustomerName,
			CustomerEmail: row.CustomerEmail,
			Booking:       toBookingDTO(row.Booking),
		}
	}
	return dtos, nil
}

// GetBookingStats returns aggregate booking statistics (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.bookings.CountByConfirmation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}

	return &BookingStatsDTO{
		TotalBookings:  total,
		ByConfirmation: counts,
	}, nil
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:                bk.ID(),
		OwnerID:           bk.OwnerID(),
		ProviderEmail:     bk.ProviderEmail(),
		ProviderName:      bk.ProviderName(),
		CustomerName:      bk.CustomerName(),
		Date:              bk.Date(),
		TimeSlot:          bk.TimeSlot(),
		DurationMinutes:   bk.DurationMinutes(),
		Service:           bk.Service(),
		RelatedServices:   bk.RelatedServices(),
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
		CreatedAt:         bk.CreatedAt(),
		UpdatedAt:         bk.UpdatedAt(),
	}
}

func toBookingDTOs(bookings []*bookingDomain.Booking) []BookingDTO {
	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos
}

func (s *BookingService) publishEvent(ctx context.Context, topic, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent("service-booking", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
