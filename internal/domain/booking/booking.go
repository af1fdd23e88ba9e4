package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonsphere/service-booking/internal/domain"
)

// Booking is a single scheduled service engagement between a customer account
// and a provider. It belongs to exactly one account; the provider side is
// denormalized as email + display name.
type Booking struct {
	id            uuid.UUID
	ownerID       uuid.UUID
	providerEmail string
	providerName  string
	customerName  string

	date            time.Time
	timeSlot        string
	durationMinutes int
	service         string
	relatedServices []string
	preferredStaff  string

	confirmation     ConfirmationStatus
	payment          PaymentStatus
	transactionID    string
	orderID          string
	amountCents      int64
	totalAmountCents int64
	paymentMode      string
	failureReason    string

	rating            *float64
	review            string
	customerComplaint string
	providerComplaint string

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking with confirmation=pending and payment=PENDING.
// Related services default to an empty list and preferred staff to "".
func NewBooking(
	ownerID uuid.UUID,
	providerEmail string,
	providerName string,
	customerName string,
	date time.Time,
	timeSlot string,
	durationMinutes int,
	service string,
	relatedServices []string,
	preferredStaff string,
	amountCents int64,
	orderID string,
) (*Booking, error) {
	if ownerID == uuid.Nil {
		return nil, domain.NewValidationError("owner ID is required")
	}
	if strings.TrimSpace(providerEmail) == "" {
		return nil, domain.NewValidationError("provider email is required")
	}
	if strings.TrimSpace(providerName) == "" {
		return nil, domain.NewValidationError("provider name is required")
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, domain.NewValidationError("customer name is required")
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date is required")
	}
	if strings.TrimSpace(timeSlot) == "" {
		return nil, domain.NewValidationError("time is required")
	}
	if strings.TrimSpace(service) == "" {
		return nil, domain.NewValidationError("service is required")
	}
	if amountCents <= 0 {
		return nil, domain.NewValidationError("amount must be positive")
	}

	if relatedServices == nil {
		relatedServices = []string{}
	}

	now := time.Now().UTC()
	return &Booking{
		id:              uuid.New(),
		ownerID:         ownerID,
		providerEmail:   providerEmail,
		providerName:    providerName,
		customerName:    customerName,
		date:            date,
		timeSlot:        timeSlot,
		durationMinutes: durationMinutes,
		service:         service,
		relatedServices: relatedServices,
		preferredStaff:  preferredStaff,
		confirmation:    ConfirmationPending,
		payment:         PaymentPending,
		amountCents:     amountCents,
		orderID:         orderID,
		version:         1,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id uuid.UUID,
	ownerID uuid.UUID,
	providerEmail string,
	providerName string,
	customerName string,
	date time.Time,
	timeSlot string,
	durationMinutes int,
	service string,
	relatedServices []string,
	preferredStaff string,
	confirmation ConfirmationStatus,
	payment PaymentStatus,
	transactionID string,
	orderID string,
	amountCents int64,
	totalAmountCents int64,
	paymentMode string,
	failureReason string,
	rating *float64,
	review string,
	customerComplaint string,
	providerComplaint string,
	version int64,
	createdAt time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		ownerID:           ownerID,
		providerEmail:     providerEmail,
		providerName:      providerName,
		customerName:      customerName,
		date:              date,
		timeSlot:          timeSlot,
		durationMinutes:   durationMinutes,
		service:           service,
		relatedServices:   relatedServices,
		preferredStaff:    preferredStaff,
		confirmation:      confirmation,
		payment:           payment,
		transactionID:     transactionID,
		orderID:           orderID,
		amountCents:       amountCents,
		totalAmountCents:  totalAmountCents,
		paymentMode:       paymentMode,
		failureReason:     failureReason,
		rating:            rating,
		review:            review,
		customerComplaint: customerComplaint,
		providerComplaint: providerComplaint,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// --- Getters ---

// ID returns the booking's unique identifier.
func (b *Booking) ID() uuid.UUID { return b.id }

// OwnerID returns the owning customer account's ID.
func (b *Booking) OwnerID() uuid.UUID { return b.ownerID }

// ProviderEmail returns the provider's email.
func (b *Booking) ProviderEmail() string { return b.providerEmail }

// ProviderName returns the provider's display name.
func (b *Booking) ProviderName() string { return b.providerName }

// CustomerName returns the customer display name recorded on the booking.
func (b *Booking) CustomerName() string { return b.customerName }

// Date returns the scheduled date.
func (b *Booking) Date() time.Time { return b.date }

// TimeSlot returns the scheduled time of day.
func (b *Booking) TimeSlot() string { return b.timeSlot }

// DurationMinutes returns the expected duration in minutes.
func (b *Booking) DurationMinutes() int { return b.durationMinutes }

// Service returns the requested service.
func (b *Booking) Service() string { return b.service }

// RelatedServices returns the related service names.
func (b *Booking) RelatedServices() []string { return b.relatedServices }

// PreferredStaff returns the preferred staff member, or "".
func (b *Booking) PreferredStaff() string { return b.preferredStaff }

// Confirmation returns the current confirmation status.
func (b *Booking) Confirmation() ConfirmationStatus { return b.confirmation }

// Payment returns the current payment status.
func (b *Booking) Payment() PaymentStatus { return b.payment }

// TransactionID returns the gateway transaction identifier, or "".
func (b *Booking) TransactionID() string { return b.transactionID }

// OrderID returns the caller-supplied order identifier, or "".
func (b *Booking) OrderID() string { return b.orderID }

// AmountCents returns the booking amount in cents.
func (b *Booking) AmountCents() int64 { return b.amountCents }

// TotalAmountCents returns the gateway-reported total in cents, or 0.
func (b *Booking) TotalAmountCents() int64 { return b.totalAmountCents }

// PaymentMode returns the payment mode reported by the gateway, or "".
func (b *Booking) PaymentMode() string { return b.paymentMode }

// FailureReason returns the payment failure reason, or "".
func (b *Booking) FailureReason() string { return b.failureReason }

// Rating returns the customer rating, or nil if not rated.
func (b *Booking) Rating() *float64 { return b.rating }

// Review returns the customer review text.
func (b *Booking) Review() string { return b.review }

// CustomerComplaint returns the customer-authored complaint, or "".
func (b *Booking) CustomerComplaint() string { return b.customerComplaint }

// ProviderComplaint returns the provider-authored complaint, or "".
func (b *Booking) ProviderComplaint() string { return b.providerComplaint }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// Confirm moves the confirmation axis to confirmed. Confirming an already
// confirmed booking succeeds without error.
func (b *Booking) Confirm() error {
	if !b.confirmation.CanTransitionTo(ConfirmationConfirmed) {
		return domain.NewInvalidStateError(string(b.confirmation), string(ConfirmationConfirmed))
	}
	b.confirmation = ConfirmationConfirmed
	b.updatedAt = time.Now().UTC()
	return nil
}

// MarkPaid records a successful payment. PAID is terminal.
func (b *Booking) MarkPaid(transactionID, paymentMode string, totalAmountCents int64) error {
	if !b.payment.CanTransitionTo(PaymentPaid) {
		return domain.NewInvalidStateError(string(b.payment), string(PaymentPaid))
	}
	b.payment = PaymentPaid
	b.transactionID = transactionID
	b.paymentMode = paymentMode
	b.totalAmountCents = totalAmountCents
	b.updatedAt = time.Now().UTC()
	return nil
}

// MarkFailed records a failed payment with its reason. FAILED is terminal.
func (b *Booking) MarkFailed(transactionID, reason string) error {
	if !b.payment.CanTransitionTo(PaymentFailed) {
		return domain.NewInvalidStateError(string(b.payment), string(PaymentFailed))
	}
	b.payment = PaymentFailed
	b.transactionID = transactionID
	b.failureReason = reason
	b.updatedAt = time.Now().UTC()
	return nil
}

// Rate sets the customer rating and review together. No bounds are enforced
// on the rating value.
func (b *Booking) Rate(rating float64, review string) {
	b.rating = &rating
	b.review = review
	b.updatedAt = time.Now().UTC()
}

// FileCustomerComplaint sets the customer-authored complaint.
func (b *Booking) FileCustomerComplaint(text string) {
	b.customerComplaint = text
	b.updatedAt = time.Now().UTC()
}

// FileProviderComplaint sets the provider-authored complaint. Empty or
// whitespace-only text is rejected.
func (b *Booking) FileProviderComplaint(text string) error {
	if strings.TrimSpace(text) == "" {
		return domain.NewValidationError("complaint text is required")
	}
	b.providerComplaint = text
	b.updatedAt = time.Now().UTC()
	return nil
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
	b.updatedAt = time.Now().UTC()
}
