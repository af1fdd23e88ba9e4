package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics the booking service produces to and consumes from.
const (
	TopicBookingEvents = "booking.events"
	TopicPaymentEvents = "payment.events"
)

// Event types on booking.events.
const (
	BookingCreated        = "booking.created"
	BookingConfirmed      = "booking.confirmed"
	BookingRated          = "booking.rated"
	BookingComplaintFiled = "booking.complaint_filed"
)

// Event types on payment.events, produced by the payment gateway integration.
const (
	PaymentSucceeded = "payment.succeeded"
	PaymentFailed    = "payment.failed"
)

// BookingCreatedEvent is published when a customer books a service.
type BookingCreatedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	OwnerID       uuid.UUID `json:"owner_id"`
	ProviderEmail string    `json:"provider_email"`
	Service       string    `json:"service"`
	Date          time.Time `json:"date"`
	TimeSlot      string    `json:"time_slot"`
	AmountCents   int64     `json:"amount_cents"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingConfirmedEvent is published when a provider confirms a booking.
type BookingConfirmedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	ProviderEmail string    `json:"provider_email"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingRatedEvent is published when a customer rates a completed booking.
type BookingRatedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	OrderID    string    `json:"order_id"`
	Rating     float64   `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ComplaintFiledEvent is published when either party files a complaint.
type ComplaintFiledEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	Author     string    `json:"author"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PaymentSucceededEvent is consumed from the payment gateway integration.
type PaymentSucceededEvent struct {
	OrderID          string    `json:"order_id"`
	TransactionID    string    `json:"transaction_id"`
	PaymentMode      string    `json:"payment_mode"`
	TotalAmountCents int64     `json:"total_amount_cents"`
	OccurredAt       time.Time `json:"occurred_at"`
}

// PaymentFailedEvent is consumed from the payment gateway integration.
type PaymentFailedEvent struct {
	OrderID       string    `json:"order_id"`
	TransactionID string    `json:"transaction_id"`
	Reason        string    `json:"reason"`
	OccurredAt    time.Time `json:"occurred_at"`
}
