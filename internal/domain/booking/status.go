package booking

import "fmt"

// ConfirmationStatus represents the provider-confirmation axis of a booking.
type ConfirmationStatus string

const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
)

// confirmationTransitions defines the confirmation state machine. Re-confirming
// an already confirmed booking is allowed so the operation stays idempotent.
var confirmationTransitions = map[ConfirmationStatus][]ConfirmationStatus{
	ConfirmationPending:   {ConfirmationConfirmed},
	ConfirmationConfirmed: {ConfirmationConfirmed},
}

// IsValid returns true if the status is a recognized confirmation status.
func (s ConfirmationStatus) IsValid() bool {
	_, exists := confirmationTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s ConfirmationStatus) CanTransitionTo(target ConfirmationStatus) bool {
	allowed, exists := confirmationTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// String returns the string representation of the status.
func (s ConfirmationStatus) String() string {
	return string(s)
}

// ParseConfirmationStatus converts a string to a ConfirmationStatus, returning an error if invalid.
func ParseConfirmationStatus(s string) (ConfirmationStatus, error) {
	status := ConfirmationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid confirmation status: %s", s)
	}
	return status, nil
}

// PaymentStatus represents the payment axis of a booking. The literals match
// the enumeration used by the payment gateway integration.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentFailed  PaymentStatus = "FAILED"
)

// paymentTransitions defines the payment state machine. PAID and FAILED are terminal.
var paymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentPending: {PaymentPaid, PaymentFailed},
	PaymentPaid:    {},
	PaymentFailed:  {},
}

// IsValid returns true if the status is a recognized payment status.
func (s PaymentStatus) IsValid() bool {
	_, exists := paymentTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this status to the target is allowed.
func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	allowed, exists := paymentTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s PaymentStatus) IsTerminal() bool {
	allowed, exists := paymentTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// String returns the string representation of the status.
func (s PaymentStatus) String() string {
	return string(s)
}

// ParsePaymentStatus converts a string to a PaymentStatus, returning an error if invalid.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid payment status: %s", s)
	}
	return status, nil
}
