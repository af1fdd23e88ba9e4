package provider

import (
	"time"

	"github.com/google/uuid"
)

// ServiceOffering is one entry of a provider's catalog.
type ServiceOffering struct {
	Name       string  `json:"service_name"`
	Style      string  `json:"style"`
	PriceCents int64   `json:"price_cents"`
	Rating     float64 `json:"rating"`
	ImageURL   string  `json:"image_url,omitempty"`
}

// Provider is the service-offering business side of a booking. The booking
// core reads providers to assemble customer-facing listings and to answer
// role lookups; it never mutates them.
type Provider struct {
	ID           uuid.UUID
	ShopName     string
	Email        string
	Phone        string
	Location     string
	Designation  string
	Approved     bool
	PasswordHash string
	Services     []ServiceOffering
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
