package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/salonsphere/service-booking/internal/auth"
	"github.com/salonsphere/service-booking/internal/domain"
	accountDomain "github.com/salonsphere/service-booking/internal/domain/account"
	providerDomain "github.com/salonsphere/service-booking/internal/domain/provider"
)

// ListingDTO is a single bookable service flattened out of a provider catalog.
type ListingDTO struct {
	ShopName    string  `json:"shop_name"`
	Style       string  `json:"style"`
	ServiceName string  `json:"service_name"`
	PriceCents  int64   `json:"price_cents"`
	Rating      float64 `json:"rating"`
	ImageURL    string  `json:"image_url,omitempty"`
	Email       string  `json:"email"`
	Designation string  `json:"designation"`
	Location    string  `json:"location"`
}

// RoleDTO answers the "what kind of user is this email" lookup.
type RoleDTO struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CatalogService assembles customer-facing service listings from the provider
// catalogs and answers role lookups across both account stores.
type CatalogService struct {
	accounts  accountDomain.Store
	providers providerDomain.Catalog
	logger    *zap.Logger
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(accounts accountDomain.Store, providers providerDomain.Catalog, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		accounts:  accounts,
		providers: providers,
		logger:    logger,
	}
}

// ServiceListings flattens every provider's catalog into one list of bookable
// services. Approval gates provider login, not listing visibility.
func (s *CatalogService) ServiceListings(ctx context.Context) ([]ListingDTO, error) {
	providers, err := s.providers.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load provider catalogs: %w", err)
	}

	listings := make([]ListingDTO, 0, len(providers))
	for _, p := range providers {
		for _, svc := range p.Services {
			listings = append(listings, ListingDTO{
				ShopName:    p.ShopName,
				Style:       svc.Style,
				ServiceName: svc.Name,
				PriceCents:  svc.PriceCents,
				Rating:      svc.Rating,
				ImageURL:    svc.ImageURL,
				Email:       p.Email,
				Designation: p.Designation,
				Location:    p.Location,
			})
		}
	}
	return listings, nil
}

// AccountRole resolves which side of the marketplace an email belongs to.
// Customer accounts win over providers when both exist.
func (s *CatalogService) AccountRole(ctx context.Context, email string) (*RoleDTO, error) {
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return &RoleDTO{Email: email, Role: auth.RoleCustomer}, nil
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.providers.FindByEmail(ctx, email); err == nil {
		return &RoleDTO{Email: email, Role: auth.RoleProvider}, nil
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	return nil, domain.NewNotFoundError("Account", email)
}
