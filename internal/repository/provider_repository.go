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
	providerDomain "github.com/salonsphere/service-booking/internal/domain/provider"
)

// ProviderModel is the GORM model for the providers table. The service
// catalog is stored as a jsonb document; the booking core only reads it.
type ProviderModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ShopName     string          `gorm:"size:255;not null"`
	Email        string          `gorm:"size:255;not null;uniqueIndex"`
	Phone        string          `gorm:"size:30"`
	Location     string          `gorm:"size:255"`
	Designation  string          `gorm:"size:100;not null"`
	Approved     bool            `gorm:"not null;default:false"`
	PasswordHash string          `gorm:"size:100;not null"`
	Services     json.RawMessage `gorm:"type:jsonb"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (ProviderModel) TableName() string {
	return "providers"
}

// GormProviderCatalog is the GORM-based implementation of provider.Catalog.
type GormProviderCatalog struct {
	db *gorm.DB
}

// NewGormProviderCatalog creates a new GormProviderCatalog.
func NewGormProviderCatalog(db *gorm.DB) *GormProviderCatalog {
	return &GormProviderCatalog{db: db}
}

// FindByEmail retrieves a provider by its unique email.
func (c *GormProviderCatalog) FindByEmail(ctx context.Context, email string) (*providerDomain.Provider, error) {
	var model ProviderModel
	if err := c.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Provider", email)
		}
		return nil, fmt.Errorf("failed to find provider by email: %w", err)
	}
	return toDomainProvider(&model)
}

// ListAll retrieves every provider with its service catalog.
func (c *GormProviderCatalog) ListAll(ctx context.Context) ([]*providerDomain.Provider, error) {
	var models []ProviderModel
	if err := c.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}

	providers := make([]*providerDomain.Provider, len(models))
	for i := range models {
		p, err := toDomainProvider(&models[i])
		if err != nil {
			return nil, err
		}
		providers[i] = p
	}
	return providers, nil
}

func toDomainProvider(m *ProviderModel) (*providerDomain.Provider, error) {
	var services []providerDomain.ServiceOffering
	if len(m.Services) > 0 {
		if err := json.Unmarshal(m.Services, &services); err != nil {
			return nil, fmt.Errorf("failed to unmarshal provider services: %w", err)
		}
	}

	return &providerDomain.Provider{
		ID:           m.ID,
		ShopName:     m.ShopName,
		Email:        m.Email,
		Phone:        m.Phone,
		Location:     m.Location,
		Designation:  m.Designation,
		Approved:     m.Approved,
		PasswordHash: m.PasswordHash,
		Services:     services,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}, nil
}
