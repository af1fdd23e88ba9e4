package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salonsphere/service-booking/internal/domain"
	accountDomain "github.com/salonsphere/service-booking/internal/domain/account"
)

// AccountModel is the GORM model for the accounts table.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:255;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Phone        string    `gorm:"size:30;not null;uniqueIndex"`
	Gender       string    `gorm:"size:10;not null"`
	DateOfBirth  time.Time `gorm:"not null"`
	Designation  string    `gorm:"size:100;not null"`
	PasswordHash string    `gorm:"size:100;not null"`
	LoggedIn     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (AccountModel) TableName() string {
	return "accounts"
}

// GormAccountStore is the GORM-based implementation of account.Store.
type GormAccountStore struct {
	db *gorm.DB
}

// NewGormAccountStore creates a new GormAccountStore.
func NewGormAccountStore(db *gorm.DB) *GormAccountStore {
	return &GormAccountStore{db: db}
}

// FindByEmail retrieves an account by its unique email.
func (s *GormAccountStore) FindByEmail(ctx context.Context, email string) (*accountDomain.Account, error) {
	var model AccountModel
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Account", email)
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	return toDomainAccount(&model), nil
}

// FindByIdentifier retrieves an account by email or phone.
func (s *GormAccountStore) FindByIdentifier(ctx context.Context, identifier string) (*accountDomain.Account, error) {
	var model AccountModel
	if err := s.db.WithContext(ctx).
		Where("email = ? OR phone = ?", identifier, identifier).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Account", identifier)
		}
		return nil, fmt.Errorf("failed to find account by identifier: %w", err)
	}
	return toDomainAccount(&model), nil
}

// ListAll retrieves every account.
func (s *GormAccountStore) ListAll(ctx context.Context) ([]*accountDomain.Account, error) {
	var models []AccountModel
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	accounts := make([]*accountDomain.Account, len(models))
	for i := range models {
		accounts[i] = toDomainAccount(&models[i])
	}
	return accounts, nil
}

// Save persists a new account. Duplicate email or phone yields a conflict.
func (s *GormAccountStore) Save(ctx context.Context, a *accountDomain.Account) error {
	model := toAccountModel(a)
	if err := s.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("email or phone already exists")
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

// Update persists changes to an existing account.
func (s *GormAccountStore) Update(ctx context.Context, a *accountDomain.Account) error {
	model := toAccountModel(a)
	result := s.db.WithContext(ctx).
		Model(&AccountModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"phone":         model.Phone,
			"gender":        model.Gender,
			"date_of_birth": model.DateOfBirth,
			"designation":   model.Designation,
			"password_hash": model.PasswordHash,
			"logged_in":     model.LoggedIn,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Account", model.ID.String())
	}
	return nil
}

// Delete removes an account by ID, along with its bookings.
func (s *GormAccountStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("owner_id = ?", id).Delete(&BookingModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete account bookings: %w", err)
		}
		result := tx.Where("id = ?", id).Delete(&AccountModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete account: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.NewNotFoundError("Account", id.String())
		}
		return nil
	})
}

// --- Conversion Helpers ---

func toAccountModel(a *accountDomain.Account) *AccountModel {
	return &AccountModel{
		ID:           a.ID(),
		Name:         a.Name(),
		Email:        a.Email(),
		Phone:        a.Phone(),
		Gender:       string(a.Gender()),
		DateOfBirth:  a.DateOfBirth(),
		Designation:  a.Designation(),
		PasswordHash: a.PasswordHash(),
		LoggedIn:     a.LoggedIn(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func toDomainAccount(m *AccountModel) *accountDomain.Account {
	return accountDomain.ReconstructAccount(
		m.ID,
		m.Name,
		m.Email,
		m.Phone,
		accountDomain.Gender(m.Gender),
		m.DateOfBirth,
		m.Designation,
		m.PasswordHash,
		m.LoggedIn,
		m.CreatedAt,
		m.UpdatedAt,
	)
}
