package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonsphere/service-booking/internal/auth"
	"github.com/salonsphere/service-booking/internal/domain"
	accountDomain "github.com/salonsphere/service-booking/internal/domain/account"
	providerDomain "github.com/salonsphere/service-booking/internal/domain/provider"
)

// RegisterRequest holds the data needed to register a customer account.
type RegisterRequest struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Designation string    `json:"designation"`
	Password    string    `json:"password"`
}

// LoginRequest holds the credentials for a login attempt. Identifier accepts
// either email or phone for customers; providers sign in by email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

// AccountDTO is the response representation of a customer account.
type AccountDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      string    `json:"gender"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Designation string    `json:"designation"`
	LoggedIn    bool      `json:"logged_in"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResultDTO carries the issued token and the resolved role.
type LoginResultDTO struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// CheckLoginDTO reports whether an account has logged in before.
type CheckLoginDTO struct {
	Email    string `json:"email"`
	LoggedIn bool   `json:"logged_in"`
}

// AccountService manages customer registration and authentication for both
// sides of the marketplace.
type AccountService struct {
	accounts  accountDomain.Store
	providers providerDomain.Catalog
	jwt       *auth.JWTManager
	logger    *zap.Logger
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	accounts accountDomain.Store,
	providers providerDomain.Catalog,
	jwt *auth.JWTManager,
	logger *zap.Logger,
) *AccountService {
	return &AccountService{
		accounts:  accounts,
		providers: providers,
		jwt:       jwt,
		logger:    logger,
	}
}

// Register creates a customer account with a bcrypt-hashed password.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (*AccountDTO, error) {
	if req.Password == "" {
		return nil, domain.NewValidationError("password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct, err := accountDomain.NewAccount(
		req.Name,
		req.Email,
		req.Phone,
		accountDomain.Gender(req.Gender),
		req.DateOfBirth,
		req.Designation,
		string(hash),
	)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.Save(ctx, acct); err != nil {
		return nil, err
	}

	s.logger.Info("account registered",
		zap.String("account_id", acct.ID().String()),
		zap.String("email", acct.Email()),
	)

	result := toAccountDTO(acct)
	return &result, nil
}

// Login authenticates against the store matching the requested role and
// issues a JWT. Customers may sign in by email or phone; a designation of
// "admin" elevates the customer to the admin role.
func (s *AccountService) Login(ctx context.Context, req LoginRequest) (*LoginResultDTO, error) {
	switch req.Role {
	case auth.RoleProvider:
		return s.loginProvider(ctx, req)
	default:
		return s.loginCustomer(ctx, req)
	}
}

func (s *AccountService) loginCustomer(ctx context.Context, req LoginRequest) (*LoginResultDTO, error) {
	acct, err := s.accounts.FindByIdentifier(ctx, req.Identifier)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash()), []byte(req.Password)); err != nil {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}

	role := auth.RoleCustomer
	if strings.EqualFold(acct.Designation(), "admin") {
		role = auth.RoleAdmin
	}

	token, err := s.jwt.Generate(acct.ID(), acct.Email(), role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	acct.SetLoggedIn()
	if err := s.accounts.Update(ctx, acct); err != nil {
		return nil, err
	}

	return &LoginResultDTO{
		Token: token,
		Email: acct.Email(),
		Name:  acct.Name(),
		Role:  role,
	}, nil
}

func (s *AccountService) loginProvider(ctx context.Context, req LoginRequest) (*LoginResultDTO, error) {
	prov, err := s.providers.FindByEmail(ctx, req.Identifier)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(prov.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.NewUnauthorizedError("invalid credentials")
	}

	if !prov.Approved {
		return nil, domain.NewForbiddenError("provider account is pending approval")
	}

	token, err := s.jwt.Generate(prov.ID, prov.Email, auth.RoleProvider)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResultDTO{
		Token: token,
		Email: prov.Email,
		Name:  prov.ShopName,
		Role:  auth.RoleProvider,
	}, nil
}

// CheckLogin reports whether the account identified by email has ever
// completed a login.
func (s *AccountService) CheckLogin(ctx context.Context, email string) (*CheckLoginDTO, error) {
	acct, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &CheckLoginDTO{Email: acct.Email(), LoggedIn: acct.LoggedIn()}, nil
}

// ListAccounts returns every customer account (admin).
func (s *AccountService) ListAccounts(ctx context.Context) ([]AccountDTO, error) {
	accounts, err := s.accounts.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	dtos := make([]AccountDTO, len(accounts))
	for i, acct := range accounts {
		dtos[i] = toAccountDTO(acct)
	}
	return dtos, nil
}

// DeleteAccount removes a customer account together with its bookings (admin).
func (s *AccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	if err := s.accounts.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("account deleted", zap.String("account_id", id.String()))
	return nil
}

func toAccountDTO(acct *accountDomain.Account) AccountDTO {
	return AccountDTO{
		ID:          acct.ID(),
		Name:        acct.Name(),
		Email:       acct.Email(),
		Phone:       acct.Phone(),
		Gender:      string(acct.Gender()),
		DateOfBirth: acct.DateOfBirth(),
		Designation: acct.Designation(),
		LoggedIn:    acct.LoggedIn(),
		CreatedAt:   acct.CreatedAt(),
	}
}
