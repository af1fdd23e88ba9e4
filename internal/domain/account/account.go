package account

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/salonsphere/service-booking/internal/domain"
)

// Gender is the declared gender on an account.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// IsValid returns true if the gender is one of the accepted values.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Account is a registered customer capable of owning bookings. Providers are
// held in the provider catalog; this aggregate covers the customer side.
type Account struct {
	id           uuid.UUID
	name         string
	email        string
	phone        string
	gender       Gender
	dateOfBirth  time.Time
	designation  string
	passwordHash string
	loggedIn     bool
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAccount creates an Account. The password hash is produced by the caller;
// the aggregate never sees the plain secret.
func NewAccount(name, email, phone string, gender Gender, dateOfBirth time.Time, designation, passwordHash string) (*Account, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, domain.NewValidationError("email is required")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, domain.NewValidationError("phone is required")
	}
	if !gender.IsValid() {
		return nil, domain.NewValidationError("gender must be Male, Female or Other")
	}
	if dateOfBirth.IsZero() {
		return nil, domain.NewValidationError("date of birth is required")
	}
	if strings.TrimSpace(designation) == "" {
		return nil, domain.NewValidationError("designation is required")
	}
	if passwordHash == "" {
		return nil, domain.NewValidationError("password is required")
	}

	now := time.Now().UTC()
	return &Account{
		id:           uuid.New(),
		name:         strings.TrimSpace(name),
		email:        email,
		phone:        phone,
		gender:       gender,
		dateOfBirth:  dateOfBirth,
		designation:  designation,
		passwordHash: passwordHash,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructAccount rebuilds an Account from persistence data (no validation).
func ReconstructAccount(
	id uuid.UUID,
	name, email, phone string,
	gender Gender,
	dateOfBirth time.Time,
	designation, passwordHash string,
	loggedIn bool,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:           id,
		name:         name,
		email:        email,
		phone:        phone,
		gender:       gender,
		dateOfBirth:  dateOfBirth,
		designation:  designation,
		passwordHash: passwordHash,
		loggedIn:     loggedIn,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// ID returns the account identifier.
func (a *Account) ID() uuid.UUID { return a.id }

// Name returns the display name.
func (a *Account) Name() string { return a.name }

// Email returns the unique email.
func (a *Account) Email() string { return a.email }

// Phone returns the unique phone number.
func (a *Account) Phone() string { return a.phone }

// Gender returns the declared gender.
func (a *Account) Gender() Gender { return a.gender }

// DateOfBirth returns the date of birth.
func (a *Account) DateOfBirth() time.Time { return a.dateOfBirth }

// Designation returns the account role label.
func (a *Account) Designation() string { return a.designation }

// PasswordHash returns the stored credential hash.
func (a *Account) PasswordHash() string { return a.passwordHash }

// LoggedIn returns the login flag.
func (a *Account) LoggedIn() bool { return a.loggedIn }

// CreatedAt returns the creation timestamp.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (a *Account) UpdatedAt() time.Time { return a.updatedAt }

// SetLoggedIn records a successful login.
func (a *Account) SetLoggedIn() {
	a.loggedIn = true
	a.updatedAt = time.Now().UTC()
}

// SetPasswordHash replaces the stored credential hash.
func (a *Account) SetPasswordHash(hash string) {
	a.passwordHash = hash
	a.updatedAt = time.Now().UTC()
}
