package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/saadistik/Bashir.inc/internal/models"
	"github.com/saadistik/Bashir.inc/internal/storage"
)

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrUsernameExists     = errors.New("username already registered")
	ErrInvalidUsername    = errors.New("username must be a single word of letters, digits, '.', '_' or '-'")
	ErrInvalidRole        = errors.New("role must be owner or employee")
)

// IdentityStorage defines the persistence the authenticator needs.
// This allows the authenticator to be independent of the storage implementation.
type IdentityStorage interface {
	CreateIdentity(ctx context.Context, identity *models.Identity, profile *models.Profile) error
	GetIdentityByUsername(ctx context.Context, username string) (*models.Identity, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage IdentityStorage
}

var _ Authenticator = (*PasswordAuthenticator)(nil)

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage IdentityStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// NormalizeUsername trims and lowercases a username. Logins are
// case-insensitive.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func validUsername(username string) bool {
	if username == "" {
		return false
	}
	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
		default:
			return false
		}
	}
	return true
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new identity with a hashed password and its profile.
func (a *PasswordAuthenticator) Register(ctx context.Context, account Account) (*models.Profile, error) {
	username := NormalizeUsername(account.Username)
	if !validUsername(username) {
		return nil, ErrInvalidUsername
	}
	if !account.Role.Valid() {
		return nil, ErrInvalidRole
	}

	// Validate password strength
	if err := a.ValidateCredential(account.Password); err != nil {
		return nil, err
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(account.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	identity := &models.Identity{
		Username:     username,
		PasswordHash: string(hashedPassword),
	}
	profile := &models.Profile{
		Username: username,
		FullName: strings.TrimSpace(account.FullName),
		Role:     account.Role,
		Salary:   account.Salary,
		IDCard:   strings.TrimSpace(account.IDCard),
	}

	if err := a.storage.CreateIdentity(ctx, identity, profile); err != nil {
		if errors.Is(err, storage.ErrUsernameTaken) {
			return nil, ErrUsernameExists
		}
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	return profile, nil
}

// Authenticate verifies the username and password, returning the identity if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, username, credential string) (*models.Identity, error) {
	identity, err := a.storage.GetIdentityByUsername(ctx, NormalizeUsername(username))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Compare password hash
	if err := bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return identity, nil
}
