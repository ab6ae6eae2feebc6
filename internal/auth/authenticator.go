package auth

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/saadistik/Bashir.inc/internal/models"
)

// Account is everything needed to open a new login: the credential and the
// profile that goes with it.
type Account struct {
	Username string
	Password string
	FullName string
	Role     models.Role
	Salary   decimal.NullDecimal
	IDCard   string
}

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods (password, passkeys, OAuth, etc.)
// without changing the service layer code.
type Authenticator interface {
	// Register creates a new identity and its profile.
	// Returns the created profile or an error if registration fails.
	Register(ctx context.Context, account Account) (*models.Profile, error)

	// Authenticate verifies the username and credential and returns the identity if successful.
	// Unknown usernames and wrong credentials fail with the same error.
	Authenticate(ctx context.Context, username, credential string) (*models.Identity, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
